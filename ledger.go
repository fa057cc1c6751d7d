package subshare

import (
	"fmt"
	"sort"
	"strings"
)

// This file implements the ledger operations. Each operation is one full
// load→mutate→save cycle against the store, holding the year's writer lock
// for the whole cycle. Operations are not atomic with respect to each other,
// only within one cycle.

// AddMember appends a member to the year's list and creates its empty payment
// map. Adding an existing member is a no-op.
func (s *Store) AddMember(year int, name string) error {
	name, err := ValidateMemberName(name)
	if err != nil {
		return err
	}
	l := s.lock(year)
	l.Lock()
	defer l.Unlock()

	rec := s.Load(year)
	if rec.HasMember(name) {
		return nil
	}
	rec.Members = append(rec.Members, name)
	rec.Payments[name] = map[Month]bool{}
	return s.Save(year, rec)
}

// RemoveMember removes a member and its payment map. The payment history is
// immutable: entries referencing the removed member are kept unchanged.
// Removing an absent member is a no-op.
func (s *Store) RemoveMember(year int, name string) error {
	l := s.lock(year)
	l.Lock()
	defer l.Unlock()

	rec := s.Load(year)
	if !rec.HasMember(name) {
		return nil
	}
	members := make([]string, 0, len(rec.Members)-1)
	for _, m := range rec.Members {
		if m != name {
			members = append(members, m)
		}
	}
	rec.Members = members
	delete(rec.Payments, name)
	return s.Save(year, rec)
}

// SetPayment writes the paid flag for one member and month. When the status
// actually changes, a history entry is appended; re-asserting the current
// status is persisted without a new entry. Unknown month tokens are rejected
// before anything is loaded, so they can never reach the record.
func (s *Store) SetPayment(year int, member string, month Month, paid bool) error {
	if !month.Valid() {
		return fmt.Errorf("unknown month %q", month)
	}
	l := s.lock(year)
	l.Lock()
	defer l.Unlock()

	rec := s.Load(year)
	rec.setPayment(member, month, paid)
	return s.Save(year, rec)
}

// BulkSetPayments applies SetPayment semantics to several months in a single
// cycle: each month whose status changes gets its own history entry, months
// already at the requested status are written silently.
func (s *Store) BulkSetPayments(year int, member string, months []Month, paid bool) error {
	for _, month := range months {
		if !month.Valid() {
			return fmt.Errorf("unknown month %q", month)
		}
	}
	l := s.lock(year)
	l.Lock()
	defer l.Unlock()

	rec := s.Load(year)
	for _, month := range months {
		rec.setPayment(member, month, paid)
	}
	return s.Save(year, rec)
}

// CopyMembersForward copies the member list (not the payment state) from a
// source year into a target year. The target's existing members are
// overwritten and every copied member starts with an empty payment map; the
// target's history and settings are untouched.
func (s *Store) CopyMembersForward(sourceYear, targetYear int) error {
	source := s.Load(sourceYear)

	l := s.lock(targetYear)
	l.Lock()
	defer l.Unlock()

	target := s.Load(targetYear)
	target.Members = append([]string{}, source.Members...)
	target.Payments = map[string]map[Month]bool{}
	for _, member := range target.Members {
		target.Payments[member] = map[Month]bool{}
	}
	return s.Save(targetYear, target)
}

// UpdateSettings overwrites the year's subscription settings. Validation
// (totalPrice >= 0, maxSlots >= 1) is the caller's contract.
func (s *Store) UpdateSettings(year int, totalPrice float64, maxSlots int) error {
	l := s.lock(year)
	l.Lock()
	defer l.Unlock()

	rec := s.Load(year)
	rec.Settings.TotalPrice = totalPrice
	rec.Settings.MaxSlots = maxSlots
	return s.Save(year, rec)
}

// MemberPayments returns the paid flags recorded for one member.
func (s *Store) MemberPayments(year int, member string) map[Month]bool {
	payments := s.Load(year).Payments[member]
	if payments == nil {
		return map[Month]bool{}
	}
	return payments
}

// History returns the year's history entries, newest first. A non-empty
// member filters to that member's entries, a positive limit truncates the
// result after sorting.
func (s *Store) History(year int, member string, limit int) []HistoryEntry {
	rec := s.Load(year)

	history := make([]HistoryEntry, 0, len(rec.PaymentHistory))
	for _, e := range rec.PaymentHistory {
		if member != "" && e.Member != member {
			continue
		}
		history = append(history, e)
	}

	// Timestamps are fixed-width ISO-8601, so lexicographic order is
	// chronological order.
	sort.SliceStable(history, func(i, j int) bool {
		return strings.Compare(history[i].Timestamp, history[j].Timestamp) > 0
	})

	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history
}
