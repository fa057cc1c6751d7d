package subshare

import "time"

// Defaults applied whenever a year has no persisted record, or a persisted
// record is missing a field. They are defined here once; no call site derives
// its own.
const (
	DefaultTotalPrice = 100.0
	DefaultMaxSlots   = 10
)

// timestampLayout is fixed-width UTC ISO-8601 with nanoseconds, so that
// lexicographic comparison of two timestamps matches chronological order,
// and two toggles within the same second still sort correctly.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

func timestamp() string { return time.Now().UTC().Format(timestampLayout) }

// Action describes a single payment toggle in the history log.
type Action string

const (
	MarkedPaid   Action = "marked_paid"
	MarkedUnpaid Action = "marked_unpaid"
)

// Settings holds the subscription parameters of a year.
type Settings struct {
	TotalPrice float64 `json:"totalPrice"`
	MaxSlots   int     `json:"maxSlots"`
}

// HistoryEntry records one paid/unpaid toggle. Entries are append-only: once
// written they are never edited or deleted, even when the member is removed.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Member    string `json:"member"`
	Month     Month  `json:"month"`
	Action    Action `json:"action"`
	OldStatus bool   `json:"oldStatus"`
	NewStatus bool   `json:"newStatus"`
}

// YearRecord is the whole persisted state of one subscription year: the
// member list (in display order), the per-member per-month paid flags, the
// toggle history and the subscription settings.
type YearRecord struct {
	Year           int                       `json:"year"`
	Members        []string                  `json:"members"`
	Payments       map[string]map[Month]bool `json:"payments"`
	PaymentHistory []HistoryEntry            `json:"paymentHistory"`
	Settings       Settings                  `json:"settings"`
	CreatedAt      string                    `json:"createdAt"`
	UpdatedAt      string                    `json:"updatedAt"`
}

// NewYearRecord creates the default empty record for a year.
func NewYearRecord(year int) *YearRecord {
	now := timestamp()
	return &YearRecord{
		Year:           year,
		Members:        []string{},
		Payments:       map[string]map[Month]bool{},
		PaymentHistory: []HistoryEntry{},
		Settings:       Settings{TotalPrice: DefaultTotalPrice, MaxSlots: DefaultMaxSlots},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// normalize repairs a freshly decoded record: nil collections become empty
// ones, a missing year takes the file's year, missing settings take defaults.
func (r *YearRecord) normalize(year int) {
	if r.Year == 0 {
		r.Year = year
	}
	if r.Members == nil {
		r.Members = []string{}
	}
	if r.Payments == nil {
		r.Payments = map[string]map[Month]bool{}
	}
	if r.PaymentHistory == nil {
		r.PaymentHistory = []HistoryEntry{}
	}
	if r.Settings == (Settings{}) {
		r.Settings = Settings{TotalPrice: DefaultTotalPrice, MaxSlots: DefaultMaxSlots}
	}
}

// HasMember reports whether name is in the member list.
func (r *YearRecord) HasMember(name string) bool {
	for _, m := range r.Members {
		if m == name {
			return true
		}
	}
	return false
}

// Paid reports the paid flag for a member and month; unset entries are unpaid.
func (r *YearRecord) Paid(member string, month Month) bool {
	return r.Payments[member][month]
}

// MonthsPaid counts the months flagged paid for a member.
func (r *YearRecord) MonthsPaid(member string) int {
	n := 0
	for _, month := range Months {
		if r.Paid(member, month) {
			n++
		}
	}
	return n
}

// PricePerSlot is the share of the total price carried by each member. It is
// recomputed on demand and never stored.
func (r *YearRecord) PricePerSlot() Money {
	members := len(r.Members)
	if members < 1 {
		members = 1
	}
	return M(r.Settings.TotalPrice, DefaultCurrency).DivInt(members)
}

// setPayment writes the paid flag for a member and month, appending a history
// entry when the status actually changes. Toggling to the current value is a
// write without a history entry.
func (r *YearRecord) setPayment(member string, month Month, paid bool) {
	if r.Payments[member] == nil {
		r.Payments[member] = map[Month]bool{}
	}
	old := r.Payments[member][month]
	if old != paid {
		action := MarkedUnpaid
		if paid {
			action = MarkedPaid
		}
		r.PaymentHistory = append(r.PaymentHistory, HistoryEntry{
			Timestamp: timestamp(),
			Member:    member,
			Month:     month,
			Action:    action,
			OldStatus: old,
			NewStatus: paid,
		})
	}
	r.Payments[member][month] = paid
}
