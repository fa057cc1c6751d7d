package subshare

// Summary provides an at-a-glance overview of a year's payment state:
// aggregate amounts across all members plus one line per member. All amounts
// derive from the price per slot; nothing here is ever persisted.
type Summary struct {
	Year             int
	TotalMembers     int
	PricePerSlot     Money
	TotalPossible    Money
	TotalPaid        Money
	TotalOutstanding Money
	OverallRate      Percent
	Members          []MemberSummary
}

// MemberSummary is one member's share of the year.
type MemberSummary struct {
	Name         string
	MonthsPaid   int
	MonthsUnpaid int
	AmountPaid   Money
	AmountOwed   Money
	PaymentRate  Percent
}

// NewSummary computes the summary of a year record. With no members every
// amount and rate is zero; there is no division by the member count.
func NewSummary(rec *YearRecord) *Summary {
	summary := &Summary{
		Year:             rec.Year,
		TotalMembers:     len(rec.Members),
		PricePerSlot:     M(0, DefaultCurrency),
		TotalPossible:    M(0, DefaultCurrency),
		TotalPaid:        M(0, DefaultCurrency),
		TotalOutstanding: M(0, DefaultCurrency),
	}
	if len(rec.Members) == 0 {
		return summary
	}

	pricePerSlot := rec.PricePerSlot()
	summary.PricePerSlot = pricePerSlot
	summary.TotalPossible = pricePerSlot.MulInt(len(rec.Members) * 12)

	for _, member := range rec.Members {
		ms := newMemberSummary(member, rec.MonthsPaid(member), pricePerSlot)
		summary.TotalPaid = summary.TotalPaid.Add(ms.AmountPaid)
		summary.Members = append(summary.Members, ms)
	}

	summary.TotalOutstanding = summary.TotalPossible.Sub(summary.TotalPaid)
	summary.OverallRate = summary.TotalPaid.Ratio(summary.TotalPossible)
	return summary
}

func newMemberSummary(name string, monthsPaid int, pricePerSlot Money) MemberSummary {
	return MemberSummary{
		Name:         name,
		MonthsPaid:   monthsPaid,
		MonthsUnpaid: 12 - monthsPaid,
		AmountPaid:   pricePerSlot.MulInt(monthsPaid),
		AmountOwed:   pricePerSlot.MulInt(12 - monthsPaid),
		PaymentRate:  Percent(float64(monthsPaid) / 12 * 100),
	}
}

// Summarize loads a year and computes its summary.
func (s *Store) Summarize(year int) *Summary {
	return NewSummary(s.Load(year))
}
