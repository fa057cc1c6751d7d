package subshare

import "testing"

func TestSummarize_NoMembers(t *testing.T) {
	s := newTestStore(t)

	got := s.Summarize(2024)

	if got.TotalMembers != 0 {
		t.Errorf("TotalMembers = %d, want 0", got.TotalMembers)
	}
	for name, m := range map[string]Money{
		"PricePerSlot":     got.PricePerSlot,
		"TotalPossible":    got.TotalPossible,
		"TotalPaid":        got.TotalPaid,
		"TotalOutstanding": got.TotalOutstanding,
	} {
		if !m.IsZero() {
			t.Errorf("%s = %s, want zero", name, m)
		}
	}
	if !got.OverallRate.Equal(0) {
		t.Errorf("OverallRate = %s, want 0", got.OverallRate)
	}
}

// The reference scenario: two members on a 100 subscription, Alice paid
// Jan..Mar, Bob paid nothing.
func TestSummarize_Scenario(t *testing.T) {
	s := newTestStore(t)
	mustAddMember(t, s, 2024, "Alice")
	mustAddMember(t, s, 2024, "Bob")
	if err := s.UpdateSettings(2024, 100.0, 10); err != nil {
		t.Fatal(err)
	}
	for _, month := range []Month{Jan, Feb, Mar} {
		mustSetPayment(t, s, 2024, "Alice", month, true)
	}

	got := s.Summarize(2024)

	if got.TotalMembers != 2 {
		t.Errorf("TotalMembers = %d, want 2", got.TotalMembers)
	}
	if !got.PricePerSlot.Equal(USD(50)) {
		t.Errorf("PricePerSlot = %s, want %s", got.PricePerSlot, USD(50))
	}
	if !got.TotalPossible.Equal(USD(1200)) {
		t.Errorf("TotalPossible = %s, want %s", got.TotalPossible, USD(1200))
	}
	if !got.TotalPaid.Equal(USD(150)) {
		t.Errorf("TotalPaid = %s, want %s", got.TotalPaid, USD(150))
	}
	if !got.TotalOutstanding.Equal(USD(1050)) {
		t.Errorf("TotalOutstanding = %s, want %s", got.TotalOutstanding, USD(1050))
	}
	if !got.OverallRate.Equal(12.5) {
		t.Errorf("OverallRate = %s, want 12.5%%", got.OverallRate)
	}

	if len(got.Members) != 2 {
		t.Fatalf("Members has %d entries, want 2", len(got.Members))
	}
	alice := got.Members[0]
	if alice.Name != "Alice" {
		t.Fatalf("first member = %q, want Alice (display order)", alice.Name)
	}
	if alice.MonthsPaid != 3 || alice.MonthsUnpaid != 9 {
		t.Errorf("Alice months = %d paid / %d unpaid, want 3/9", alice.MonthsPaid, alice.MonthsUnpaid)
	}
	if !alice.AmountPaid.Equal(USD(150)) {
		t.Errorf("Alice AmountPaid = %s, want %s", alice.AmountPaid, USD(150))
	}
	if !alice.AmountOwed.Equal(USD(450)) {
		t.Errorf("Alice AmountOwed = %s, want %s", alice.AmountOwed, USD(450))
	}
	if !alice.PaymentRate.Equal(25.0) {
		t.Errorf("Alice PaymentRate = %s, want 25.0%%", alice.PaymentRate)
	}

	bob := got.Members[1]
	if bob.MonthsPaid != 0 || !bob.AmountPaid.IsZero() || !bob.PaymentRate.Equal(0) {
		t.Errorf("Bob summary = %+v, want all-zero", bob)
	}
	if !bob.AmountOwed.Equal(USD(600)) {
		t.Errorf("Bob AmountOwed = %s, want %s", bob.AmountOwed, USD(600))
	}
}

func TestPricePerSlot_NeverDividesByZero(t *testing.T) {
	rec := NewYearRecord(2024)
	// max(1, members) guards the empty record.
	if got := rec.PricePerSlot(); !got.Equal(USD(100)) {
		t.Errorf("PricePerSlot = %s, want %s", got, USD(100))
	}
}
