package subshare

import "testing"

// USD is a helper for test to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// newTestStore creates a store rooted in a fresh temporary directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("cannot create test store: %v", err)
	}
	return s
}

// mustAddMember fails the test on an AddMember error.
func mustAddMember(t *testing.T, s *Store, year int, name string) {
	t.Helper()
	if err := s.AddMember(year, name); err != nil {
		t.Fatalf("AddMember(%d, %q): %v", year, name, err)
	}
}

// mustSetPayment fails the test on a SetPayment error.
func mustSetPayment(t *testing.T, s *Store, year int, member string, month Month, paid bool) {
	t.Helper()
	if err := s.SetPayment(year, member, month, paid); err != nil {
		t.Fatalf("SetPayment(%d, %q, %s, %v): %v", year, member, month, paid, err)
	}
}
