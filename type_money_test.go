package subshare

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{in: USD(150), want: "$150.00"},
		{in: USD(0), want: "$0.00"},
		{in: USD(12.5), want: "$12.50"},
		{in: USD(33.333), want: "$33.33"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	if got := USD(100).DivInt(2).MulInt(3); !got.Equal(USD(150)) {
		t.Errorf("100/2*3 = %s, want %s", got, USD(150))
	}
	if got := USD(1200).Sub(USD(150)); !got.Equal(USD(1050)) {
		t.Errorf("1200-150 = %s, want %s", got, USD(1050))
	}
	if got := USD(0.1).Add(USD(0.2)); !got.Equal(USD(0.3)) {
		t.Errorf("0.1+0.2 = %s, want %s", got, USD(0.3))
	}
}

func TestMoney_Ratio(t *testing.T) {
	if got := USD(150).Ratio(USD(1200)); !got.Equal(12.5) {
		t.Errorf("150/1200 = %s, want 12.5%%", got)
	}
	if got := USD(150).Ratio(USD(0)); !got.Equal(0) {
		t.Errorf("ratio against zero = %s, want 0", got)
	}
}

func TestValidateMemberName(t *testing.T) {
	if got, err := ValidateMemberName("  Alice  "); err != nil || got != "Alice" {
		t.Errorf("ValidateMemberName = (%q, %v), want (Alice, nil)", got, err)
	}
	for _, bad := range []string{"", "  ", "a/b", "a|b"} {
		if _, err := ValidateMemberName(bad); err == nil {
			t.Errorf("ValidateMemberName(%q): want error", bad)
		}
	}
}

func TestAuthorizer(t *testing.T) {
	a := NewAuthorizer("hunter2")
	if err := a.Authorize("hunter2"); err != nil {
		t.Errorf("Authorize with the right secret: %v", err)
	}
	if err := a.Authorize("wrong"); err == nil {
		t.Error("Authorize with a wrong secret: want error")
	}
	if err := a.Authorize(""); err == nil {
		t.Error("Authorize with an empty secret: want error")
	}
}
