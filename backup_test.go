package subshare

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestBackup_RoundTrip(t *testing.T) {
	source := newTestStore(t)
	mustAddMember(t, source, 2023, "Carol")
	mustAddMember(t, source, 2024, "Alice")
	mustAddMember(t, source, 2024, "Bob")
	mustSetPayment(t, source, 2024, "Alice", Jan, true)
	if err := source.UpdateSettings(2024, 150.0, 5); err != nil {
		t.Fatal(err)
	}

	data, err := source.ExportBackup()
	if err != nil {
		t.Fatalf("ExportBackup: %v", err)
	}

	target := newTestStore(t)
	res, err := target.RestoreBackup(data)
	if err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}
	if want := []int{2023, 2024}; !reflect.DeepEqual(res.Years, want) {
		t.Errorf("restored years = %v, want %v", res.Years, want)
	}
	if !strings.Contains(res.Message, "2 year(s)") {
		t.Errorf("message = %q, want the restored count", res.Message)
	}

	// The structured fields are reproduced exactly.
	for _, year := range []int{2023, 2024} {
		want := source.Load(year)
		got := target.Load(year)
		if !reflect.DeepEqual(got.Members, want.Members) {
			t.Errorf("year %d Members = %v, want %v", year, got.Members, want.Members)
		}
		if !reflect.DeepEqual(got.Payments, want.Payments) {
			t.Errorf("year %d Payments = %v, want %v", year, got.Payments, want.Payments)
		}
		if !reflect.DeepEqual(got.PaymentHistory, want.PaymentHistory) {
			t.Errorf("year %d PaymentHistory = %v, want %v", year, got.PaymentHistory, want.PaymentHistory)
		}
		if got.Settings != want.Settings {
			t.Errorf("year %d Settings = %+v, want %+v", year, got.Settings, want.Settings)
		}
	}
}

func TestRestoreBackup_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "not json",
			data:    "{this is not json",
			wantErr: ErrInvalidEncoding,
		},
		{
			name:    "missing years key",
			data:    `{"backupTimestamp": "2024-01-01T00:00:00.000000000Z"}`,
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "years is not an object",
			data:    `{"years": [1, 2, 3]}`,
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "no restorable year",
			data:    `{"years": {"not-a-year": {"members": []}}}`,
			wantErr: ErrEmptyBackup,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			_, err := s.RestoreBackup([]byte(tc.data))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
			// A failed restore writes nothing.
			if years := s.ListYears(); len(years) != 0 {
				t.Errorf("store contains %v after failed restore", years)
			}
		})
	}
}

func TestRestoreBackup_SkipsInvalidKeys(t *testing.T) {
	s := newTestStore(t)

	data := `{
  "backupTimestamp": "2024-01-01T00:00:00.000000000Z",
  "years": {
    "oops": {"members": ["Ghost"]},
    "2024": {"year": 2024, "members": ["Alice"], "payments": {"Alice": {}},
             "paymentHistory": [], "settings": {"totalPrice": 100, "maxSlots": 10},
             "createdAt": "2024-01-01T00:00:00.000000000Z",
             "updatedAt": "2024-01-01T00:00:00.000000000Z"}
  }
}`
	res, err := s.RestoreBackup([]byte(data))
	if err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}
	if want := []int{2024}; !reflect.DeepEqual(res.Years, want) {
		t.Errorf("restored years = %v, want %v", res.Years, want)
	}
	if got := s.Load(2024).Members; !reflect.DeepEqual(got, []string{"Alice"}) {
		t.Errorf("Members = %v, want [Alice]", got)
	}
}

func TestRestoreBackup_OverwritesExisting(t *testing.T) {
	s := newTestStore(t)
	mustAddMember(t, s, 2024, "Old")

	data := `{"years": {"2024": {"year": 2024, "members": ["New"], "payments": {"New": {}}}}}`
	if _, err := s.RestoreBackup([]byte(data)); err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}

	// Full overwrite, no merge.
	if got := s.Load(2024).Members; !reflect.DeepEqual(got, []string{"New"}) {
		t.Errorf("Members = %v, want [New]", got)
	}
}
