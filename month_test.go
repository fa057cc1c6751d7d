package subshare

import (
	"reflect"
	"testing"
)

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "Jan", want: Jan},
		{in: "Dec", want: Dec},
		{in: "jan", wantErr: true},
		{in: "January", wantErr: true},
		{in: "", wantErr: true},
		{in: "Smarch", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMonth(%q): want error, got %q", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseMonth(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMonth_Index(t *testing.T) {
	if got := Jan.Index(); got != 1 {
		t.Errorf("Jan.Index() = %d, want 1", got)
	}
	if got := Dec.Index(); got != 12 {
		t.Errorf("Dec.Index() = %d, want 12", got)
	}
	if got := Month("nope").Index(); got != 0 {
		t.Errorf("unknown Index() = %d, want 0", got)
	}
}

func TestCycleMonths(t *testing.T) {
	testCases := []struct {
		name  string
		start Month
		n     int
		want  []Month
	}{
		{name: "no wrap", start: Feb, n: 3, want: []Month{Feb, Mar, Apr}},
		{name: "wraparound", start: Nov, n: 3, want: []Month{Nov, Dec, Jan}},
		{name: "full year", start: Jul, n: 12, want: []Month{Jul, Aug, Sep, Oct, Nov, Dec, Jan, Feb, Mar, Apr, May, Jun}},
		{name: "unknown start defaults to Jan", start: "Smarch", n: 2, want: []Month{Jan, Feb}},
		{name: "zero months", start: Jan, n: 0, want: []Month{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CycleMonths(tc.start, tc.n); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("CycleMonths(%s, %d) = %v, want %v", tc.start, tc.n, got, tc.want)
			}
		})
	}
}
