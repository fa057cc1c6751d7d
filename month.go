package subshare

import "fmt"

// Month identifies one calendar month within a year record. It is one of the
// twelve fixed three-letter tokens used as keys in the persisted payment maps.
type Month string

const (
	Jan Month = "Jan"
	Feb Month = "Feb"
	Mar Month = "Mar"
	Apr Month = "Apr"
	May Month = "May"
	Jun Month = "Jun"
	Jul Month = "Jul"
	Aug Month = "Aug"
	Sep Month = "Sep"
	Oct Month = "Oct"
	Nov Month = "Nov"
	Dec Month = "Dec"
)

// Months lists the twelve month tokens in calendar order.
var Months = [12]Month{Jan, Feb, Mar, Apr, May, Jun, Jul, Aug, Sep, Oct, Nov, Dec}

// ParseMonth parses a string into a Month.
func ParseMonth(s string) (Month, error) {
	m := Month(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown month %q", s)
	}
	return m, nil
}

// Valid reports whether m is one of the twelve month tokens.
func (m Month) Valid() bool { return m.index() >= 0 }

func (m Month) String() string { return string(m) }

// Index returns the calendar position of the month, 1 for Jan through 12 for
// Dec, or 0 for an unknown token.
func (m Month) Index() int { return m.index() + 1 }

// index is the 0-based position in Months, or -1 for an unknown token.
func (m Month) index() int {
	for i, month := range Months {
		if month == m {
			return i
		}
	}
	return -1
}

// CycleMonths returns n consecutive month tokens starting at start, wrapping
// from Dec back to Jan. An unknown start defaults to Jan.
func CycleMonths(start Month, n int) []Month {
	i := start.index()
	if i < 0 {
		i = 0
	}
	selected := make([]Month, 0, n)
	for k := 0; k < n; k++ {
		selected = append(selected, Months[(i+k)%12])
	}
	return selected
}
