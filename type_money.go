package subshare

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display currency for all derived amounts. The ledger
// itself stores plain numbers; the currency only affects formatting.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Decimal{}
}

// currency returns the money's currency, defaulting to DefaultCurrency.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the formatted representation of the money value, with the
// currency symbol and the currency's usual number of decimals.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// MulInt scales the amount by an integer factor (e.g. a number of months).
func (m Money) MulInt(n int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(n))), cur: m.cur}
}

// DivInt divides the amount evenly by n (e.g. a number of members).
func (m Money) DivInt(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n))), cur: m.cur}
}

// Ratio returns m/n as a Percent; it is 0 when n is zero.
func (m Money) Ratio(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	r, _ := m.value.Div(n.value).Mul(decimal.NewFromInt(100)).Float64()
	return Percent(r)
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat returns the amount as a float64, for callers that only display it.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
