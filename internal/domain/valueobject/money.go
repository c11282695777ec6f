package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidValue is returned when a value object cannot be built from its source.
var ErrInvalidValue = errors.New("invalid value")

const moneyScale = 2

// Money is a fixed-precision amount. Construction normalizes to two decimal
// places (banker's rounding); Add and Multiply never round again.
type Money struct {
	amount decimal.Decimal
}

var ZeroMoney = Money{amount: decimal.Zero}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.RoundBank(moneyScale)}
}

func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: money amount %q", ErrInvalidValue, s)
	}
	return NewMoney(d), nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) IsGreaterThanZero() bool { return m.amount.IsPositive() }

func (m Money) IsGreaterThan(other Money) bool { return m.amount.GreaterThan(other.amount) }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Equal compares numeric value, not representation: 10.1 equals 10.10.
func (m Money) Equal(other Money) bool { return m.amount.Equal(other.amount) }

func (m Money) String() string { return m.amount.StringFixed(moneyScale) }
