package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

func ZeroMoney(cur currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: cur}
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// In reports whether m is denominated in cur.
func (m Money) In(cur currency.Unit) bool {
	return m.Currency == cur
}

func (m Money) SameCurrency(other Money) bool {
	return m.In(other.Currency)
}

func (m Money) Mul(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), Currency: m.Currency}
}

func (m Money) Equal(other Money) bool {
	return m.SameCurrency(other) && m.Amount.Equal(other.Amount)
}

// Display rounds half away from zero to the cent.
func (m Money) Display() string {
	return m.Amount.StringFixed(2)
}

func (m Money) String() string {
	if m.Currency == currency.USD {
		return "$" + m.Display()
	}

	return m.Currency.String() + " " + m.Display()
}
