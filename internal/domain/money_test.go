package domain_test

import (
	"testing"

	"github.com/nikolayk812/dessert-cart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestMoney_Display(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		cur    currency.Unit
		want   string
	}{
		{name: "whole dollars", amount: "12", cur: currency.USD, want: "$12.00"},
		{name: "rounds half up", amount: "0.125", cur: currency.USD, want: "$0.13"},
		{name: "non-usd prefix", amount: "7.5", cur: currency.EUR, want: "EUR 7.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.NewMoney(decimal.RequireFromString(tt.amount), tt.cur)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestCart_TotalPriceKeepsFullPrecision(t *testing.T) {
	catalog := newCatalog(map[string]string{"A": "0.005", "B": "0.005", "C": "0.005"})
	cart := domain.NewCart(catalog, currency.USD)

	for _, id := range []domain.ProductID{"A", "B", "C"} {
		require.NoError(t, cart.AddItem(id, usd("0.005")))
	}

	// 0.015 rounds to 0.02; rounding each line would give 0.03.
	total := cart.TotalPrice()
	assert.Equal(t, "0.015", total.Amount.String())
	assert.Equal(t, "0.02", total.Display())
	assert.True(t, total.In(currency.USD))
}

func TestMoney_In(t *testing.T) {
	price := domain.NewMoney(decimal.RequireFromString("1.00"), currency.USD)

	assert.True(t, price.In(currency.USD))
	assert.False(t, price.In(currency.EUR))
	assert.True(t, price.SameCurrency(domain.ZeroMoney(currency.USD)))
	assert.False(t, price.SameCurrency(domain.ZeroMoney(currency.EUR)))
	assert.False(t, price.Equal(domain.NewMoney(decimal.RequireFromString("1.00"), currency.EUR)))
}

func TestParseProductID(t *testing.T) {
	id, err := domain.ParseProductID("  Waffle with Berries ")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductID("Waffle with Berries"), id)

	_, err = domain.ParseProductID("   ")
	require.EqualError(t, err, "product id is empty")
}
