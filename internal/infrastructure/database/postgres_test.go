package database

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBaseCurrencySeedPKR(t *testing.T) {
	currency := baseCurrencySeed("PKR")

	assert.Equal(t, "PKR", currency.Code)
	assert.Equal(t, "Pakistani Rupee", currency.Name)
	assert.Equal(t, "Rs", currency.Symbol)
	assert.True(t, currency.IsBase)
	assert.True(t, currency.ExchangeRate.Equal(decimal.NewFromInt(1)))
}

func TestBaseCurrencySeedOtherCode(t *testing.T) {
	currency := baseCurrencySeed("AED")

	assert.Equal(t, "AED", currency.Code)
	assert.Equal(t, "AED", currency.Name)
	assert.Empty(t, currency.Symbol)
	assert.True(t, currency.IsBase)
	assert.True(t, currency.ExchangeRate.Equal(decimal.NewFromInt(1)))
}
