package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.56, RoundMoney(10.555))
	assert.Equal(t, 10.0, RoundMoney(10.0001))
	assert.Equal(t, 0.0, RoundMoney(0))
}

func TestConvertWithCustomRate(t *testing.T) {
	got, err := ConvertWithCustomRate(280, 280)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = ConvertWithCustomRate(100, 3)
	require.NoError(t, err)
	assert.Equal(t, 33.33, got)

	_, err = ConvertWithCustomRate(100, 0)
	assert.Error(t, err)

	_, err = ConvertWithCustomRate(100, -1)
	assert.Error(t, err)
}

func TestConvertCurrencySameCurrency(t *testing.T) {
	got, err := ConvertCurrency(42.555, "PKR", "PKR", nil)
	require.NoError(t, err)
	assert.Equal(t, 42.56, got)
}

func TestConvertCurrencyCustomRatePrecedence(t *testing.T) {
	rates := map[string]float64{"USD": 280}
	got, err := ConvertCurrency(560, "PKR", "USD", rates)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}
