package shop

import (
	"fmt"
	"strings"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"
)

const defaultBaseCurrency = "USD"

// ConvertPrice converts an amount from the shop's base currency into the
// requested display currency, preferring the shop's custom rates over the
// live exchange rate feed.
func (s *DefaultShopService) ConvertPrice(shopID string, amount float64, toCurrency string) (float64, error) {
	toCurrency = strings.ToUpper(strings.TrimSpace(toCurrency))
	if toCurrency == "" {
		return 0, fmt.Errorf("a target currency is required")
	}

	settings, err := s.Repo.GetSettings(shopID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch shop settings: %w", err)
	}

	base := defaultBaseCurrency
	var rates map[string]float64
	if cs := settings.CurrencySettings; cs != nil {
		if cs.BaseCurrency != "" {
			base = cs.BaseCurrency
		}
		rates = cs.Rates
	}

	return utils.ConvertCurrency(amount, base, toCurrency, rates)
}
