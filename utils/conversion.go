package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"
)

type ExchangeRateAPIResponse struct {
	Result string             `json:"result"`
	Base   string             `json:"base_code"`
	Rates  map[string]float64 `json:"conversion_rates"`
}

// fetchExchangeRate fetches exchange rate from base to target using ExchangeRate-API.
func fetchExchangeRate(from, to string) (float64, error) {
	url := fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/%s", config.AppConfig.ExchangeRateAPIKey, from)

	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	var rateResp ExchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&rateResp); err != nil {
		return 0, fmt.Errorf("decoding response failed: %w", err)
	}

	if rateResp.Result != "success" {
		return 0, fmt.Errorf("exchange API returned failure result")
	}

	rate, ok := rateResp.Rates[to]
	if !ok {
		return 0, fmt.Errorf("exchange rate for %s not found", to)
	}
	return rate, nil
}

// RoundMoney rounds an amount to two decimal places.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ConvertWithCustomRate converts an amount in the shop's base currency to a
// display currency using a shop-configured rate. The rate is expressed as
// base units per 1 unit of the target currency.
func ConvertWithCustomRate(amountInBase, rate float64) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("invalid custom rate %.4f", rate)
	}
	return RoundMoney(amountInBase / rate), nil
}

// ConvertCurrency converts an amount from the shop's base currency into the
// target currency. Shop-configured custom rates take precedence; otherwise a
// live rate is fetched.
func ConvertCurrency(amount float64, fromCurrency, toCurrency string, customRates map[string]float64) (float64, error) {
	if fromCurrency == toCurrency {
		return RoundMoney(amount), nil
	}
	if rate, ok := customRates[toCurrency]; ok {
		return ConvertWithCustomRate(amount, rate)
	}
	rate, err := fetchExchangeRate(fromCurrency, toCurrency)
	if err != nil {
		return 0, err
	}
	return RoundMoney(amount * rate), nil
}
