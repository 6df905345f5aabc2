package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Символы валют, которые сервис умеет печатать. Для остальных валют
// используется запасной формат "<KOD> <сумма>".
var currencySymbols = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"uah": "₴",
	"rub": "₽",
	"jpy": "¥",
	"inr": "₹",
}

// Валюты без минорных единиц: сумма уже выражена в целых единицах
// и на 100 не делится.
var zeroDecimalCurrencies = map[string]bool{
	"jpy": true,
	"krw": true,
	"vnd": true,
	"clp": true,
}

// FormatPrice форматирует сумму в минорных единицах в строку для
// отображения: FormatPrice(2999, "usd") == "$29.99". Для валюты без
// известного символа возвращается "<KOD> <сумма>", например "XYZ 29.99".
func FormatPrice(amount int64, currency string) string {
	currency = strings.ToLower(currency)
	if currency == "" {
		currency = "usd"
	}

	var rendered string
	if zeroDecimalCurrencies[currency] {
		rendered = strconv.FormatInt(amount, 10)
	} else {
		rendered = formatMajorUnits(amount)
	}

	symbol, ok := currencySymbols[currency]
	if !ok {
		return strings.ToUpper(currency) + " " + rendered
	}
	if amount < 0 {
		return "-" + symbol + strings.TrimPrefix(rendered, "-")
	}
	return symbol + rendered
}

// FormatPriceWithInterval добавляет к цене расчетный период: "$29.99/month"
func FormatPriceWithInterval(amount int64, currency, interval string) string {
	price := FormatPrice(amount, currency)
	if interval == "" {
		return price
	}
	return price + "/" + interval
}

// ParsePrice разбирает строку с ценой обратно в минорные единицы:
// "$29.99" -> 2999. Все символы, кроме цифр, точки и знака минус,
// игнорируются.
func ParsePrice(s string) (int64, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("no numeric value in %q", s)
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", s, err)
	}

	return int64(math.Round(value * 100)), nil
}

func formatMajorUnits(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
