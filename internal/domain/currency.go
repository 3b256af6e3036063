package domain

// Currency is display metadata for one supported currency. Icon is a slug
// resolved by whatever frontend renders it; keeping it as pure data here
// avoids coupling currency identity to rendering behavior.
type Currency struct {
	Code   string `json:"code"` // ISO-4217-like
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Icon   string `json:"icon"`
}

// Currencies is the fixed set of supported currencies, in display order.
var Currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Icon: "dollar-sign"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Icon: "indian-rupee"},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Icon: "pound-sterling"},
	{Code: "EUR", Name: "Euro", Symbol: "€", Icon: "euro"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Icon: "banknote"},
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ", Icon: "wallet-cards"},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", Icon: "dollar-sign"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", Icon: "dollar-sign"},
}

// CurrencyByCode looks up a supported currency by its code.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// SupportedCurrency reports whether code is in the supported set.
func SupportedCurrency(code string) bool {
	_, ok := CurrencyByCode(code)
	return ok
}
