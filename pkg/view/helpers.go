package view

import "strconv"

// PlaceholderImage is shown when a product has no image reference.
const PlaceholderImage = "/static/logo.svg"

// Price renders an amount with the local currency suffix, e.g. "150 ₺".
func Price(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + currencySymbol("TRY")
}

// ImageOr returns url, or the placeholder when url is blank.
func ImageOr(url string) string {
	if url == "" {
		return PlaceholderImage
	}
	return url
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "TRY":
		return "₺"
	default:
		return code
	}
}
