// Package orders holds the storefront order vocabulary.
package orders

var statusLabels = map[string]string{
	"unprocessed": "Unprocessed",
	"cooking":     "Cooking",
	"delivering":  "Delivering",
	"completed":   "Completed",
}

var paymentMethodLabels = map[string]string{
	"cash":        "Cash",
	"card_online": "Card online",
	"card":        "Card to courier",
}

// StatusLabel returns the display name of an order status code.
// Unknown codes are shown as-is.
func StatusLabel(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return code
}

// PaymentMethodLabel returns the display name of a payment method code.
func PaymentMethodLabel(code string) string {
	if label, ok := paymentMethodLabels[code]; ok {
		return label
	}
	return code
}
