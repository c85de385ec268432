package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fjod/foodbay/internal/domain"
)

const (
	currencyLabel = "Rs."
	storeName     = "FoodBay"
)

// Email is a ready to send order confirmation.
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}

func ComposeEmail(s *domain.OrderSnapshot) Email {
	subject := fmt.Sprintf("Order Confirmation #%s", s.OrderNumber)

	var b strings.Builder
	fmt.Fprintf(&b, "Order Confirmation #%s\n", s.OrderNumber)
	fmt.Fprintf(&b, "Date: %s\n\n", s.PlacedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Hello %s,\n\n", s.DeliveryInfo.FullName)
	b.WriteString("Thank you for your order! Here are your order details:\n\n")

	b.WriteString("ITEMS:\n")
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "- %dx %s (%s %s)\n", l.Quantity, l.Item.Name, currencyLabel, l.LineTotal().StringFixed(2))
	}

	b.WriteString("\nSUMMARY:\n")
	fmt.Fprintf(&b, "Subtotal: %s %s\n", currencyLabel, s.Totals.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Delivery Fee: %s %s\n", currencyLabel, s.Totals.DeliveryFee.StringFixed(2))
	fmt.Fprintf(&b, "Tax: %s %s\n", currencyLabel, s.Totals.Tax.StringFixed(2))
	fmt.Fprintf(&b, "Total: %s %s\n", currencyLabel, s.Totals.Total.StringFixed(2))

	d := s.DeliveryInfo
	b.WriteString("\nDELIVERY ADDRESS:\n")
	fmt.Fprintf(&b, "%s\n%s\n%s, %s\n%s\n", d.FullName, d.Address, d.City, d.ZipCode, d.Phone)
	if d.Instructions != "" {
		fmt.Fprintf(&b, "Note: %s\n", d.Instructions)
	}

	b.WriteString("\nPAYMENT METHOD:\n")
	b.WriteString(s.PaymentMethod.Label())
	fmt.Fprintf(&b, "\n\nThank you for choosing %s!", storeName)

	body := b.String()
	return Email{
		Subject: subject,
		Body:    body,
		Mailto:  "mailto:?subject=" + escapeComponent(subject) + "&body=" + escapeComponent(body),
	}
}

// escapeComponent encodes spaces as %20, mail clients do not decode "+".
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
