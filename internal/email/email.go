package email

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vultuk/online-bookstore-final-assessment/internal/order"
)

// Notifier is the delivery transport. The default sink writes to the
// log stream; a real mail sender would satisfy the same interface.
type Notifier interface {
	Notify(recipient, body string) bool
}

// LogNotifier writes the rendered message to the structured log, which
// is the store's observable stand-in for outbound mail.
type LogNotifier struct {
	Log zerolog.Logger
}

func (n LogNotifier) Notify(recipient, body string) bool {
	n.Log.Info().Str("recipient", recipient).Msg("EMAIL SENT\n" + body)
	return true
}

// Service renders order confirmations and hands them to the notifier.
type Service struct {
	notifier Notifier
}

func NewService(n Notifier) *Service {
	return &Service{notifier: n}
}

// SendOrderConfirmation renders the receipt for an order and delivers
// it to the recipient. The rendered text is deterministic for a given
// order.
func (s *Service) SendOrderConfirmation(recipient string, o order.Order) bool {
	return s.notifier.Notify(recipient, renderConfirmation(o))
}

func renderConfirmation(o order.Order) string {
	var b strings.Builder

	b.WriteString("Order Confirmation\n\n")
	fmt.Fprintf(&b, "Order #%s\n", o.ID)
	fmt.Fprintf(&b, "Total: $%s\n\n", o.TotalAmount.StringFixed(2))

	b.WriteString("Items:\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "  %s x%d\n", item.Title, item.Quantity)
	}

	b.WriteString("\nShipping Address:\n")
	fmt.Fprintf(&b, "  %s\n", o.ShippingInfo.Address)

	return b.String()
}
