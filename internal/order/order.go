package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDateFormat is the textual timestamp layout used in records.
const OrderDateFormat = "2006-01-02 15:04:05"

const (
	StatusConfirmed = "Confirmed"
)

// Item is a frozen line snapshot: title, quantity and the unit price
// that applied when the order was placed.
type Item struct {
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ShippingInfo is the delivery block captured from the checkout form.
type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

// PaymentInfo records how the order was paid.
type PaymentInfo struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
}

// Order is the immutable snapshot produced by a successful checkout.
// Items are deep copies of the cart lines at checkout time; nothing in
// an Order changes after creation.
type Order struct {
	ID           string
	UserEmail    string
	Items        []Item
	ShippingInfo ShippingInfo
	PaymentInfo  PaymentInfo
	TotalAmount  decimal.Decimal
	OrderDate    time.Time
	Status       string
}

// Record is the stable serialized field set for an order.
type Record struct {
	OrderID      string          `json:"order_id"`
	UserEmail    string          `json:"user_email"`
	Items        []Item          `json:"items"`
	ShippingInfo ShippingInfo    `json:"shipping_info"`
	PaymentInfo  PaymentInfo     `json:"payment_info"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OrderDate    string          `json:"order_date"`
	Status       string          `json:"status"`
}

func (o Order) Record() Record {
	items := make([]Item, len(o.Items))
	copy(items, o.Items)
	return Record{
		OrderID:      o.ID,
		UserEmail:    o.UserEmail,
		Items:        items,
		ShippingInfo: o.ShippingInfo,
		PaymentInfo:  o.PaymentInfo,
		TotalAmount:  o.TotalAmount,
		OrderDate:    o.OrderDate.Format(OrderDateFormat),
		Status:       o.Status,
	}
}

// clone returns a deep copy so history readers can never reach the
// stored order's item slice.
func (o Order) clone() Order {
	items := make([]Item, len(o.Items))
	copy(items, o.Items)
	out := o
	out.Items = items
	return out
}
