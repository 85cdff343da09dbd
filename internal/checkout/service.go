package checkout

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vultuk/online-bookstore-final-assessment/internal/cart"
	"github.com/vultuk/online-bookstore-final-assessment/internal/email"
	"github.com/vultuk/online-bookstore-final-assessment/internal/order"
	"github.com/vultuk/online-bookstore-final-assessment/internal/payment"
)

// Form carries the raw checkout fields as submitted. Everything stays a
// string; validation decides what is required.
type Form struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`
	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number"`
	ExpiryDate    string `json:"expiry_date"`
	CVV           string `json:"cvv"`
	DiscountCode  string `json:"discount_code"`
}

// Result is a successful checkout: the created order plus any
// non-fatal notice (an unrecognized discount code).
type Result struct {
	Order  order.Order
	Saved  decimal.Decimal
	Notice string
}

// Service runs one checkout attempt against one cart. The attempt
// holds the cart's lock from validation through finalization, so
// concurrent cart mutations cannot interleave and a cart is drained by
// at most one successful checkout.
type Service struct {
	carts   cart.Repository
	orders  *order.Service
	gateway payment.Gateway
	mail    *email.Service
	now     func() time.Time
	log     zerolog.Logger
}

func NewService(carts cart.Repository, orders *order.Service, gateway payment.Gateway, mail *email.Service, log zerolog.Logger) *Service {
	return &Service{
		carts:   carts,
		orders:  orders,
		gateway: gateway,
		mail:    mail,
		now:     time.Now,
		log:     log,
	}
}

// WithClock overrides the timestamp source; tests use this to pin
// order dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Process executes the pipeline for one session:
// validate -> price with discount -> authorize -> finalize.
// Any failure exits before the cart is touched; only a fully finalized
// checkout drains it.
func (s *Service) Process(sessionKey string, form Form) (Result, error) {
	var result Result

	c := s.carts.GetOrCreate(sessionKey)
	err := c.Checkout(func(items []cart.Line, subtotal decimal.Decimal) (bool, error) {
		if len(items) == 0 {
			return false, ErrEmptyCart
		}
		if err := validate(form); err != nil {
			return false, err
		}

		frac, known := lookupDiscount(form.DiscountCode)
		if !known {
			result.Notice = NoticeInvalidDiscount
		}
		saved := subtotal.Mul(frac)
		total := subtotal.Sub(saved)

		charge := s.gateway.Charge(payment.Info{
			Method:     form.PaymentMethod,
			CardNumber: form.CardNumber,
			ExpiryDate: form.ExpiryDate,
			CVV:        form.CVV,
			Amount:     total,
		})
		if !charge.Success {
			s.log.Warn().Str("session", sessionKey).Str("reason", charge.Message).Msg("payment declined")
			return false, PaymentDeclinedError{Message: charge.Message}
		}

		o := s.buildOrder(sessionKey, form, items, total, charge.TransactionID)
		s.orders.Append(o)
		s.mail.SendOrderConfirmation(form.Email, o)

		s.log.Info().
			Str("order_id", o.ID).
			Str("user", sessionKey).
			Str("total", total.StringFixed(2)).
			Msg("checkout complete")

		result.Order = o
		result.Saved = saved
		return true, nil
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

func (s *Service) buildOrder(sessionKey string, form Form, items []cart.Line, total decimal.Decimal, txnID string) order.Order {
	orderItems := make([]order.Item, 0, len(items))
	for _, line := range items {
		orderItems = append(orderItems, order.Item{
			Title:    line.Book.Title,
			Quantity: line.Quantity,
			Price:    line.Book.Price,
		})
	}
	return order.Order{
		ID:        uuid.NewString(),
		UserEmail: sessionKey,
		Items:     orderItems,
		ShippingInfo: order.ShippingInfo{
			Name:    form.Name,
			Email:   form.Email,
			Address: form.Address,
			City:    form.City,
			ZipCode: form.ZipCode,
		},
		PaymentInfo: order.PaymentInfo{
			Method:        form.PaymentMethod,
			TransactionID: txnID,
		},
		TotalAmount: total,
		OrderDate:   s.now(),
		Status:      order.StatusConfirmed,
	}
}

// validate checks the required fields in a fixed order so the first
// blank field is the one reported. Card fields are only required when
// paying by credit card.
func validate(form Form) error {
	required := []struct {
		field string
		value string
	}{
		{"name", form.Name},
		{"email", form.Email},
		{"address", form.Address},
		{"city", form.City},
		{"zip_code", form.ZipCode},
		{"payment_method", form.PaymentMethod},
	}
	for _, f := range required {
		if isBlank(f.value) {
			return MissingFieldError{Field: f.field}
		}
	}

	if form.PaymentMethod == payment.MethodCreditCard {
		card := []struct {
			field string
			value string
		}{
			{"card_number", form.CardNumber},
			{"expiry_date", form.ExpiryDate},
			{"cvv", form.CVV},
		}
		for _, f := range card {
			if isBlank(f.value) {
				return MissingFieldError{Field: f.field}
			}
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
