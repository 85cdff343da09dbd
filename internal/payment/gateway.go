package payment

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MethodCreditCard = "credit_card"
	MethodPayPal     = "paypal"
)

// Info carries the payment fields collected at checkout.
type Info struct {
	Method     string
	CardNumber string
	ExpiryDate string
	CVV        string
	Amount     decimal.Decimal
}

// Result is the gateway's synchronous accept/decline decision.
// TransactionID is set only on success.
type Result struct {
	Success       bool
	TransactionID string
	Message       string
}

// Gateway is the charge authority the checkout pipeline talks to.
type Gateway interface {
	Charge(info Info) Result
}

// MockGateway authorizes charges without any network call. Delay
// simulates gateway latency; tests run it at zero.
//
// Credit cards whose number ends in "1111" are declined. Any other
// method passes with no further validation, which mirrors the store's
// historical PayPal behavior.
type MockGateway struct {
	Delay time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewMockGateway(delay time.Duration) *MockGateway {
	return &MockGateway{
		Delay: delay,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *MockGateway) Charge(info Info) Result {
	if g.Delay > 0 {
		time.Sleep(g.Delay)
	}

	if info.Method == MethodCreditCard && strings.HasSuffix(info.CardNumber, "1111") {
		return Result{Success: false, Message: "Invalid card number"}
	}

	return Result{
		Success:       true,
		TransactionID: g.transactionID(),
		Message:       "Payment processed successfully",
	}
}

// transactionID is always "TXN" plus exactly six digits.
func (g *MockGateway) transactionID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("TXN%06d", g.rnd.Intn(1000000))
}
