package payment

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txnPattern = regexp.MustCompile(`^TXN\d{6}$`)

func testGateway() *MockGateway {
	return NewMockGateway(0)
}

func TestChargeSuccess(t *testing.T) {
	g := testGateway()

	res := g.Charge(Info{
		Method:     MethodCreditCard,
		CardNumber: "4532123456789012",
		ExpiryDate: "12/25",
		CVV:        "123",
		Amount:     decimal.NewFromFloat(10.99),
	})

	require.True(t, res.Success)
	assert.Equal(t, "Payment processed successfully", res.Message)
	assert.True(t, txnPattern.MatchString(res.TransactionID), "transaction id %q", res.TransactionID)
	assert.Len(t, res.TransactionID, 9)
}

func TestChargeDeclinesCardEndingIn1111(t *testing.T) {
	g := testGateway()

	for _, number := range []string{"4532123456781111", "1111", "4532111"} {
		res := g.Charge(Info{Method: MethodCreditCard, CardNumber: number})
		if number == "4532111" {
			// only the literal "1111" suffix declines
			assert.True(t, res.Success, "card %q", number)
			continue
		}
		assert.False(t, res.Success, "card %q", number)
		assert.Empty(t, res.TransactionID)
		assert.Equal(t, "Invalid card number", res.Message)
	}
}

func TestChargePayPalAlwaysSucceeds(t *testing.T) {
	g := testGateway()

	// PayPal performs no field validation at all; even an empty or
	// 1111-suffixed card number passes.
	for _, card := range []string{"", "4532123456781111"} {
		res := g.Charge(Info{Method: MethodPayPal, CardNumber: card})
		assert.True(t, res.Success, "card %q", card)
		assert.True(t, txnPattern.MatchString(res.TransactionID))
	}
}

func TestChargeEmptyCardNumberPasses(t *testing.T) {
	g := testGateway()

	// an empty card number does not end in 1111, so it slips through
	res := g.Charge(Info{Method: MethodCreditCard, CardNumber: ""})
	assert.True(t, res.Success)
}

func TestZeroDelayDoesNotBlock(t *testing.T) {
	g := testGateway()

	start := time.Now()
	g.Charge(Info{Method: MethodCreditCard, CardNumber: "4532123456789012"})
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
