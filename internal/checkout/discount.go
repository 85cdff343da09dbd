package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NoticeInvalidDiscount is reported when an unknown code is supplied.
// It never aborts a checkout.
const NoticeInvalidDiscount = "Invalid discount code"

var discountCodes = map[string]decimal.Decimal{
	"SAVE10":    decimal.RequireFromString("0.10"),
	"WELCOME20": decimal.RequireFromString("0.20"),
}

// lookupDiscount matches a code case-insensitively after trimming
// surrounding whitespace. It returns the discount fraction and whether
// the code was recognized; a blank code is simply "no discount".
func lookupDiscount(code string) (decimal.Decimal, bool) {
	cleaned := strings.ToUpper(strings.TrimSpace(code))
	if cleaned == "" {
		return decimal.Zero, true
	}
	frac, ok := discountCodes[cleaned]
	if !ok {
		return decimal.Zero, false
	}
	return frac, true
}
