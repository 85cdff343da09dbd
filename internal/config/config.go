package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr         string
	JWTSecret    string
	PaymentDelay time.Duration
}

func Load() Config {
	return Config{
		Addr:         getenv("BOOKSTORE_ADDR", ":8080"),
		JWTSecret:    getenv("JWT_SECRET", "dev-secret"),
		PaymentDelay: paymentDelay(),
	}
}

// paymentDelay reads the simulated gateway latency in milliseconds.
// The default keeps the mock realistic; tests run with zero.
func paymentDelay() time.Duration {
	raw := getenv("PAYMENT_DELAY_MS", "100")
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		ms = 100
	}
	return time.Duration(ms) * time.Millisecond
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
