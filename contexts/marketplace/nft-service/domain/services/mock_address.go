package services

import (
	"crypto/rand"
	"fmt"
)

// Mock chain identifiers are fixed-length alphanumeric strings: 44 characters
// for token addresses, 88 for purchase receipts (transaction signatures).
const (
	TokenAddressLength = 44
	ReceiptLength      = 88

	addressAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

func NewMockAddress(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("mock address length must be positive, got %d", length)
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	out := make([]byte, length)
	for i, b := range buf {
		out[i] = addressAlphabet[int(b)%len(addressAlphabet)]
	}
	return string(out), nil
}
