// Package id generates Stripe-style prefixed short identifiers used as the
// public-facing IDs of entities (database primary keys stay internal).
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs.
	DefaultLength = 12
)

// Prefixes per entity type.
const (
	PrefixOrder    = "ord"
	PrefixCustomer = "cus"
	PrefixProduct  = "prd"
	PrefixShipment = "shp"
)

// Generate creates a cryptographically random, URL-safe short ID of the
// given length using Base62 encoding.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	sid, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return sid
}

// GenerateWithPrefix creates an ID in the form "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	sid, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, sid), nil
}

// FormatWithPrefix adds a prefix to an existing short ID.
func FormatWithPrefix(prefix, shortID string) string {
	if shortID == "" {
		return ""
	}
	return fmt.Sprintf("%s_%s", prefix, shortID)
}

// ParsePrefixedID splits a prefixed ID into prefix and short ID.
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "_", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// ValidatePrefix checks that the prefixed ID carries the expected prefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	return nil
}

// NewOrderSID generates a public order identifier.
func NewOrderSID() (string, error) {
	return GenerateWithPrefix(PrefixOrder, DefaultLength)
}

// NewCustomerSID generates a public customer identifier.
func NewCustomerSID() (string, error) {
	return GenerateWithPrefix(PrefixCustomer, DefaultLength)
}

// NewProductSID generates a public product identifier.
func NewProductSID() (string, error) {
	return GenerateWithPrefix(PrefixProduct, DefaultLength)
}
