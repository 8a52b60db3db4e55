package valueobjects

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount in minor units (cents) with an ISO 4217 currency code.
type Money struct {
	amountInCents int64
	currency      string
}

// NewMoney creates a Money value. An empty currency defaults to USD.
func NewMoney(amountInCents int64, currencyCode string) Money {
	if currencyCode == "" {
		currencyCode = "USD"
	}
	return Money{amountInCents: amountInCents, currency: currencyCode}
}

// ParseMoney validates the currency code against ISO 4217.
func ParseMoney(amountInCents int64, currencyCode string) (Money, error) {
	if _, err := currency.ParseISO(currencyCode); err != nil {
		return Money{}, fmt.Errorf("invalid currency code %q: %w", currencyCode, err)
	}
	return Money{amountInCents: amountInCents, currency: currencyCode}, nil
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) IsZero() bool {
	return m.amountInCents == 0
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

// Add returns the sum of two amounts. Mixing currencies is an error.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.currency, other.currency)
	}
	return Money{amountInCents: m.amountInCents + other.amountInCents, currency: m.currency}, nil
}

// MultiplyBy returns the amount scaled by a quantity.
func (m Money) MultiplyBy(qty int) Money {
	return Money{amountInCents: m.amountInCents * int64(qty), currency: m.currency}
}

// Format renders the amount with its currency symbol, e.g. "US$ 12.50".
func (m Money) Format() string {
	unit, err := currency.ParseISO(m.currency)
	if err != nil {
		return m.String()
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(float64(m.amountInCents)/100.0)))
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", float64(m.amountInCents)/100.0, m.currency)
}
