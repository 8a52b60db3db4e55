// Package services holds small domain services shared across contexts.
package services

import (
	"fmt"

	"github.com/orderline-io/orderline/internal/shared/biztime"
)

// OrderNumberGenerator produces human-readable order numbers such as
// "ORD20260830120501000042".
type OrderNumberGenerator interface {
	Generate(prefix string) string
}

type DefaultOrderNumberGenerator struct{}

func NewOrderNumberGenerator() OrderNumberGenerator {
	return &DefaultOrderNumberGenerator{}
}

func (g *DefaultOrderNumberGenerator) Generate(prefix string) string {
	now := biztime.NowUTC()
	return fmt.Sprintf("%s%s%06d",
		prefix,
		now.Format("20060102150405"),
		now.Nanosecond()%1000000,
	)
}
