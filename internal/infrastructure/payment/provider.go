package payment

import (
	"fmt"

	"github.com/orderline-io/orderline/internal/application/order/gateway"
	"github.com/orderline-io/orderline/internal/shared/config"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

// NewGateway builds the payment gateway named by cfg.Provider.
func NewGateway(cfg config.PaymentConfig, logger logger.Interface) (gateway.PaymentGateway, error) {
	switch cfg.Provider {
	case "", "sandbox":
		return NewSandboxGateway(logger), nil
	case "checkout":
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("payment provider %q requires an endpoint", cfg.Provider)
		}
		return NewCheckoutGateway(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown payment provider: %s", cfg.Provider)
	}
}
