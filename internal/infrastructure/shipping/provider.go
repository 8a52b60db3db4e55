package shipping

import (
	"fmt"

	"github.com/orderline-io/orderline/internal/application/order/gateway"
	"github.com/orderline-io/orderline/internal/shared/config"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

// NewCarrier builds the shipment carrier named by cfg.Provider.
func NewCarrier(cfg config.ShippingConfig, logger logger.Interface) (gateway.ShipmentCarrier, error) {
	switch cfg.Provider {
	case "", "flatrate":
		return NewFlatRateCarrier(logger), nil
	case "freightapi":
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("shipping provider %q requires an endpoint", cfg.Provider)
		}
		return NewFreightCarrier(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown shipping provider: %s", cfg.Provider)
	}
}
