// Package shipping provides the shipment carrier implementations. The
// flat-rate carrier books shipments locally; the freight API carrier talks
// to an external booking service.
package shipping

import (
	"context"
	"fmt"
	"strings"

	"github.com/orderline-io/orderline/internal/application/order/gateway"
	"github.com/orderline-io/orderline/internal/shared/biztime"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/id"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

// FlatRateCarrier accepts every booking and issues a locally generated
// tracking number. Intended for development and testing environments.
type FlatRateCarrier struct {
	logger logger.Interface
}

func NewFlatRateCarrier(logger logger.Interface) *FlatRateCarrier {
	return &FlatRateCarrier{logger: logger}
}

var _ gateway.ShipmentCarrier = (*FlatRateCarrier)(nil)

func (c *FlatRateCarrier) CreateShipment(_ context.Context, req gateway.ShipmentRequest) (*gateway.ShipmentResponse, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, errors.NewValidationError("shipment destination is required")
	}
	if req.ItemCount <= 0 {
		return nil, errors.NewValidationError("shipment must contain at least one item")
	}

	suffix, err := id.Generate(12)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tracking number: %w", err)
	}
	trackingNo := "FLT" + strings.ToUpper(suffix)

	c.logger.Infow("shipment booked",
		"order_no", req.OrderNo,
		"tracking_no", trackingNo,
		"item_count", req.ItemCount)

	return &gateway.ShipmentResponse{
		TrackingNo: trackingNo,
		Carrier:    "flatrate",
		ShippedAt:  biztime.NowUTC(),
	}, nil
}
