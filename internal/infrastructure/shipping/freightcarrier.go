package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orderline-io/orderline/internal/application/order/gateway"
	"github.com/orderline-io/orderline/internal/shared/config"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

const freightTimeout = 15 * time.Second

// FreightCarrier books shipments through an external freight API.
type FreightCarrier struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewFreightCarrier(cfg config.ShippingConfig, logger logger.Interface) *FreightCarrier {
	return &FreightCarrier{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: freightTimeout},
		logger:     logger,
	}
}

var _ gateway.ShipmentCarrier = (*FreightCarrier)(nil)

type freightBookingRequest struct {
	OrderNo     string `json:"order_no"`
	OrderRef    string `json:"order_ref"`
	ItemCount   int    `json:"item_count"`
	Destination string `json:"destination"`
}

type freightBookingResponse struct {
	TrackingNo string    `json:"tracking_no"`
	Carrier    string    `json:"carrier"`
	Status     string    `json:"status"`
	ShippedAt  time.Time `json:"shipped_at"`
	Error      string    `json:"error"`
}

func (c *FreightCarrier) CreateShipment(ctx context.Context, req gateway.ShipmentRequest) (*gateway.ShipmentResponse, error) {
	body, err := json.Marshal(freightBookingRequest{
		OrderNo:     req.OrderNo,
		OrderRef:    req.OrderSID,
		ItemCount:   req.ItemCount,
		Destination: req.Destination,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/shipments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build booking request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("freight request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read freight response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		c.logger.Warnw("freight API error",
			"status", httpResp.StatusCode,
			"order_no", req.OrderNo,
			"body", string(respBody))
		return nil, fmt.Errorf("freight API returned status %d", httpResp.StatusCode)
	}

	var resp freightBookingResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode freight response: %w", err)
	}

	if resp.Status != "booked" {
		return nil, fmt.Errorf("booking rejected: %s", resp.Error)
	}

	return &gateway.ShipmentResponse{
		TrackingNo: resp.TrackingNo,
		Carrier:    resp.Carrier,
		ShippedAt:  resp.ShippedAt,
	}, nil
}
