package payment

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

const checkoutTimeout = 15 * time.Second

// CheckoutGateway charges through an external HTTP checkout API. Requests
// are authenticated with a bearer API key.
type CheckoutGateway struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewCheckoutGateway(cfg config.PaymentConfig, logger logger.Interface) *CheckoutGateway {
	return &CheckoutGateway{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: checkoutTimeout},
		logger:     logger,
	}
}

var _ gateway.PaymentGateway = (*CheckoutGateway)(nil)

type checkoutChargeRequest struct {
	OrderNo   string `json:"order_no"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Subject   string `json:"subject"`
}

type checkoutChargeResponse struct {
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	PaidAt        time.Time `json:"paid_at"`
	Error         string    `json:"error"`
}

func (g *CheckoutGateway) Charge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResponse, error) {
	var resp checkoutChargeResponse
	err := g.post(ctx, "/v1/charges", checkoutChargeRequest{
		OrderNo:   req.OrderNo,
		Reference: req.Reference,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Subject:   req.Subject,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Status != "succeeded" {
		return nil, fmt.Errorf("charge declined: %s", resp.Error)
	}

	return &gateway.ChargeResponse{
		TransactionID: resp.TransactionID,
		PaidAt:        resp.PaidAt,
	}, nil
}

type checkoutRefundRequest struct {
	OrderNo       string `json:"order_no"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Reason        string `json:"reason"`
}

type checkoutRefundResponse struct {
	RefundID   string    `json:"refund_id"`
	Status     string    `json:"status"`
	RefundedAt time.Time `json:"refunded_at"`
	Error      string    `json:"error"`
}

func (g *CheckoutGateway) Refund(ctx context.Context, req gateway.RefundRequest) (*gateway.RefundResponse, error) {
	var resp checkoutRefundResponse
	err := g.post(ctx, "/v1/refunds", checkoutRefundRequest{
		OrderNo:       req.OrderNo,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Reason:        req.Reason,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Status != "succeeded" {
		return nil, fmt.Errorf("refund declined: %s", resp.Error)
	}

	return &gateway.RefundResponse{
		RefundID:   resp.RefundID,
		RefundedAt: resp.RefundedAt,
	}, nil
}

func (g *CheckoutGateway) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	httpResp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("checkout request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read checkout response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		g.logger.Warnw("checkout API error",
			"status", httpResp.StatusCode,
			"path", path,
			"body", string(respBody))
		return fmt.Errorf("checkout API returned status %d", httpResp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode checkout response: %w", err)
	}

	return nil
}
