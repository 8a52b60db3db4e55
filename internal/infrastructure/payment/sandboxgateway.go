// Package payment provides the payment gateway implementations. The sandbox
// gateway approves everything locally; the checkout gateway talks to an
// external HTTP charge API.
package payment

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/application/order/gateway"
	"github.com/orderline-io/orderline/internal/shared/biztime"
	"github.com/orderline-io/orderline/internal/shared/id"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

// SandboxGateway approves every charge without leaving the process. It is
// the default provider for development and tests.
type SandboxGateway struct {
	logger logger.Interface
}

func NewSandboxGateway(logger logger.Interface) *SandboxGateway {
	return &SandboxGateway{logger: logger}
}

var _ gateway.PaymentGateway = (*SandboxGateway)(nil)

func (g *SandboxGateway) Charge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("charge amount must be positive, got %d", req.Amount)
	}
	if req.Reference == "" {
		return nil, fmt.Errorf("payment reference is required")
	}

	txnSuffix, err := id.Generate(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	g.logger.Infow("sandbox charge approved",
		"order_no", req.OrderNo,
		"amount", req.Amount,
		"currency", req.Currency)

	return &gateway.ChargeResponse{
		TransactionID: "txn_" + txnSuffix,
		PaidAt:        biztime.NowUTC(),
	}, nil
}

func (g *SandboxGateway) Refund(ctx context.Context, req gateway.RefundRequest) (*gateway.RefundResponse, error) {
	if req.TransactionID == "" {
		return nil, fmt.Errorf("transaction id is required")
	}

	refundSuffix, err := id.Generate(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refund id: %w", err)
	}

	g.logger.Infow("sandbox refund approved",
		"order_no", req.OrderNo,
		"transaction_id", req.TransactionID,
		"amount", req.Amount)

	return &gateway.RefundResponse{
		RefundID:   "ref_" + refundSuffix,
		RefundedAt: biztime.NowUTC(),
	}, nil
}
