package usecases

import (
	"context"

	"github.com/orderline-io/orderline/internal/application/order/gateway"
	"github.com/orderline-io/orderline/internal/domain/order"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type mockOrderRepository struct {
	CreateFunc             func(ctx context.Context, o *order.Order) error
	UpdateFunc             func(ctx context.Context, o *order.Order) error
	GetByIDFunc            func(ctx context.Context, dbID uint) (*order.Order, error)
	GetBySIDFunc           func(ctx context.Context, sid string) (*order.Order, error)
	GetByOrderNoFunc       func(ctx context.Context, orderNo string) (*order.Order, error)
	ListFunc               func(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error)
	ListExpiredPendingFunc func(ctx context.Context, limit int) ([]*order.Order, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, dbID uint) (*order.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, dbID)
	}
	return nil, nil
}

func (m *mockOrderRepository) GetBySID(ctx context.Context, sid string) (*order.Order, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	if m.GetByOrderNoFunc != nil {
		return m.GetByOrderNoFunc(ctx, orderNo)
	}
	return nil, nil
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockOrderRepository) ListExpiredPending(ctx context.Context, limit int) ([]*order.Order, error) {
	if m.ListExpiredPendingFunc != nil {
		return m.ListExpiredPendingFunc(ctx, limit)
	}
	return nil, nil
}

type mockProductRepository struct {
	CreateFunc   func(ctx context.Context, p *product.Product) error
	UpdateFunc   func(ctx context.Context, p *product.Product) error
	GetByIDFunc  func(ctx context.Context, id uint) (*product.Product, error)
	GetBySIDFunc func(ctx context.Context, sid string) (*product.Product, error)
	ListFunc     func(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error)
}

func (m *mockProductRepository) Create(ctx context.Context, p *product.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) GetBySID(ctx context.Context, sid string) (*product.Product, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockPaymentGateway struct {
	ChargeFunc func(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResponse, error)
	RefundFunc func(ctx context.Context, req gateway.RefundRequest) (*gateway.RefundResponse, error)
}

func (m *mockPaymentGateway) Charge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResponse, error) {
	if m.ChargeFunc != nil {
		return m.ChargeFunc(ctx, req)
	}
	return &gateway.ChargeResponse{TransactionID: "txn_test"}, nil
}

func (m *mockPaymentGateway) Refund(ctx context.Context, req gateway.RefundRequest) (*gateway.RefundResponse, error) {
	if m.RefundFunc != nil {
		return m.RefundFunc(ctx, req)
	}
	return &gateway.RefundResponse{RefundID: "ref_test"}, nil
}

type mockShipmentCarrier struct {
	CreateShipmentFunc func(ctx context.Context, req gateway.ShipmentRequest) (*gateway.ShipmentResponse, error)
}

func (m *mockShipmentCarrier) CreateShipment(ctx context.Context, req gateway.ShipmentRequest) (*gateway.ShipmentResponse, error) {
	if m.CreateShipmentFunc != nil {
		return m.CreateShipmentFunc(ctx, req)
	}
	return &gateway.ShipmentResponse{TrackingNo: "TRK-TEST", Carrier: "flatrate"}, nil
}

type mockPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, kv ...any)       {}
func (m *mockLogger) Infow(msg string, kv ...any)        {}
func (m *mockLogger) Warnw(msg string, kv ...any)        {}
func (m *mockLogger) Errorw(msg string, kv ...any)       {}
