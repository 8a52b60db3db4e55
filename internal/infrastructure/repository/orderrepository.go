// Package repository provides the GORM-backed implementations of the domain
// repository interfaces. Not-found lookups translate to AppError not-found
// so entry points can map them without inspecting GORM errors.
package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orderline-io/orderline/internal/domain/order"
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/mappers"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/models"
	"github.com/orderline-io/orderline/internal/shared/biztime"
	"github.com/orderline-io/orderline/internal/shared/constants"
	"github.com/orderline-io/orderline/internal/shared/db"
	"github.com/orderline-io/orderline/internal/shared/errors"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model, err := mappers.OrderToModel(o)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	o.SetID(model.ID)
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model, err := mappers.OrderToModel(o)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"transaction_id": model.TransactionID,
			"tracking_no":    model.TrackingNo,
			"cancel_reason":  model.CancelReason,
			"paid_at":        model.PaidAt,
			"shipped_at":     model.ShippedAt,
			"cancelled_at":   model.CancelledAt,
			"metadata":       model.Metadata,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, dbID uint) (*order.Order, error) {
	var model models.OrderModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, dbID).Error; err != nil {
		return nil, translateOrderLookupError(err)
	}
	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) GetBySID(ctx context.Context, sid string) (*order.Order, error) {
	var model models.OrderModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		return nil, translateOrderLookupError(err)
	}
	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	var model models.OrderModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_no = ?", orderNo).
		First(&model).Error; err != nil {
		return nil, translateOrderLookupError(err)
	}
	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) List(ctx context.Context, filter order.ListFilter) ([]*order.Order, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.OrderModel{})

	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	var orderModels []models.OrderModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(orderModels))
	for i := range orderModels {
		o, err := mappers.OrderToDomain(&orderModels[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

func (r *OrderRepository) ListExpiredPending(ctx context.Context, limit int) ([]*order.Order, error) {
	var orderModels []models.OrderModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND expires_at < ?", vo.OrderStatusPending.String(), biztime.NowUTC()).
		Order("expires_at ASC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list expired pending orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(orderModels))
	for i := range orderModels {
		o, err := mappers.OrderToDomain(&orderModels[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func translateOrderLookupError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFoundError("order not found")
	}
	return fmt.Errorf("failed to get order: %w", err)
}
