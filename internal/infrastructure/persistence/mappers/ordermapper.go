// Package mappers translates between GORM models and domain aggregates.
package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/order"
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) (*models.OrderModel, error) {
	records := make([]models.OrderItemRecord, 0, len(o.Items()))
	for _, item := range o.Items() {
		records = append(records, models.OrderItemRecord{
			ProductSID:     item.ProductSID(),
			ProductName:    item.ProductName(),
			UnitPriceCents: item.UnitPrice().AmountInCents(),
			Currency:       item.UnitPrice().Currency(),
			Quantity:       item.Quantity(),
		})
	}
	itemsJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order items: %w", err)
	}

	model := &models.OrderModel{
		ID:            o.ID(),
		SID:           o.SID(),
		OrderNo:       o.OrderNo(),
		CustomerID:    o.CustomerID(),
		Items:         itemsJSON,
		TotalAmount:   o.Total().AmountInCents(),
		Currency:      o.Total().Currency(),
		Status:        o.Status().String(),
		TransactionID: o.TransactionID(),
		TrackingNo:    o.TrackingNo(),
		CancelReason:  o.CancelReason(),
		PaidAt:        o.PaidAt(),
		ShippedAt:     o.ShippedAt(),
		CancelledAt:   o.CancelledAt(),
		ExpiresAt:     o.ExpiresAt(),
		Version:       o.Version(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}

	if len(o.Metadata()) > 0 {
		metadataJSON, err := json.Marshal(o.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal order metadata: %w", err)
		}
		model.Metadata = metadataJSON
	}

	return model, nil
}

func OrderToDomain(model *models.OrderModel) (*order.Order, error) {
	status, ok := vo.ParseOrderStatus(model.Status)
	if !ok {
		return nil, fmt.Errorf("invalid order status: %s", model.Status)
	}

	var records []models.OrderItemRecord
	if err := json.Unmarshal(model.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	items := make([]vo.LineItem, 0, len(records))
	for _, r := range records {
		item, err := vo.NewLineItem(r.ProductSID, r.ProductName,
			vo.NewMoney(r.UnitPriceCents, r.Currency), r.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid order item: %w", err)
		}
		items = append(items, item)
	}

	metadata := make(map[string]interface{})
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order metadata: %w", err)
		}
	}

	return order.Reconstruct(order.ReconstructParams{
		ID:            model.ID,
		SID:           model.SID,
		OrderNo:       model.OrderNo,
		CustomerID:    model.CustomerID,
		Items:         items,
		Total:         vo.NewMoney(model.TotalAmount, model.Currency),
		Status:        status,
		TransactionID: model.TransactionID,
		TrackingNo:    model.TrackingNo,
		CancelReason:  model.CancelReason,
		PaidAt:        model.PaidAt,
		ShippedAt:     model.ShippedAt,
		CancelledAt:   model.CancelledAt,
		ExpiresAt:     model.ExpiresAt,
		Metadata:      metadata,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}), nil
}
