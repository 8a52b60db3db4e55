package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/mappers"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/models"
	"github.com/orderline-io/orderline/internal/shared/constants"
	"github.com/orderline-io/orderline/internal/shared/db"
	"github.com/orderline-io/orderline/internal/shared/errors"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	model := mappers.ProductToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	model := mappers.ProductToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProductModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"price_cents": model.PriceCents,
			"currency":    model.Currency,
			"stock":       model.Stock,
			"archived":    model.Archived,
			"version":     model.Version,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		return nil, translateProductLookupError(err)
	}
	return mappers.ProductToDomain(&model), nil
}

func (r *ProductRepository) GetBySID(ctx context.Context, sid string) (*product.Product, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		return nil, translateProductLookupError(err)
	}
	return mappers.ProductToDomain(&model), nil
}

func (r *ProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{})

	if !filter.IncludeArchived {
		query = query.Where("archived = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	var productModels []models.ProductModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&productModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*product.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, mappers.ProductToDomain(&productModels[i]))
	}

	return products, total, nil
}

func translateProductLookupError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFoundError("product not found")
	}
	return fmt.Errorf("failed to get product: %w", err)
}
