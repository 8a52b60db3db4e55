package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/mappers"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/models"
	"github.com/orderline-io/orderline/internal/shared/db"
	"github.com/orderline-io/orderline/internal/shared/errors"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("email is already registered")
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"password_hash": model.PasswordHash,
			"status":        model.Status,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}

	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		return nil, translateCustomerLookupError(err)
	}
	return mappers.CustomerToDomain(&model)
}

func (r *CustomerRepository) GetBySID(ctx context.Context, sid string) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		return nil, translateCustomerLookupError(err)
	}
	return mappers.CustomerToDomain(&model)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		return nil, translateCustomerLookupError(err)
	}
	return mappers.CustomerToDomain(&model)
}

func translateCustomerLookupError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFoundError("customer not found")
	}
	return fmt.Errorf("failed to get customer: %w", err)
}
