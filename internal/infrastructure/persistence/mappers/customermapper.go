package mappers

import (
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/models"
	"github.com/orderline-io/orderline/internal/shared/authorization"
)

func CustomerToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:           c.ID(),
		SID:          c.SID(),
		Email:        c.Email(),
		Name:         c.Name(),
		PasswordHash: c.PasswordHash(),
		Role:         c.Role().String(),
		Status:       string(c.Status()),
		Version:      c.Version(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func CustomerToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	status := customer.Status(model.Status)
	if status != customer.StatusActive && status != customer.StatusInactive {
		return nil, fmt.Errorf("invalid customer status: %s", model.Status)
	}

	return customer.Reconstruct(customer.ReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		Email:        model.Email,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		Role:         authorization.ParseRole(model.Role),
		Status:       status,
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}), nil
}
