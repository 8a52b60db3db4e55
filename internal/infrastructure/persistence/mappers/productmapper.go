package mappers

import (
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/infrastructure/persistence/models"
)

func ProductToModel(p *product.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          p.ID(),
		SID:         p.SID(),
		Name:        p.Name(),
		Description: p.Description(),
		PriceCents:  p.Price().AmountInCents(),
		Currency:    p.Price().Currency(),
		Stock:       p.Stock(),
		Archived:    p.IsArchived(),
		Version:     p.Version(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ProductToDomain(model *models.ProductModel) *product.Product {
	return product.Reconstruct(product.ReconstructParams{
		ID:          model.ID,
		SID:         model.SID,
		Name:        model.Name,
		Description: model.Description,
		Price:       vo.NewMoney(model.PriceCents, model.Currency),
		Stock:       model.Stock,
		Archived:    model.Archived,
		Version:     model.Version,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	})
}
