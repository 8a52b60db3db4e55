// Package usecases implements the product catalog application services.
package usecases

import (
	"context"
	"fmt"

	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type CreateProductCommand struct {
	Name string
	// Description is raw markdown.
	Description   string
	AmountInCents int64
	Currency      string
	Stock         int
}

type CreateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewCreateProductUseCase(productRepo product.Repository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	price, err := vo.ParseMoney(cmd.AmountInCents, cmd.Currency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := product.NewProduct(cmd.Name, cmd.Description, price, cmd.Stock)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to save product", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	uc.logger.Infow("product created",
		"product_sid", p.SID(),
		"name", p.Name(),
		"stock", p.Stock())

	return p, nil
}
