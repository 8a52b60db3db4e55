package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type AdjustStockCommand struct {
	ProductSID string
	Stock      int
}

type AdjustStockUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewAdjustStockUseCase(productRepo product.Repository, logger logger.Interface) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute sets the absolute stock level for a product (restock or manual
// correction).
func (uc *AdjustStockUseCase) Execute(ctx context.Context, cmd AdjustStockCommand) (*product.Product, error) {
	p, err := uc.productRepo.GetBySID(ctx, cmd.ProductSID)
	if err != nil {
		return nil, err
	}

	previous := p.Stock()
	if err := p.AdjustStock(cmd.Stock); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist stock adjustment", "error", err, "product_sid", cmd.ProductSID)
		return nil, fmt.Errorf("failed to persist stock adjustment: %w", err)
	}

	uc.logger.Infow("stock adjusted",
		"product_sid", p.SID(),
		"previous", previous,
		"current", p.Stock())

	return p, nil
}
