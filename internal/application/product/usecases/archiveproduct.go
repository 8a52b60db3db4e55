package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type ArchiveProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewArchiveProductUseCase(productRepo product.Repository, logger logger.Interface) *ArchiveProductUseCase {
	return &ArchiveProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute retires a product from sale. Existing orders keep their line
// item snapshots, so archiving never affects order history.
func (uc *ArchiveProductUseCase) Execute(ctx context.Context, productSID string) (*product.Product, error) {
	p, err := uc.productRepo.GetBySID(ctx, productSID)
	if err != nil {
		return nil, err
	}

	p.Archive()

	if err := uc.productRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist product archive", "error", err, "product_sid", productSID)
		return nil, fmt.Errorf("failed to persist product archive: %w", err)
	}

	uc.logger.Infow("product archived", "product_sid", p.SID())

	return p, nil
}
