package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/shared/logger"
	"github.com/orderline-io/orderline/internal/shared/utils"
)

type ListProductsQuery struct {
	IncludeArchived bool
	Pagination      utils.Pagination
}

type ListProductsResult struct {
	Products []*product.Product
	Total    int64
}

type ListProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo product.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	products, total, err := uc.productRepo.List(ctx, product.ListFilter{
		IncludeArchived: query.IncludeArchived,
		Page:            query.Pagination.Page,
		PageSize:        query.Pagination.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsResult{Products: products, Total: total}, nil
}
