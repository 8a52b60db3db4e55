package handlers

import (
	"context"

	"github.com/orderline-io/orderline/internal/application/product/usecases"
	"github.com/orderline-io/orderline/internal/domain/product"
)

// Use case interfaces for ProductHandler

type createProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProductCommand) (*product.Product, error)
}

type getProductUseCase interface {
	Execute(ctx context.Context, query usecases.GetProductQuery) (*usecases.GetProductResult, error)
}

type listProductsUseCase interface {
	Execute(ctx context.Context, query usecases.ListProductsQuery) (*usecases.ListProductsResult, error)
}

type adjustStockUseCase interface {
	Execute(ctx context.Context, cmd usecases.AdjustStockCommand) (*product.Product, error)
}

type archiveProductUseCase interface {
	Execute(ctx context.Context, productSID string) (*product.Product, error)
}
