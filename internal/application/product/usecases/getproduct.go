package usecases

import (
	"context"

	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/shared/logger"
	"github.com/orderline-io/orderline/internal/shared/services/markdown"
)

type GetProductQuery struct {
	ProductSID string
}

type GetProductResult struct {
	Product *product.Product
	// DescriptionHTML is the rendered, sanitized markdown description.
	DescriptionHTML string
}

type GetProductUseCase struct {
	productRepo product.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewGetProductUseCase(
	productRepo product.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, query GetProductQuery) (*GetProductResult, error) {
	p, err := uc.productRepo.GetBySID(ctx, query.ProductSID)
	if err != nil {
		return nil, err
	}

	html, err := uc.markdown.ToHTMLSanitized(p.Description())
	if err != nil {
		// Rendering failure degrades to an empty description, it never
		// blocks the read.
		uc.logger.Warnw("failed to render product description", "error", err, "product_sid", p.SID())
		html = ""
	}

	return &GetProductResult{Product: p, DescriptionHTML: html}, nil
}
