package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orderline-io/orderline/internal/application/product/usecases"
	"github.com/orderline-io/orderline/internal/shared/logger"
	"github.com/orderline-io/orderline/internal/shared/utils"
)

type ProductHandler struct {
	createProductUC  createProductUseCase
	getProductUC     getProductUseCase
	listProductsUC   listProductsUseCase
	adjustStockUC    adjustStockUseCase
	archiveProductUC archiveProductUseCase
	logger           logger.Interface
}

func NewProductHandler(
	createProductUC createProductUseCase,
	getProductUC getProductUseCase,
	listProductsUC listProductsUseCase,
	adjustStockUC adjustStockUseCase,
	archiveProductUC archiveProductUseCase,
	logger logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		createProductUC:  createProductUC,
		getProductUC:     getProductUC,
		listProductsUC:   listProductsUC,
		adjustStockUC:    adjustStockUC,
		archiveProductUC: archiveProductUC,
		logger:           logger,
	}
}

type CreateProductRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	AmountInCents int64  `json:"amount_in_cents" binding:"required,gt=0"`
	Currency      string `json:"currency" binding:"required,len=3"`
	Stock         int    `json:"stock" binding:"gte=0"`
}

type AdjustStockRequest struct {
	Stock int `json:"stock"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createProductUC.Execute(c.Request.Context(), usecases.CreateProductCommand{
		Name:          req.Name,
		Description:   req.Description,
		AmountInCents: req.AmountInCents,
		Currency:      req.Currency,
		Stock:         req.Stock,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toProductResponse(result), "product created successfully")
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	result, err := h.getProductUC.Execute(c.Request.Context(), usecases.GetProductQuery{
		ProductSID: c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := toProductResponse(result.Product)
	resp.DescriptionHTML = result.DescriptionHTML

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	includeArchived, _ := strconv.ParseBool(c.Query("include_archived"))

	result, err := h.listProductsUC.Execute(c.Request.Context(), usecases.ListProductsQuery{
		IncludeArchived: includeArchived,
		Pagination:      pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toProductResponses(result.Products), result.Total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) AdjustStock(c *gin.Context) {
	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for adjust stock", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.adjustStockUC.Execute(c.Request.Context(), usecases.AdjustStockCommand{
		ProductSID: c.Param("sid"),
		Stock:      req.Stock,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "stock adjusted successfully", toProductResponse(result))
}

func (h *ProductHandler) ArchiveProduct(c *gin.Context) {
	result, err := h.archiveProductUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "product archived successfully", toProductResponse(result))
}
