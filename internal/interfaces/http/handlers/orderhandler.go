package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderline-io/orderline/internal/application/order/usecases"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/constants"
	"github.com/orderline-io/orderline/internal/shared/logger"
	"github.com/orderline-io/orderline/internal/shared/utils"
)

type OrderHandler struct {
	placeOrderUC  placeOrderUseCase
	payOrderUC    payOrderUseCase
	shipOrderUC   shipOrderUseCase
	cancelOrderUC cancelOrderUseCase
	getOrderUC    getOrderUseCase
	listOrdersUC  listOrdersUseCase
	logger        logger.Interface
}

func NewOrderHandler(
	placeOrderUC placeOrderUseCase,
	payOrderUC payOrderUseCase,
	shipOrderUC shipOrderUseCase,
	cancelOrderUC cancelOrderUseCase,
	getOrderUC getOrderUseCase,
	listOrdersUC listOrdersUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		placeOrderUC:  placeOrderUC,
		payOrderUC:    payOrderUC,
		shipOrderUC:   shipOrderUC,
		cancelOrderUC: cancelOrderUC,
		getOrderUC:    getOrderUC,
		listOrdersUC:  listOrdersUC,
		logger:        logger,
	}
}

type PlaceOrderItemRequest struct {
	ProductSID string `json:"product_sid" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

type PlaceOrderRequest struct {
	Items []PlaceOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type PayOrderRequest struct {
	Reference string `json:"reference" binding:"required"`
}

type ShipOrderRequest struct {
	Destination string `json:"destination" binding:"required"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	customerID, _, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "customer not authenticated")
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for place order", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]usecases.PlaceOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecases.PlaceOrderItemInput{
			ProductSID: item.ProductSID,
			Quantity:   item.Quantity,
		})
	}

	result, err := h.placeOrderUC.Execute(c.Request.Context(), usecases.PlaceOrderCommand{
		CustomerID: customerID,
		Items:      items,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toOrderResponse(result), "order placed successfully")
}

func (h *OrderHandler) PayOrder(c *gin.Context) {
	customerID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "customer not authenticated")
		return
	}

	var req PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for pay order", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.payOrderUC.Execute(c.Request.Context(), usecases.PayOrderCommand{
		OrderSID:   c.Param("sid"),
		CustomerID: customerID,
		Role:       role,
		Reference:  req.Reference,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order paid successfully", toOrderResponse(result))
}

func (h *OrderHandler) ShipOrder(c *gin.Context) {
	var req ShipOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for ship order", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.shipOrderUC.Execute(c.Request.Context(), usecases.ShipOrderCommand{
		OrderSID:    c.Param("sid"),
		Destination: req.Destination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order shipped successfully", toOrderResponse(result))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	customerID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "customer not authenticated")
		return
	}

	// The reason body is optional.
	var req CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for cancel order", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := h.cancelOrderUC.Execute(c.Request.Context(), usecases.CancelOrderCommand{
		OrderSID:   c.Param("sid"),
		CustomerID: customerID,
		Role:       role,
		Reason:     req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order cancelled successfully", toOrderResponse(result))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	customerID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "customer not authenticated")
		return
	}

	result, err := h.getOrderUC.Execute(c.Request.Context(), usecases.GetOrderQuery{
		OrderSID:   c.Param("sid"),
		CustomerID: customerID,
		Role:       role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toOrderResponse(result))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	customerID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "customer not authenticated")
		return
	}

	pagination := utils.ParsePagination(c)

	query := usecases.ListOrdersQuery{
		CustomerID:  customerID,
		Role:        role,
		RequesterID: customerID,
		Status:      c.Query("status"),
		Pagination:  pagination,
	}

	// Admins may list all orders or scope to a specific customer id.
	if role.IsAdmin() {
		query.CustomerID = 0
	}

	result, err := h.listOrdersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toOrderResponses(result.Orders), result.Total, pagination.Page, pagination.PageSize)
}

// currentIdentity reads the authenticated customer from the Gin context.
func currentIdentity(c *gin.Context) (uint, authorization.Role, bool) {
	value, exists := c.Get(constants.ContextKeyCustomerID)
	if !exists {
		return 0, "", false
	}

	customerID, ok := value.(uint)
	if !ok {
		return 0, "", false
	}

	role := authorization.ParseRole(c.GetString(constants.ContextKeyRole))
	return customerID, role, true
}
