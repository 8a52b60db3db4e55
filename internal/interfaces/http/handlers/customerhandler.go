package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderline-io/orderline/internal/application/customer/usecases"
	"github.com/orderline-io/orderline/internal/shared/constants"
	"github.com/orderline-io/orderline/internal/shared/logger"
	"github.com/orderline-io/orderline/internal/shared/utils"
)

type CustomerHandler struct {
	registerUC registerCustomerUseCase
	loginUC    loginCustomerUseCase
	getUC      getCustomerUseCase
	refresher  tokenRefresher
	logger     logger.Interface
}

func NewCustomerHandler(
	registerUC registerCustomerUseCase,
	loginUC loginCustomerUseCase,
	getUC getCustomerUseCase,
	refresher tokenRefresher,
	logger logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		getUC:      getUC,
		refresher:  refresher,
		logger:     logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LoginResponse struct {
	Customer     CustomerResponse `json:"customer"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresIn    int64            `json:"expires_in"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCustomerCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCustomerResponse(result), "customer registered successfully")
}

func (h *CustomerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCustomerCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", LoginResponse{
		Customer:     toCustomerResponse(result.Customer),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

func (h *CustomerHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	accessToken, err := h.refresher.Refresh(req.RefreshToken)
	if err != nil {
		h.logger.Warnw("token refresh failed", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", RefreshResponse{AccessToken: accessToken})
}

// GetProfile returns the authenticated customer's own record.
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	customerID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "customer not authenticated")
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCustomerQuery{
		CustomerSID: c.GetString(constants.ContextKeyCustomerSID),
		RequesterID: customerID,
		Role:        role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toCustomerResponse(result))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, role, ok := currentIdentity(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "customer not authenticated")
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCustomerQuery{
		CustomerSID: c.Param("sid"),
		RequesterID: customerID,
		Role:        role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toCustomerResponse(result))
}
