package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/infrastructure/auth"
	"github.com/orderline-io/orderline/internal/shared/constants"
	"github.com/orderline-io/orderline/internal/shared/logger"
	"github.com/orderline-io/orderline/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService   *auth.JWTService
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, customerRepo customer.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtService,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// RequireAuth verifies the bearer token, resolves the customer, and puts
// the identity into the Gin context. Deactivated accounts are rejected
// even when their token is still valid.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		cust, err := m.customerRepo.GetBySID(c.Request.Context(), claims.CustomerSID)
		if err != nil {
			m.logger.Warnw("token references unknown customer", "customer_sid", claims.CustomerSID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if !cust.IsActive() {
			utils.ErrorResponse(c, http.StatusForbidden, "account is deactivated")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCustomerID, cust.ID())
		c.Set(constants.ContextKeyCustomerSID, cust.SID())
		c.Set(constants.ContextKeyRole, string(cust.Role()))

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
