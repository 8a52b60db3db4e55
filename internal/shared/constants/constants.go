// Package constants holds cross-layer constants.
package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Deployment environments.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Gin context keys set by middleware and read by handlers.
const (
	ContextKeyCustomerID  = "customer_id"
	ContextKeyCustomerSID = "customer_sid"
	ContextKeyRole        = "customer_role"
)
