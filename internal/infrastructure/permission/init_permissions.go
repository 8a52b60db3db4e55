package permission

import (
	"fmt"

	"github.com/orderline-io/orderline/internal/shared/logger"
)

// InitDefaultPolicies seeds the baseline role policies. AddPolicy is
// idempotent for existing rules, so re-running at startup is safe.
func InitDefaultPolicies(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin permissions - full access to catalog and order management
		{"admin", "product", "create"},
		{"admin", "product", "read"},
		{"admin", "product", "update"},
		{"admin", "product", "archive"},
		{"admin", "product", "adjust_stock"},
		{"admin", "order", "read"},
		{"admin", "order", "ship"},
		{"admin", "order", "cancel"},
		{"admin", "customer", "read"},

		// Customer permissions - browse the catalog and manage own orders
		{"customer", "product", "read"},
		{"customer", "order", "create"},
		{"customer", "order", "read"},
		{"customer", "order", "pay"},
		{"customer", "order", "cancel"},
	}

	for _, policy := range policies {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add default policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("default permission policies initialized")
	return nil
}
