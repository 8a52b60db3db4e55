// Package migration brings the database schema up to date. Development
// environments use GORM auto migrate; test and production run versioned
// SQL scripts.
package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/orderline-io/orderline/internal/infrastructure/persistence/models"
	"github.com/orderline-io/orderline/internal/shared/constants"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

// DefaultScriptsPath is where the SQL migration scripts live relative to
// the repository root.
const DefaultScriptsPath = "./internal/infrastructure/migration/scripts"

type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a migration strategy for the environment.
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, _ := filepath.Abs(DefaultScriptsPath)
		strategy = NewGolangMigrateStrategy(scriptsPath)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed",
		"strategy", m.strategy.GetName())

	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// AutoMigrateModels lists every model the auto migrate strategy manages.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.OrderModel{},
	}
}
