package bootstrap

import (
	"fmt"

	"github.com/go-authgate/authsync/internal/config"
	"github.com/go-authgate/authsync/internal/store"
)

// validateAllConfiguration validates all configuration settings
func validateAllConfiguration(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateDatabaseDriver(cfg); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}
	return nil
}

// validateDatabaseDriver checks the driver against the registered dialectors
func validateDatabaseDriver(cfg *config.Config) error {
	for _, name := range store.SupportedDrivers() {
		if name == cfg.DatabaseDriver {
			return nil
		}
	}
	return fmt.Errorf(
		"unsupported DATABASE_DRIVER: %s (registered: %v)",
		cfg.DatabaseDriver,
		store.SupportedDrivers(),
	)
}
