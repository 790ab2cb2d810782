package bootstrap

import (
	"fmt"
	"log"

	"github.com/go-authgate/authsync/internal/auth"
	"github.com/go-authgate/authsync/internal/client"
	"github.com/go-authgate/authsync/internal/config"
	"github.com/go-authgate/authsync/internal/core"
	"github.com/go-authgate/authsync/internal/roles"
)

// initializeLoginBackend creates the login backend selected by AUTH_BACKEND
func initializeLoginBackend(cfg *config.Config) (core.LoginBackend, error) {
	switch cfg.AuthBackend {
	case config.AuthBackendHTTPAPI:
		retryClient, err := client.NewAuthAPIClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP API auth client: %w", err)
		}
		log.Printf("HTTP API authentication enabled: %s", cfg.HTTPAPIURL)
		return auth.NewHTTPAPIBackend(cfg, retryClient), nil
	case config.AuthBackendFile:
		backend, err := auth.NewFileBackend(cfg.AuthFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load user database: %w", err)
		}
		log.Printf("File authentication enabled: %s", cfg.AuthFilePath)
		return backend, nil
	default:
		return nil, fmt.Errorf("invalid AUTH_BACKEND: %s", cfg.AuthBackend)
	}
}

// initializeBackendRegistry binds the configured backend to AUTH_DOMAIN
func initializeBackendRegistry(cfg *config.Config) (*auth.Registry, error) {
	backend, err := initializeLoginBackend(cfg)
	if err != nil {
		return nil, err
	}

	registry := auth.NewRegistry()
	registry.Register(cfg.AuthDomain, backend)
	log.Printf("Backend domain %q -> %s", cfg.AuthDomain, backend.Name())
	return registry, nil
}

// initializeRoleExtractors builds the extractor registry. The configured
// strategy applies to every backend type.
func initializeRoleExtractors(cfg *config.Config) (*roles.Registry, error) {
	ext, err := roles.NewExtractor(cfg.RoleStrategy)
	if err != nil {
		return nil, err
	}

	registry := roles.NewRegistry(ext)
	for _, backendType := range []string{auth.BackendFile, auth.BackendHTTPAPI} {
		registry.Register(backendType, ext)
	}
	log.Printf("Role extraction: strategy=%s marker=%q", cfg.RoleStrategy, cfg.RoleMarkerGroup)
	return registry, nil
}
