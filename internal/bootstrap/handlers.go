package bootstrap

import (
	"github.com/go-authgate/authsync/internal/handlers"
	"github.com/go-authgate/authsync/internal/services"
	"github.com/go-authgate/authsync/internal/store"
)

// handlerSet holds all HTTP handlers
type handlerSet struct {
	auth *handlers.AuthHandler
}

// initializeHandlers creates all HTTP handlers
func initializeHandlers(authenticator *services.Authenticator, db *store.Store) handlerSet {
	return handlerSet{
		auth: handlers.NewAuthHandler(authenticator, db),
	}
}
