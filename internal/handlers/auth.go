package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-authgate/authsync/internal/core"
	"github.com/go-authgate/authsync/internal/models"
	"github.com/go-authgate/authsync/internal/services"
	"github.com/go-authgate/authsync/internal/store"

	"github.com/gin-gonic/gin"
)

// UserReader loads a stored user together with its granted roles.
type UserReader interface {
	GetUserWithRoles(ctx context.Context, loginName string) (*models.User, error)
}

type AuthHandler struct {
	authenticator *services.Authenticator
	users         UserReader
}

func NewAuthHandler(a *services.Authenticator, users UserReader) *AuthHandler {
	return &AuthHandler{
		authenticator: a,
		users:         users,
	}
}

// LoginRequest is the JSON body accepted by Login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

// AccountResponse is the public view of a stored user.
type AccountResponse struct {
	ID         string   `json:"id"`
	LoginName  string   `json:"login_name"`
	AuthSource string   `json:"auth_source,omitempty"`
	Roles      []string `json:"roles"`
}

// Login authenticates the posted credentials and synchronizes the identity.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "invalid_request",
			"error_description": "username is required",
		})
		return
	}

	username := req.Username
	outcome, err := h.authenticator.Authenticate(
		c.Request.Context(),
		core.Credential{LoginID: username, Secret: req.Password},
	)
	if err != nil {
		log.Printf("[Auth] Internal error for user=%s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             "server_error",
			"error_description": "authentication could not be completed",
		})
		return
	}

	if !outcome.Succeeded() {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": services.StatusFailure,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": services.StatusSuccess,
		"account": AccountResponse{
			ID:         outcome.Account.ID,
			LoginName:  outcome.Account.LoginName,
			AuthSource: outcome.Account.AuthSource,
			Roles:      outcome.Roles,
		},
	})
}

// GetUser returns a stored user and every role it has been granted.
func (h *AuthHandler) GetUser(c *gin.Context) {
	login := c.Param("login")

	user, err := h.users.GetUserWithRoles(c.Request.Context(), login)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "user_not_found",
			})
			return
		}
		log.Printf("[Auth] Failed to load user=%s: %v", login, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "server_error",
		})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{
		ID:         user.ID,
		LoginName:  user.LoginName,
		AuthSource: user.AuthSource,
		Roles:      user.RoleNames(),
	})
}
