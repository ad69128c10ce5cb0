// Package authapi exposes the jwt strategy's register and login endpoints.
// Both paths are public: they run before any principal exists.
package authapi

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ishwor/authcookbook/auth"
	"github.com/ishwor/authcookbook/auth/password"
	apperrors "github.com/ishwor/authcookbook/errors"
	"github.com/ishwor/authcookbook/logger"
	"github.com/ishwor/authcookbook/server"
	"github.com/ishwor/authcookbook/validation"
)

// Handler implements the register and login endpoints.
type Handler struct {
	store  auth.CredentialStore
	hasher password.Hasher
	tokens auth.TokenIssuer
	log    *logger.Logger
}

// NewHandler creates the auth handler.
func NewHandler(store auth.CredentialStore, hasher password.Hasher, tokens auth.TokenIssuer, log *logger.Logger) *Handler {
	return &Handler{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		log:    log.WithComponent("authapi"),
	}
}

// Register handles POST /auth/register. New users always get the USER role;
// admin credentials are seeded at startup, never self-assigned.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("password", err.Error()))
		return
	}

	rec, err := h.store.Create(c.Request.Context(), req.Email, hash, auth.RoleUser)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateIdentity) {
			server.RespondWithError(c, apperrors.AlreadyExists("user"))
			return
		}
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	h.log.Info("User registered", map[string]interface{}{"identity": rec.Identity})
	server.RespondCreated(c, gin.H{"email": rec.Identity})
}

// Login handles POST /auth/login. Unknown identity and wrong password
// produce the same response; the distinction is only logged.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	rec, err := h.store.FindByIdentity(c.Request.Context(), req.Email)
	if err != nil {
		h.log.Debug("Login with unknown identity", map[string]interface{}{"identity": req.Email})
		server.RespondWithError(c, apperrors.Unauthorized("Invalid credentials"))
		return
	}

	if err := h.hasher.Verify(req.Password, rec.PasswordHash); err != nil {
		h.log.Debug("Login with wrong password", map[string]interface{}{"identity": req.Email})
		server.RespondWithError(c, apperrors.Unauthorized("Invalid credentials"))
		return
	}

	token, err := h.tokens.Issue(rec.Identity, rec.Role)
	if err != nil {
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	server.RespondOK(c, bearer(token))
}
