package journal

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/ishwor/authcookbook/errors"
	"github.com/ishwor/authcookbook/server"
	"github.com/ishwor/authcookbook/validation"
)

// Handler exposes the journal CRUD endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates the journal handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /journal.
func (h *Handler) List(c *gin.Context) {
	journals, err := h.repo.List(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, journals)
}

// Get handles GET /journal/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	j, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, j)
}

// Create handles POST /journal.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	j, err := h.repo.Create(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, j)
}

// Update handles PUT /journal/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidInput("", "request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	j, err := h.repo.Update(c.Request.Context(), id, req.Title, req.Content)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, j)
}

// Delete handles DELETE /journal/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondNoContent(c)
}

// parseID extracts and validates the :id path parameter.
func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.InvalidInput("id", "must be a valid UUID")
	}
	return id, nil
}
