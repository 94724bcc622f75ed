package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moodpath/backend/internal/apierror"
	"github.com/moodpath/backend/internal/logger"
	"github.com/moodpath/backend/internal/models"
	"github.com/moodpath/backend/internal/repository"
	"github.com/moodpath/backend/internal/service"
)

// userID resolves the acting user. Authentication is handled outside this
// service; the gateway forwards the identity in a header. A missing header
// maps to the single-user default profile.
func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "default"
}

type EntryHandler struct {
	entryService service.EntryService
}

// NewEntryHandler creates a new mood entry handler
func NewEntryHandler(entryService service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// CreateEntry handles POST /api/v1/entries
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	var fieldErrors []apierror.FieldError
	if req.Timestamp.IsZero() {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "timestamp",
			Message: "is required",
			Code:    "required",
		})
	}
	if req.Mood == "" {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "mood",
			Message: "is required",
			Code:    "required",
		})
	}
	if len(fieldErrors) > 0 {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), userID(c), &req)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to create entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntries handles GET /api/v1/entries
func (h *EntryHandler) GetEntries(c *gin.Context) {
	entries, err := h.entryService.ListEntries(c.Request.Context(), userID(c))
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to list entries", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// GetEntry handles GET /api/v1/entries/:id
func (h *EntryHandler) GetEntry(c *gin.Context) {
	entry, err := h.entryService.GetEntry(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "entry", c.Param("id")))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry handles PUT /api/v1/entries/:id
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	var req models.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), userID(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "entry", c.Param("id")))
			return
		}
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to update entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/v1/entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	if err := h.entryService.DeleteEntry(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "entry", c.Param("id")))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.Status(http.StatusNoContent)
}
