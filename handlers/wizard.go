package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"sewakit/models"
	"sewakit/services/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the booking wizard over HTTP.
type WizardHandler struct {
	Svc    wizard.WizardService
	Logger *zap.Logger
}

// NewWizardHandler creates a WizardHandler.
func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Svc: svc, Logger: logger}
}

// wizardResponse wraps a session with its derived control state so thin
// clients can render the advance button without re-deriving validity.
func wizardResponse(session *models.WizardSession) models.WizardResponse {
	return models.WizardResponse{
		Session:    session,
		CanAdvance: wizard.CanAdvance(session),
	}
}

// respondError maps service errors onto HTTP statuses. Validation-class
// wizard errors stay 4xx; only submission failures reach 5xx territory.
func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var wizErr *wizard.WizardError
	if errors.As(err, &wizErr) {
		status := http.StatusBadRequest
		switch wizErr.Code {
		case "sessionNotFound":
			status = http.StatusNotFound
		case "submissionInProgress":
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": wizErr.Code, "message": wizErr.Message})
		return
	}

	var subErr *wizard.SubmissionError
	if errors.As(err, &subErr) {
		status := http.StatusBadGateway
		switch subErr.Kind {
		case wizard.SubmissionErrorUnauthorized:
			status = http.StatusUnauthorized
		case wizard.SubmissionErrorRejected:
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": "submissionFailed", "kind": string(subErr.Kind), "message": subErr.Message})
		return
	}

	h.Logger.Error("wizard request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "something went wrong"})
}

// StartSession handles POST /api/wizard/session.
func (h *WizardHandler) StartSession(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "missing user identity"})
		return
	}
	session, err := h.Svc.StartSession(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wizardResponse(session))
}

// GetSession handles GET /api/wizard/session/:sessionID.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(session))
}

// parseDate accepts plain dates and RFC3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// SetDates handles PUT /api/wizard/session/:sessionID/dates.
func (h *WizardHandler) SetDates(c *gin.Context) {
	var input struct {
		From string `json:"from" binding:"required"`
		To   string `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalidInput", "message": err.Error()})
		return
	}
	from, err := parseDate(input.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalidInput", "message": "from must be a date (YYYY-MM-DD)"})
		return
	}
	to, err := parseDate(input.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalidInput", "message": "to must be a date (YYYY-MM-DD)"})
		return
	}
	session, err := h.Svc.SetDateRange(c.Param("sessionID"), from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(session))
}

// AddItem handles POST /api/wizard/session/:sessionID/items.
func (h *WizardHandler) AddItem(c *gin.Context) {
	var input struct {
		ItemID string          `json:"itemId" binding:"required"`
		Kind   models.ItemKind `json:"kind" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalidInput", "message": err.Error()})
		return
	}
	session, err := h.Svc.AddItem(c.Param("sessionID"), input.ItemID, input.Kind)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(session))
}

// UpdateQuantity handles PUT /api/wizard/session/:sessionID/items.
func (h *WizardHandler) UpdateQuantity(c *gin.Context) {
	var input struct {
		ItemID   string          `json:"itemId" binding:"required"`
		Kind     models.ItemKind `json:"kind" binding:"required"`
		Quantity int             `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalidInput", "message": err.Error()})
		return
	}
	session, err := h.Svc.SetQuantity(c.Param("sessionID"), input.ItemID, input.Kind, input.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(session))
}

// RemoveItem handles DELETE /api/wizard/session/:sessionID/items/:kind/:itemID.
func (h *WizardHandler) RemoveItem(c *gin.Context) {
	session, err := h.Svc.RemoveItem(
		c.Param("sessionID"), c.Param("itemID"), models.ItemKind(c.Param("kind")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(session))
}

// Next handles POST /api/wizard/session/:sessionID/next.
func (h *WizardHandler) Next(c *gin.Context) {
	session, err := h.Svc.Next(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(session))
}

// Previous handles POST /api/wizard/session/:sessionID/previous.
func (h *WizardHandler) Previous(c *gin.Context) {
	session, err := h.Svc.Previous(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(session))
}

// GoTo handles POST /api/wizard/session/:sessionID/goto.
func (h *WizardHandler) GoTo(c *gin.Context) {
	var input struct {
		Step *int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalidInput", "message": err.Error()})
		return
	}
	session, err := h.Svc.GoTo(c.Param("sessionID"), *input.Step)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(session))
}

// Summary handles GET /api/wizard/session/:sessionID/summary.
func (h *WizardHandler) Summary(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Svc.GetSession(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	summary, err := h.Svc.Summary(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	resp := wizardResponse(session)
	resp.Summary = summary
	c.JSON(http.StatusOK, resp)
}

// Confirm handles POST /api/wizard/session/:sessionID/confirm.
func (h *WizardHandler) Confirm(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	// An empty body means no notes.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalidInput", "message": err.Error()})
		return
	}
	confirmation, err := h.Svc.Finish(c.Request.Context(), c.Param("sessionID"), input.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": confirmation})
}

// Cancel handles DELETE /api/wizard/session/:sessionID.
func (h *WizardHandler) Cancel(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
