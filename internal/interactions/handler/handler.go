package handler

import (
	"net/http"
	"time"

	"renewal-server/internal/apierrors"
	"renewal-server/internal/interactions/processor"
	"renewal-server/internal/observability"
	"renewal-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.InteractionProcessor
	logger    *observability.Logger
}

func New(processor processor.InteractionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// LogInteractionRequest represents the HTTP request for appending to the ledger
type LogInteractionRequest struct {
	AgentID          uuid.UUID  `json:"agent_id" binding:"required"`
	Type             string     `json:"type" binding:"required"`
	Outcome          string     `json:"outcome" binding:"required"`
	Remark           string     `json:"remark" binding:"required"`
	NextFollowUpDate *time.Time `json:"next_follow_up_date,omitempty"`
	LostReason       *string    `json:"lost_reason,omitempty"`
}

// HandleLogInteraction handles POST /api/policies/:policy_id/interactions
func (h *Handler) HandleLogInteraction(c *gin.Context) {
	ctx := c.Request.Context()

	policyID, err := uuid.Parse(c.Param("policy_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid policy id"))
		return
	}

	var req LogInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	response, err := h.processor.LogInteraction(ctx, policyID, processor.LogInteractionRequest{
		AgentID:          req.AgentID,
		Type:             store.InteractionType(req.Type),
		Outcome:          store.InteractionOutcome(req.Outcome),
		Remark:           req.Remark,
		NextFollowUpDate: req.NextFollowUpDate,
		LostReason:       req.LostReason,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// HandleListInteractions handles GET /api/policies/:policy_id/interactions
func (h *Handler) HandleListInteractions(c *gin.Context) {
	ctx := c.Request.Context()

	policyID, err := uuid.Parse(c.Param("policy_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid policy id"))
		return
	}

	interactions, err := h.processor.ListInteractions(ctx, policyID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interactions": interactions})
}
