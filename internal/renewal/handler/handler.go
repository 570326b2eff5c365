package handler

import (
	"net/http"
	"time"

	"renewal-server/internal/apierrors"
	"renewal-server/internal/observability"
	"renewal-server/internal/renewal/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	processor processor.RenewalProcessor
	logger    *observability.Logger
}

func New(processor processor.RenewalProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

const dateFormat = "2006-01-02"

// RenewPolicyRequest represents the HTTP request for renewing a policy
type RenewPolicyRequest struct {
	NewPolicyNumber string              `json:"new_policy_number" binding:"required,min=1,max=100"`
	Insurer         *string             `json:"insurer,omitempty"`
	StartDate       string              `json:"start_date" binding:"required"`
	EndDate         string              `json:"end_date" binding:"required"`
	PremiumAmount   decimal.Decimal     `json:"premium_amount"`
	ODPremium       decimal.NullDecimal `json:"od_premium,omitempty"`
	TPPremium       decimal.NullDecimal `json:"tp_premium,omitempty"`
	AddonPremium    decimal.NullDecimal `json:"addon_premium,omitempty"`
	NCBPercent      decimal.NullDecimal `json:"ncb_percent,omitempty"`
	PaymentMode     string              `json:"payment_mode"`
	PaymentTxnRef   *string             `json:"payment_txn_ref,omitempty"`
	VehicleMake     *string             `json:"vehicle_make,omitempty"`
	VehicleModel    *string             `json:"vehicle_model,omitempty"`
}

// HandleRenewPolicy handles POST /api/policies/:policy_id/renew
func (h *Handler) HandleRenewPolicy(c *gin.Context) {
	ctx := c.Request.Context()

	policyID, err := uuid.Parse(c.Param("policy_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid policy id"))
		return
	}

	var req RenewPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	startDate, err := time.Parse(dateFormat, req.StartDate)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid start_date, expected YYYY-MM-DD"))
		return
	}
	endDate, err := time.Parse(dateFormat, req.EndDate)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid end_date, expected YYYY-MM-DD"))
		return
	}

	successor, err := h.processor.Renew(ctx, policyID, processor.RenewRequest{
		NewPolicyNumber: req.NewPolicyNumber,
		Insurer:         req.Insurer,
		StartDate:       startDate,
		EndDate:         endDate,
		PremiumAmount:   req.PremiumAmount,
		ODPremium:       req.ODPremium,
		TPPremium:       req.TPPremium,
		AddonPremium:    req.AddonPremium,
		NCBPercent:      req.NCBPercent,
		PaymentMode:     req.PaymentMode,
		PaymentTxnRef:   req.PaymentTxnRef,
		VehicleMake:     req.VehicleMake,
		VehicleModel:    req.VehicleModel,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successor)
}
