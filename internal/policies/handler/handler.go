package handler

import (
	"net/http"
	"strconv"
	"time"

	"renewal-server/internal/apierrors"
	"renewal-server/internal/observability"
	"renewal-server/internal/policies/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	processor processor.PolicyProcessor
	logger    *observability.Logger
}

func New(processor processor.PolicyProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

const dateFormat = "2006-01-02"

// HandleListPolicies handles GET /api/policies
func (h *Handler) HandleListPolicies(c *gin.Context) {
	ctx := c.Request.Context()

	req := processor.ListRequest{
		Bucket: c.Query("bucket"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if agentIDStr := c.Query("agent_id"); agentIDStr != "" {
		agentID, err := uuid.Parse(agentIDStr)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid agent id"))
			return
		}
		req.AgentID = &agentID
	}
	req.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	req.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))

	response, err := h.processor.List(ctx, req)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// HandleGetPolicy handles GET /api/policies/:policy_id
func (h *Handler) HandleGetPolicy(c *gin.Context) {
	ctx := c.Request.Context()

	policyID, err := uuid.Parse(c.Param("policy_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid policy id"))
		return
	}

	policy, err := h.processor.Get(ctx, policyID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

// NewCustomerRequest is an inline customer on a manual policy create.
type NewCustomerRequest struct {
	Name   string  `json:"name" binding:"required,min=1,max=200"`
	Mobile string  `json:"mobile" binding:"required,min=10,max=15"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
}

// VehicleRequest is the covered vehicle on a manual policy create.
type VehicleRequest struct {
	Registration    string  `json:"registration" binding:"required,min=4,max=20"`
	Make            string  `json:"make,omitempty"`
	Model           string  `json:"model,omitempty"`
	Variant         *string `json:"variant,omitempty"`
	FuelType        *string `json:"fuel_type,omitempty"`
	ManufactureYear *int    `json:"manufacture_year,omitempty" binding:"omitempty,gte=1950"`
}

// CreatePolicyRequest represents the HTTP request for creating a policy
type CreatePolicyRequest struct {
	CustomerID  *uuid.UUID          `json:"customer_id,omitempty"`
	NewCustomer *NewCustomerRequest `json:"new_customer,omitempty"`
	Vehicle     VehicleRequest      `json:"vehicle" binding:"required"`

	PolicyNumber  string              `json:"policy_number" binding:"required,min=1,max=100"`
	Insurer       string              `json:"insurer,omitempty"`
	StartDate     *string             `json:"start_date,omitempty"`
	EndDate       *string             `json:"end_date,omitempty"`
	PremiumAmount decimal.Decimal     `json:"premium_amount"`
	ODPremium     decimal.NullDecimal `json:"od_premium,omitempty"`
	TPPremium     decimal.NullDecimal `json:"tp_premium,omitempty"`
	AddonPremium  decimal.NullDecimal `json:"addon_premium,omitempty"`
	NCBPercent    decimal.NullDecimal `json:"ncb_percent,omitempty"`
	ClaimDetails  *string             `json:"claim_details,omitempty"`

	AssignedAgentID *uuid.UUID `json:"assigned_agent_id,omitempty"`
}

// HandleCreatePolicy handles POST /api/policies
func (h *Handler) HandleCreatePolicy(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid start_date, expected YYYY-MM-DD"))
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid end_date, expected YYYY-MM-DD"))
		return
	}

	processorReq := processor.CreateRequest{
		CustomerID: req.CustomerID,
		Vehicle: processor.NewVehicle{
			Registration:    req.Vehicle.Registration,
			Make:            req.Vehicle.Make,
			Model:           req.Vehicle.Model,
			Variant:         req.Vehicle.Variant,
			FuelType:        req.Vehicle.FuelType,
			ManufactureYear: req.Vehicle.ManufactureYear,
		},
		PolicyNumber:    req.PolicyNumber,
		Insurer:         req.Insurer,
		StartDate:       startDate,
		EndDate:         endDate,
		PremiumAmount:   req.PremiumAmount,
		ODPremium:       req.ODPremium,
		TPPremium:       req.TPPremium,
		AddonPremium:    req.AddonPremium,
		NCBPercent:      req.NCBPercent,
		ClaimDetails:    req.ClaimDetails,
		AssignedAgentID: req.AssignedAgentID,
	}
	if req.NewCustomer != nil {
		processorReq.NewCustomer = &processor.NewCustomer{
			Name:   req.NewCustomer.Name,
			Mobile: req.NewCustomer.Mobile,
			Email:  req.NewCustomer.Email,
		}
	}

	policy, err := h.processor.Create(ctx, processorReq)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, policy)
}

// UpdatePolicyRequest represents the HTTP request for a manual correction
type UpdatePolicyRequest struct {
	PolicyNumber     *string              `json:"policy_number,omitempty" binding:"omitempty,min=1,max=100"`
	Insurer          *string              `json:"insurer,omitempty"`
	StartDate        *string              `json:"start_date,omitempty"`
	EndDate          *string              `json:"end_date,omitempty"`
	RenewalStatus    *string              `json:"renewal_status,omitempty"`
	RenewalStage     *string              `json:"renewal_stage,omitempty"`
	NextFollowUpDate *time.Time           `json:"next_follow_up_date,omitempty"`
	AssignedAgentID  *uuid.UUID           `json:"assigned_agent_id,omitempty"`
	PremiumAmount    *decimal.Decimal     `json:"premium_amount,omitempty"`
	ODPremium        *decimal.NullDecimal `json:"od_premium,omitempty"`
	TPPremium        *decimal.NullDecimal `json:"tp_premium,omitempty"`
	AddonPremium     *decimal.NullDecimal `json:"addon_premium,omitempty"`
	NCBPercent       *decimal.NullDecimal `json:"ncb_percent,omitempty"`
	ClaimDetails     *string              `json:"claim_details,omitempty"`
}

// HandleUpdatePolicy handles PATCH /api/policies/:policy_id
func (h *Handler) HandleUpdatePolicy(c *gin.Context) {
	ctx := c.Request.Context()

	policyID, err := uuid.Parse(c.Param("policy_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid policy id"))
		return
	}

	var req UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid start_date, expected YYYY-MM-DD"))
		return
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid end_date, expected YYYY-MM-DD"))
		return
	}

	policy, err := h.processor.Update(ctx, policyID, processor.UpdateRequest{
		PolicyNumber:     req.PolicyNumber,
		Insurer:          req.Insurer,
		StartDate:        startDate,
		EndDate:          endDate,
		RenewalStatus:    req.RenewalStatus,
		RenewalStage:     req.RenewalStage,
		NextFollowUpDate: req.NextFollowUpDate,
		AssignedAgentID:  req.AssignedAgentID,
		PremiumAmount:    req.PremiumAmount,
		ODPremium:        req.ODPremium,
		TPPremium:        req.TPPremium,
		AddonPremium:     req.AddonPremium,
		NCBPercent:       req.NCBPercent,
		ClaimDetails:     req.ClaimDetails,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

// HandleGetStats handles GET /api/stats
func (h *Handler) HandleGetStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.processor.Stats(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFormat, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
