package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"renewal-server/internal/bucketing"
	"renewal-server/internal/observability"
	"renewal-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PolicyStore defines the database operations required by PolicyProcessor
type PolicyStore interface {
	ListPolicies(ctx context.Context, params store.ListPoliciesParams) ([]store.Policy, int, error)
	GetPolicyByID(ctx context.Context, policyID uuid.UUID) (store.Policy, error)
	GetPolicyByNumber(ctx context.Context, policyNumber string) (store.Policy, error)
	GetActivePolicyForVehicle(ctx context.Context, registration, mobile string) (store.Policy, error)
	CreatePolicy(ctx context.Context, params store.CreatePolicyParams) (store.Policy, error)
	UpdatePolicy(ctx context.Context, policyID uuid.UUID, params store.UpdatePolicyParams) (store.Policy, error)
	GetPolicyStats(ctx context.Context, now time.Time) (store.PolicyStats, error)

	GetCustomerByID(ctx context.Context, customerID uuid.UUID) (store.Customer, error)
	GetCustomerByMobile(ctx context.Context, mobile string) (store.Customer, error)
	CreateCustomer(ctx context.Context, params store.CreateCustomerParams) (store.Customer, error)
	GetVehicleByRegistration(ctx context.Context, customerID uuid.UUID, registration string) (store.Vehicle, error)
	CreateVehicle(ctx context.Context, params store.CreateVehicleParams) (store.Vehicle, error)
}

var (
	ErrPolicyNotFound        = errors.New("policy not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerRequired      = errors.New("either customer_id or a new customer is required")
	ErrPolicyNumberRequired  = errors.New("policy number is required")
	ErrRegistrationRequired  = errors.New("vehicle registration is required")
	ErrMobileRequired        = errors.New("customer mobile is required")
	ErrInvalidBucket         = errors.New("invalid bucket")
	ErrInvalidStatus         = errors.New("invalid renewal status")
	ErrInvalidStage          = errors.New("invalid renewal stage")
	ErrDuplicatePolicyNumber = errors.New("policy number already exists")
	ErrActivePolicyExists    = errors.New("an active policy already exists for this vehicle")
	ErrRenewalViaUpdate      = errors.New("renewal status cannot be set to Renewed via update")
)

type PolicyProcessor struct {
	store           PolicyStore
	logger          *observability.Logger
	defaultPageSize int
	maxPageSize     int
}

func New(store PolicyStore, logger *observability.Logger, defaultPageSize, maxPageSize int) PolicyProcessor {
	return PolicyProcessor{
		store:           store,
		logger:          logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// PolicyWithBucket decorates a policy with its bucket computed against the
// request timestamp. The bucket is never read from storage.
type PolicyWithBucket struct {
	store.Policy
	Bucket bucketing.Bucket `json:"bucket"`
}

// ListRequest represents the listing filter
type ListRequest struct {
	Bucket  string
	Status  string
	Search  string
	AgentID *uuid.UUID
	Page    int
	Limit   int
}

// ListResponse is a page of policies ordered soonest-expiring first
type ListResponse struct {
	Policies      []PolicyWithBucket `json:"policies"`
	TotalPolicies int                `json:"total_policies"`
	TotalPages    int                `json:"total_pages"`
	Page          int                `json:"page"`
	Limit         int                `json:"limit"`
}

// List filters and paginates policies. The bucket filter is evaluated
// against the current timestamp on every call.
func (p *PolicyProcessor) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	now := time.Now()

	params := store.ListPoliciesParams{
		Search: req.Search,
	}
	if req.AgentID != nil {
		params.AgentID = req.AgentID
	}

	if req.Bucket != "" {
		bucket, ok := bucketing.ParseBucket(req.Bucket)
		if !ok {
			return ListResponse{}, ErrInvalidBucket
		}
		window, _ := bucketing.WindowFor(bucket, now)
		params.EndFrom = window.EndFrom
		params.EndTo = window.EndTo
		params.EndBefore = window.EndBefore
		params.NeedsFix = window.NeedsFix
		params.OnlyOpen = true
	}

	if req.Status != "" {
		status := store.RenewalStatus(req.Status)
		if !status.IsValid() {
			return ListResponse{}, ErrInvalidStatus
		}
		params.Statuses = []store.RenewalStatus{status}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = p.defaultPageSize
	}
	if limit > p.maxPageSize {
		limit = p.maxPageSize
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	params.Limit = limit
	params.Offset = (page - 1) * limit

	policies, total, err := p.store.ListPolicies(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to list policies", err)
		return ListResponse{}, err
	}

	items := make([]PolicyWithBucket, len(policies))
	for i, policy := range policies {
		items[i] = PolicyWithBucket{
			Policy: policy,
			Bucket: bucketing.Classify(policy.EndDate, policy.RenewalStatus, now),
		}
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return ListResponse{
		Policies:      items,
		TotalPolicies: total,
		TotalPages:    totalPages,
		Page:          page,
		Limit:         limit,
	}, nil
}

// Get returns one policy with its bucket computed now.
func (p *PolicyProcessor) Get(ctx context.Context, policyID uuid.UUID) (PolicyWithBucket, error) {
	policy, err := p.store.GetPolicyByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PolicyWithBucket{}, ErrPolicyNotFound
		}
		p.logger.Error(ctx, "failed to get policy", err)
		return PolicyWithBucket{}, err
	}
	return PolicyWithBucket{
		Policy: policy,
		Bucket: bucketing.Classify(policy.EndDate, policy.RenewalStatus, time.Now()),
	}, nil
}

// NewCustomer is an inline customer on a manual policy create.
type NewCustomer struct {
	Name   string
	Mobile string
	Email  *string
}

// NewVehicle is the covered vehicle on a manual policy create.
type NewVehicle struct {
	Registration    string
	Make            string
	Model           string
	Variant         *string
	FuelType        *string
	ManufactureYear *int
}

// CreateRequest represents a manual policy create
type CreateRequest struct {
	CustomerID  *uuid.UUID
	NewCustomer *NewCustomer
	Vehicle     NewVehicle

	PolicyNumber  string
	Insurer       string
	StartDate     *time.Time
	EndDate       *time.Time
	PremiumAmount decimal.Decimal
	ODPremium     decimal.NullDecimal
	TPPremium     decimal.NullDecimal
	AddonPremium  decimal.NullDecimal
	NCBPercent    decimal.NullDecimal
	ClaimDetails  *string

	AssignedAgentID *uuid.UUID
}

// Create adds a policy for an existing or inline-created customer,
// finding or creating the vehicle by registration.
func (p *PolicyProcessor) Create(ctx context.Context, req CreateRequest) (store.Policy, error) {
	if strings.TrimSpace(req.PolicyNumber) == "" {
		return store.Policy{}, ErrPolicyNumberRequired
	}
	if strings.TrimSpace(req.Vehicle.Registration) == "" {
		return store.Policy{}, ErrRegistrationRequired
	}

	customer, err := p.resolveCustomer(ctx, req)
	if err != nil {
		return store.Policy{}, err
	}

	// Duplicate policy number is a conflict, not a merge.
	_, err = p.store.GetPolicyByNumber(ctx, req.PolicyNumber)
	if err == nil {
		return store.Policy{}, ErrDuplicatePolicyNumber
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check policy number", err)
		return store.Policy{}, err
	}

	// One active policy per vehicle.
	_, err = p.store.GetActivePolicyForVehicle(ctx, req.Vehicle.Registration, customer.Mobile)
	if err == nil {
		return store.Policy{}, ErrActivePolicyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check active policy", err)
		return store.Policy{}, err
	}

	vehicle, err := p.store.GetVehicleByRegistration(ctx, customer.ID, req.Vehicle.Registration)
	if errors.Is(err, store.ErrNotFound) {
		vehicle, err = p.store.CreateVehicle(ctx, store.CreateVehicleParams{
			CustomerID:      customer.ID,
			Registration:    req.Vehicle.Registration,
			Make:            req.Vehicle.Make,
			Model:           req.Vehicle.Model,
			Variant:         req.Vehicle.Variant,
			FuelType:        req.Vehicle.FuelType,
			ManufactureYear: req.Vehicle.ManufactureYear,
		})
	}
	if err != nil {
		p.logger.Error(ctx, "failed to resolve vehicle", err)
		return store.Policy{}, err
	}

	policy, err := p.store.CreatePolicy(ctx, store.CreatePolicyParams{
		PolicyNumber:        req.PolicyNumber,
		Insurer:             req.Insurer,
		CustomerID:          customer.ID,
		VehicleID:           vehicle.ID,
		CustomerName:        customer.Name,
		CustomerMobile:      customer.Mobile,
		VehicleRegistration: vehicle.Registration,
		VehicleMake:         vehicle.Make,
		VehicleModel:        vehicle.Model,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		RenewalStatus:       store.RenewalStatusPending,
		RenewalStage:        store.RenewalStageNew,
		AssignedAgentID:     req.AssignedAgentID,
		PremiumAmount:       req.PremiumAmount,
		ODPremium:           req.ODPremium,
		TPPremium:           req.TPPremium,
		AddonPremium:        req.AddonPremium,
		NCBPercent:          req.NCBPercent,
		ClaimDetails:        req.ClaimDetails,
	})
	if err != nil {
		// A concurrent writer can beat the checks above; the unique
		// indexes report which key lost the race.
		if errors.Is(err, store.ErrDuplicatePolicy) {
			return store.Policy{}, ErrDuplicatePolicyNumber
		}
		if errors.Is(err, store.ErrActivePolicyExists) {
			return store.Policy{}, ErrActivePolicyExists
		}
		p.logger.Error(ctx, "failed to create policy", err)
		return store.Policy{}, err
	}
	return policy, nil
}

func (p *PolicyProcessor) resolveCustomer(ctx context.Context, req CreateRequest) (store.Customer, error) {
	if req.CustomerID != nil {
		customer, err := p.store.GetCustomerByID(ctx, *req.CustomerID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.Customer{}, ErrCustomerNotFound
			}
			p.logger.Error(ctx, "failed to get customer", err)
			return store.Customer{}, err
		}
		return customer, nil
	}

	if req.NewCustomer == nil {
		return store.Customer{}, ErrCustomerRequired
	}
	if strings.TrimSpace(req.NewCustomer.Mobile) == "" {
		return store.Customer{}, ErrMobileRequired
	}

	// Reuse an existing customer with the same mobile instead of minting a
	// duplicate identity.
	customer, err := p.store.GetCustomerByMobile(ctx, req.NewCustomer.Mobile)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to get customer by mobile", err)
		return store.Customer{}, err
	}

	customer, err = p.store.CreateCustomer(ctx, store.CreateCustomerParams{
		Name:   req.NewCustomer.Name,
		Mobile: req.NewCustomer.Mobile,
		Email:  req.NewCustomer.Email,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create customer", err)
		return store.Customer{}, err
	}
	return customer, nil
}

// UpdateRequest represents a manual correction to a policy row
type UpdateRequest struct {
	PolicyNumber     *string
	Insurer          *string
	StartDate        *time.Time
	EndDate          *time.Time
	RenewalStatus    *string
	RenewalStage     *string
	NextFollowUpDate *time.Time
	AssignedAgentID  *uuid.UUID
	PremiumAmount    *decimal.Decimal
	ODPremium        *decimal.NullDecimal
	TPPremium        *decimal.NullDecimal
	AddonPremium     *decimal.NullDecimal
	NCBPercent       *decimal.NullDecimal
	ClaimDetails     *string
}

// Update applies manual corrections (expiry-date fixes, stage/status
// overrides). Setting the status to Renewed is rejected: only the renewal
// transactor closes a term, because that path carries the mandatory
// successor fields.
func (p *PolicyProcessor) Update(ctx context.Context, policyID uuid.UUID, req UpdateRequest) (store.Policy, error) {
	params := store.UpdatePolicyParams{
		PolicyNumber:     req.PolicyNumber,
		Insurer:          req.Insurer,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		NextFollowUpDate: req.NextFollowUpDate,
		AssignedAgentID:  req.AssignedAgentID,
		PremiumAmount:    req.PremiumAmount,
		ODPremium:        req.ODPremium,
		TPPremium:        req.TPPremium,
		AddonPremium:     req.AddonPremium,
		NCBPercent:       req.NCBPercent,
		ClaimDetails:     req.ClaimDetails,
	}

	if req.RenewalStatus != nil {
		status := store.RenewalStatus(*req.RenewalStatus)
		if !status.IsValid() {
			return store.Policy{}, ErrInvalidStatus
		}
		if status == store.RenewalStatusRenewed {
			return store.Policy{}, ErrRenewalViaUpdate
		}
		params.RenewalStatus = &status
	}
	if req.RenewalStage != nil {
		stage := store.RenewalStage(*req.RenewalStage)
		if !stage.IsValid() {
			return store.Policy{}, ErrInvalidStage
		}
		params.RenewalStage = &stage
	}

	policy, err := p.store.UpdatePolicy(ctx, policyID, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Policy{}, ErrPolicyNotFound
		case errors.Is(err, store.ErrDuplicatePolicy):
			return store.Policy{}, ErrDuplicatePolicyNumber
		case errors.Is(err, store.ErrActivePolicyExists):
			return store.Policy{}, ErrActivePolicyExists
		}
		p.logger.Error(ctx, "failed to update policy", err)
		return store.Policy{}, err
	}
	return policy, nil
}

// Stats returns the dashboard counts computed against the current
// timestamp.
func (p *PolicyProcessor) Stats(ctx context.Context) (store.PolicyStats, error) {
	stats, err := p.store.GetPolicyStats(ctx, time.Now())
	if err != nil {
		p.logger.Error(ctx, "failed to get policy stats", err)
		return store.PolicyStats{}, err
	}
	return stats, nil
}
