package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"renewal-server/internal/observability"
	"renewal-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RenewalStore defines the database operations required by RenewalProcessor
type RenewalStore interface {
	RenewPolicy(ctx context.Context, policyID uuid.UUID, params store.RenewPolicyParams) (store.Policy, error)
}

var (
	ErrPolicyNotFound        = errors.New("policy not found")
	ErrAlreadyRenewed        = errors.New("policy is already renewed")
	ErrPolicyNumberRequired  = errors.New("new policy number is required")
	ErrInvalidTermDates      = errors.New("new term end date must be after start date")
	ErrInvalidPremium        = errors.New("premium amount must not be negative")
	ErrInvalidPaymentMode    = errors.New("unsupported payment mode")
	ErrDuplicatePolicyNumber = errors.New("new policy number already exists")
)

// RenewalProcessor is the only code path that closes a policy as Renewed
// and opens its successor term.
type RenewalProcessor struct {
	store  RenewalStore
	logger *observability.Logger
}

func New(store RenewalStore, logger *observability.Logger) RenewalProcessor {
	return RenewalProcessor{
		store:  store,
		logger: logger,
	}
}

// RenewRequest carries the next-term details.
type RenewRequest struct {
	NewPolicyNumber string
	Insurer         *string
	StartDate       time.Time
	EndDate         time.Time
	PremiumAmount   decimal.Decimal
	ODPremium       decimal.NullDecimal
	TPPremium       decimal.NullDecimal
	AddonPremium    decimal.NullDecimal
	NCBPercent      decimal.NullDecimal
	PaymentMode     string
	PaymentTxnRef   *string
	VehicleMake     *string
	VehicleModel    *string
}

// Renew closes the current term and creates the successor row in one
// store transaction. All validation happens before any write: a rejected
// request leaves no trace.
func (p *RenewalProcessor) Renew(ctx context.Context, policyID uuid.UUID, req RenewRequest) (store.Policy, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "policy_id", Value: policyID.String()},
		observability.Field{Key: "new_policy_number", Value: req.NewPolicyNumber},
	)

	if strings.TrimSpace(req.NewPolicyNumber) == "" {
		return store.Policy{}, ErrPolicyNumberRequired
	}
	if !req.EndDate.After(req.StartDate) {
		return store.Policy{}, ErrInvalidTermDates
	}
	if req.PremiumAmount.IsNegative() {
		return store.Policy{}, ErrInvalidPremium
	}
	if req.PaymentMode != "" && !store.ValidPaymentMode(req.PaymentMode) {
		return store.Policy{}, ErrInvalidPaymentMode
	}

	successor, err := p.store.RenewPolicy(ctx, policyID, store.RenewPolicyParams{
		NewPolicyNumber: strings.TrimSpace(req.NewPolicyNumber),
		Insurer:         req.Insurer,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
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
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Policy{}, ErrPolicyNotFound
		case errors.Is(err, store.ErrAlreadyRenewed):
			return store.Policy{}, ErrAlreadyRenewed
		case errors.Is(err, store.ErrDuplicatePolicy):
			return store.Policy{}, ErrDuplicatePolicyNumber
		}
		p.logger.Error(ctx, "failed to renew policy", err)
		return store.Policy{}, err
	}

	p.logger.Info(ctx, "policy renewed")
	return successor, nil
}
