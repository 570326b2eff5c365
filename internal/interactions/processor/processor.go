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
)

// InteractionStore defines the database operations required by InteractionProcessor
type InteractionStore interface {
	GetPolicyByID(ctx context.Context, policyID uuid.UUID) (store.Policy, error)
	AppendInteraction(ctx context.Context, params store.AppendInteractionParams) (store.Interaction, error)
	ListInteractionsByPolicy(ctx context.Context, policyID uuid.UUID) ([]store.Interaction, error)
}

var (
	ErrPolicyNotFound   = errors.New("policy not found")
	ErrInvalidType      = errors.New("invalid interaction type")
	ErrInvalidOutcome   = errors.New("invalid interaction outcome")
	ErrRemarkRequired   = errors.New("remark is required")
	ErrFollowUpRequired = errors.New("next follow-up date is required for callback outcomes")
	ErrFollowUpInPast   = errors.New("next follow-up date must be in the future")
)

type InteractionProcessor struct {
	store  InteractionStore
	logger *observability.Logger
}

func New(store InteractionStore, logger *observability.Logger) InteractionProcessor {
	return InteractionProcessor{
		store:  store,
		logger: logger,
	}
}

// outcomeEffect is the derived workflow state an outcome pushes onto the
// policy row. The interaction row stays the source of truth; this table is
// the single place outcome branching lives.
type outcomeEffect struct {
	stage         store.RenewalStage
	status        store.RenewalStatus
	carryFollowUp bool
	noProjection  bool
}

var outcomeEffects = map[store.InteractionOutcome]outcomeEffect{
	store.OutcomeContacted:       {stage: store.RenewalStageContacted, status: store.RenewalStatusInProgress},
	store.OutcomeCallbackLater:   {stage: store.RenewalStageFollowUp, status: store.RenewalStatusInProgress, carryFollowUp: true},
	store.OutcomeQuoteSent:       {stage: store.RenewalStageQuoteSent, status: store.RenewalStatusInProgress},
	store.OutcomeNegotiating:     {stage: store.RenewalStageNegotiation, status: store.RenewalStatusInProgress},
	store.OutcomeAccepted:        {stage: store.RenewalStageAccepted, status: store.RenewalStatusInProgress},
	store.OutcomePaymentPending:  {stage: store.RenewalStagePaymentPending, status: store.RenewalStatusInProgress},
	store.OutcomePaymentReceived: {stage: store.RenewalStagePaymentReceived, status: store.RenewalStatusInProgress},
	// Renewed is narrative only: closing the policy belongs to the renewal
	// transactor, which carries the mandatory new-term fields.
	store.OutcomeRenewed:          {noProjection: true},
	store.OutcomeNotInterested:    {stage: store.RenewalStageClosed, status: store.RenewalStatusLost},
	store.OutcomeRenewedElsewhere: {stage: store.RenewalStageClosed, status: store.RenewalStatusLost},
	store.OutcomeNoAnswer:         {noProjection: true},
	store.OutcomeWrongNumber:      {noProjection: true},
}

// LogInteractionRequest represents a request to append to the ledger
type LogInteractionRequest struct {
	AgentID          uuid.UUID
	Type             store.InteractionType
	Outcome          store.InteractionOutcome
	Remark           string
	NextFollowUpDate *time.Time
	LostReason       *string
}

// LogInteractionResponse carries the appended entry. RequiresRenewal is
// set when the outcome was Renewed: the log records the narrative, the
// caller must still invoke the renewal endpoint to close the term.
type LogInteractionResponse struct {
	Interaction     store.Interaction `json:"interaction"`
	RequiresRenewal bool              `json:"requires_renewal"`
}

// LogInteraction validates and appends one ledger entry, projecting the
// derived stage/status onto the policy.
func (p *InteractionProcessor) LogInteraction(ctx context.Context, policyID uuid.UUID, req LogInteractionRequest) (LogInteractionResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "policy_id", Value: policyID.String()},
		observability.Field{Key: "outcome", Value: string(req.Outcome)},
	)

	if !req.Type.IsValid() {
		return LogInteractionResponse{}, ErrInvalidType
	}
	if !req.Outcome.IsValid() {
		return LogInteractionResponse{}, ErrInvalidOutcome
	}
	if strings.TrimSpace(req.Remark) == "" {
		// Interactions without a note are not auditable.
		return LogInteractionResponse{}, ErrRemarkRequired
	}
	if req.Outcome == store.OutcomeCallbackLater {
		if req.NextFollowUpDate == nil {
			return LogInteractionResponse{}, ErrFollowUpRequired
		}
		if req.NextFollowUpDate.Before(time.Now()) {
			return LogInteractionResponse{}, ErrFollowUpInPast
		}
	}
	if req.Outcome.IsLoss() && req.LostReason == nil {
		// Soft requirement: accepted, but worth a trace for coaching.
		p.logger.Warn(ctx, "loss outcome logged without a lost reason")
	}

	_, err := p.store.GetPolicyByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LogInteractionResponse{}, ErrPolicyNotFound
		}
		p.logger.Error(ctx, "failed to get policy", err)
		return LogInteractionResponse{}, err
	}

	effect := outcomeEffects[req.Outcome]
	projection := store.PolicyProjection{}
	if !effect.noProjection {
		stage := effect.stage
		status := effect.status
		projection.Stage = &stage
		projection.Status = &status
		if effect.carryFollowUp {
			projection.NextFollowUpDate = req.NextFollowUpDate
		}
	}

	interaction, err := p.store.AppendInteraction(ctx, store.AppendInteractionParams{
		PolicyID:         policyID,
		AgentID:          req.AgentID,
		Type:             req.Type,
		Outcome:          req.Outcome,
		Remark:           strings.TrimSpace(req.Remark),
		NextFollowUpDate: req.NextFollowUpDate,
		LostReason:       req.LostReason,
		Projection:       projection,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LogInteractionResponse{}, ErrPolicyNotFound
		}
		p.logger.Error(ctx, "failed to append interaction", err)
		return LogInteractionResponse{}, err
	}

	return LogInteractionResponse{
		Interaction:     interaction,
		RequiresRenewal: req.Outcome == store.OutcomeRenewed,
	}, nil
}

// ListInteractions returns the ledger for a policy, newest first.
func (p *InteractionProcessor) ListInteractions(ctx context.Context, policyID uuid.UUID) ([]store.Interaction, error) {
	_, err := p.store.GetPolicyByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPolicyNotFound
		}
		p.logger.Error(ctx, "failed to get policy", err)
		return nil, err
	}

	interactions, err := p.store.ListInteractionsByPolicy(ctx, policyID)
	if err != nil {
		p.logger.Error(ctx, "failed to list interactions", err)
		return nil, err
	}
	return interactions, nil
}
