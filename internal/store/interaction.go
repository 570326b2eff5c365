package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Interaction is one immutable ledger entry for an agent touch on a
// policy. Rows are only ever inserted; there is no update or delete path.
type Interaction struct {
	ID               uuid.UUID          `db:"id" json:"id"`
	PolicyID         uuid.UUID          `db:"policy_id" json:"policy_id"`
	AgentID          uuid.UUID          `db:"agent_id" json:"agent_id"`
	Type             InteractionType    `db:"type" json:"type"`
	Outcome          InteractionOutcome `db:"outcome" json:"outcome"`
	Remark           string             `db:"remark" json:"remark"`
	NextFollowUpDate *time.Time         `db:"next_follow_up_date" json:"next_follow_up_date,omitempty"`
	LostReason       *string            `db:"lost_reason" json:"lost_reason,omitempty"`
	CreatedAt        time.Time          `db:"created_at" json:"created_at"`
}

// PolicyProjection is the derived workflow state an interaction outcome
// pushes onto the policy row. The interaction remains the source of truth;
// these fields only keep bucketed queries fast.
type PolicyProjection struct {
	Stage            *RenewalStage
	Status           *RenewalStatus
	NextFollowUpDate *time.Time
}

// AppendInteractionParams represents parameters for appending to the ledger
type AppendInteractionParams struct {
	PolicyID         uuid.UUID
	AgentID          uuid.UUID
	Type             InteractionType
	Outcome          InteractionOutcome
	Remark           string
	NextFollowUpDate *time.Time
	LostReason       *string

	Projection PolicyProjection
}

const sqlCreateInteraction = `
INSERT INTO interactions (policy_id, agent_id, type, outcome, remark, next_follow_up_date, lost_reason)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, policy_id, agent_id, type, outcome, remark, next_follow_up_date, lost_reason, created_at`

const sqlProjectInteractionOntoPolicy = `
UPDATE policies
SET renewal_status = COALESCE($1, renewal_status),
    renewal_stage = COALESCE($2, renewal_stage),
    next_follow_up_date = COALESCE($3, next_follow_up_date),
    updated_at = $4
WHERE id = $5`

// AppendInteraction inserts the ledger entry and applies the derived
// stage/status projection to the policy in one transaction.
func (s Store) AppendInteraction(ctx context.Context, params AppendInteractionParams) (Interaction, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Interaction{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var interaction Interaction
	err = tx.GetContext(ctx, &interaction, sqlCreateInteraction,
		params.PolicyID,
		params.AgentID,
		params.Type,
		params.Outcome,
		params.Remark,
		params.NextFollowUpDate,
		params.LostReason,
	)
	if err != nil {
		return Interaction{}, fmt.Errorf("failed to create interaction: %w", err)
	}

	proj := params.Projection
	if proj.Stage != nil || proj.Status != nil || proj.NextFollowUpDate != nil {
		var result sql.Result
		result, err = tx.ExecContext(ctx, sqlProjectInteractionOntoPolicy,
			proj.Status, proj.Stage, proj.NextFollowUpDate, time.Now(), params.PolicyID)
		if err != nil {
			return Interaction{}, fmt.Errorf("failed to project interaction onto policy: %w", err)
		}
		var affected int64
		affected, err = result.RowsAffected()
		if err != nil {
			return Interaction{}, fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			err = ErrNotFound
			return Interaction{}, err
		}
	}

	err = tx.Commit()
	if err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Interaction{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return interaction, nil
}

const sqlListInteractionsByPolicy = `
SELECT id, policy_id, agent_id, type, outcome, remark, next_follow_up_date, lost_reason, created_at
FROM interactions
WHERE policy_id = $1
ORDER BY created_at DESC`

// ListInteractionsByPolicy returns the ledger for a policy, newest first.
func (s Store) ListInteractionsByPolicy(ctx context.Context, policyID uuid.UUID) ([]Interaction, error) {
	interactions := []Interaction{}
	err := s.db.SelectContext(ctx, &interactions, sqlListInteractionsByPolicy, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return interactions, nil
}
