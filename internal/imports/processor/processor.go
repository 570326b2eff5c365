package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"renewal-server/internal/observability"
	"renewal-server/internal/store"

	"github.com/google/uuid"
)

// ImportStore defines the database operations required by ImportProcessor
type ImportStore interface {
	GetPolicyByNumber(ctx context.Context, policyNumber string) (store.Policy, error)
	GetActivePolicyForVehicle(ctx context.Context, registration, mobile string) (store.Policy, error)
	CreatePolicyBundle(ctx context.Context, params store.ImportBundleParams) (store.Policy, error)
	UpdatePolicy(ctx context.Context, policyID uuid.UUID, params store.UpdatePolicyParams) (store.Policy, error)
}

var (
	ErrNoRows      = errors.New("import contains no rows")
	ErrTooManyRows = errors.New("import exceeds the row limit")
)

type ImportProcessor struct {
	store   ImportStore
	logger  *observability.Logger
	maxRows int
}

func New(store ImportStore, logger *observability.Logger, maxRows int) ImportProcessor {
	return ImportProcessor{store: store, logger: logger, maxRows: maxRows}
}

// RowStatus classifies one previewed row.
type RowStatus string

const (
	RowStatusReady     RowStatus = "Ready"
	RowStatusDuplicate RowStatus = "Duplicate"
	RowStatusError     RowStatus = "Error"
)

// PreviewResult is the per-row verdict shown to the operator before a
// commit is confirmed.
type PreviewResult struct {
	Row             int        `json:"row"`
	Status          RowStatus  `json:"status"`
	PolicyNumber    string     `json:"policy_number,omitempty"`
	Registration    string     `json:"registration,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	MatchedPolicyID *uuid.UUID `json:"matched_policy_id,omitempty"`
}

// Preview classifies every row without writing anything. The verdicts are
// advisory: commit re-runs the duplicate checks inside each row's
// transaction, because preview and commit can be separated by a slow
// human review.
func (p *ImportProcessor) Preview(ctx context.Context, rows []map[string]string) ([]PreviewResult, error) {
	if err := p.checkBatch(rows); err != nil {
		return nil, err
	}

	// Rows earlier in this batch count as existing for later rows, so a
	// file carrying the same vehicle twice flags the second occurrence.
	seenNumbers := map[string]bool{}
	seenVehicles := map[string]bool{}

	results := make([]PreviewResult, 0, len(rows))
	for i, raw := range rows {
		rowNum := i + 1
		parsed, rowErr := parseRow(rowNum, NormalizeRow(raw))
		if rowErr != nil {
			results = append(results, PreviewResult{
				Row:    rowNum,
				Status: RowStatusError,
				Reason: rowErr.Reason + " (" + rowErr.Field + ")",
			})
			continue
		}

		result, err := p.classify(ctx, rowNum, parsed, seenNumbers, seenVehicles)
		if err != nil {
			return nil, err
		}
		seenNumbers[numberKey(parsed)] = true
		seenVehicles[vehicleKey(parsed)] = true
		results = append(results, result)
	}
	return results, nil
}

func (p *ImportProcessor) classify(ctx context.Context, rowNum int, parsed ParsedRow, seenNumbers, seenVehicles map[string]bool) (PreviewResult, error) {
	result := PreviewResult{
		Row:          rowNum,
		PolicyNumber: parsed.PolicyNumber,
		Registration: store.NormalizeRegistration(parsed.Registration),
	}

	if seenNumbers[numberKey(parsed)] {
		result.Status = RowStatusDuplicate
		result.Reason = "same policy number appears earlier in this file"
		return result, nil
	}
	if seenVehicles[vehicleKey(parsed)] {
		result.Status = RowStatusDuplicate
		result.Reason = "same vehicle and mobile appear earlier in this file"
		return result, nil
	}

	existing, err := p.store.GetPolicyByNumber(ctx, parsed.PolicyNumber)
	if err == nil {
		result.Status = RowStatusDuplicate
		result.Reason = "policy number already exists; commit will update it"
		result.MatchedPolicyID = &existing.ID
		return result, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check policy number", err)
		return PreviewResult{}, err
	}

	active, err := p.store.GetActivePolicyForVehicle(ctx, parsed.Registration, parsed.Mobile)
	if err == nil {
		result.Status = RowStatusDuplicate
		result.Reason = "an active policy with a different number already exists for this vehicle; commit will not touch it"
		result.MatchedPolicyID = &active.ID
		return result, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check active policy", err)
		return PreviewResult{}, err
	}

	result.Status = RowStatusReady
	return result, nil
}

// CommitResult is the structured outcome of a commit. The batch is not
// atomic: failed rows never roll back their committed siblings.
type CommitResult struct {
	Success int        `json:"success"`
	Updated int        `json:"updated"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
}

// Commit applies the batch row by row. A row whose policy number matches
// an existing policy updates that policy in place; a row whose vehicle
// already carries a different active policy fails with a reason rather
// than minting a second active term.
func (p *ImportProcessor) Commit(ctx context.Context, rows []map[string]string) (CommitResult, error) {
	if err := p.checkBatch(rows); err != nil {
		return CommitResult{}, err
	}

	result := CommitResult{Errors: []RowError{}}
	for i, raw := range rows {
		if err := ctx.Err(); err != nil {
			// Cancelled mid-batch: committed rows stay, the rest are
			// reported unprocessed.
			return result, err
		}

		rowNum := i + 1
		parsed, rowErr := parseRow(rowNum, NormalizeRow(raw))
		if rowErr != nil {
			result.Failed++
			result.Errors = append(result.Errors, *rowErr)
			continue
		}

		p.commitRow(ctx, rowNum, parsed, &result)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "success", Value: result.Success},
		observability.Field{Key: "updated", Value: result.Updated},
		observability.Field{Key: "failed", Value: result.Failed},
	), "import committed")
	return result, nil
}

// commitRow applies one row and records its outcome on result.
func (p *ImportProcessor) commitRow(ctx context.Context, rowNum int, parsed ParsedRow, result *CommitResult) {
	existing, err := p.store.GetPolicyByNumber(ctx, parsed.PolicyNumber)
	if err == nil {
		if _, err := p.store.UpdatePolicy(ctx, existing.ID, updateParams(parsed)); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: rowNum, Reason: "failed to update existing policy"})
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "row", Value: rowNum}), "import row update failed", err)
			return
		}
		result.Updated++
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		result.Failed++
		result.Errors = append(result.Errors, RowError{Row: rowNum, Reason: "failed to check policy number"})
		p.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "row", Value: rowNum}), "import row lookup failed", err)
		return
	}

	_, err = p.store.CreatePolicyBundle(ctx, store.ImportBundleParams{
		CustomerName:  parsed.CustomerName,
		Mobile:        parsed.Mobile,
		Email:         parsed.Email,
		Registration:  parsed.Registration,
		Make:          parsed.Make,
		Model:         parsed.Model,
		PolicyNumber:  parsed.PolicyNumber,
		Insurer:       parsed.Insurer,
		StartDate:     parsed.StartDate,
		EndDate:       parsed.EndDate,
		PremiumAmount: parsed.PremiumAmount,
		NCBPercent:    parsed.NCBPercent,
	})
	if err != nil {
		result.Failed++
		reason := "failed to create policy"
		switch {
		case errors.Is(err, store.ErrActivePolicyExists):
			reason = "an active policy with a different number already exists for this vehicle; close it before importing"
		case errors.Is(err, store.ErrDuplicatePolicy):
			reason = "policy number was created by a concurrent import; re-run to update it"
		default:
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "row", Value: rowNum}), "import row create failed", err)
		}
		result.Errors = append(result.Errors, RowError{Row: rowNum, Reason: reason})
		return
	}
	result.Success++
}

func (p *ImportProcessor) checkBatch(rows []map[string]string) error {
	if len(rows) == 0 {
		return ErrNoRows
	}
	if p.maxRows > 0 && len(rows) > p.maxRows {
		return ErrTooManyRows
	}
	return nil
}

func updateParams(parsed ParsedRow) store.UpdatePolicyParams {
	params := store.UpdatePolicyParams{
		StartDate: parsed.StartDate,
		EndDate:   parsed.EndDate,
	}
	if parsed.Insurer != "" {
		params.Insurer = &parsed.Insurer
	}
	if !parsed.PremiumAmount.IsZero() {
		params.PremiumAmount = &parsed.PremiumAmount
	}
	if parsed.NCBPercent.Valid {
		params.NCBPercent = &parsed.NCBPercent
	}
	return params
}

func numberKey(parsed ParsedRow) string {
	return strings.ToUpper(strings.TrimSpace(parsed.PolicyNumber))
}

func vehicleKey(parsed ParsedRow) string {
	return store.NormalizeRegistration(parsed.Registration) + "|" + store.NormalizeMobile(parsed.Mobile)
}
