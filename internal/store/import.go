package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ImportBundleParams is one reconciled import row ready to be committed:
// customer and vehicle are found-or-created, then the policy is inserted.
type ImportBundleParams struct {
	CustomerName string
	Mobile       string
	Email        *string

	Registration string
	Make         string
	Model        string

	PolicyNumber  string
	Insurer       string
	StartDate     *time.Time
	EndDate       *time.Time
	PremiumAmount decimal.Decimal
	NCBPercent    decimal.NullDecimal
}

const sqlCheckPolicyNumberExists = `SELECT EXISTS(SELECT 1 FROM policies WHERE policy_number = $1)`

const sqlCheckActivePolicyExists = `
SELECT EXISTS(
	SELECT 1 FROM policies
	WHERE vehicle_registration = $1
	  AND customer_mobile = $2
	  AND renewal_status NOT IN ('Renewed', 'Lost', 'NotInterested')
)`

const sqlUpsertCustomerByMobile = `
INSERT INTO customers (name, mobile, email)
VALUES ($1, $2, $3)
ON CONFLICT (mobile) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
RETURNING id, name, mobile, alternate_phones, email, assigned_agent_id, created_at, updated_at`

const sqlUpsertVehicleByRegistration = `
INSERT INTO vehicles (customer_id, registration, make, model)
VALUES ($1, $2, $3, $4)
ON CONFLICT (customer_id, registration) DO UPDATE SET make = EXCLUDED.make, model = EXCLUDED.model, updated_at = now()
RETURNING id, customer_id, registration, make, model, variant, fuel_type, manufacture_year, created_at, updated_at`

// CreatePolicyBundle commits one import row: find-or-create the customer
// and vehicle, re-verify the duplicate checks, insert the policy. The
// whole row is one transaction, so a cancelled batch never half-applies a
// row, and the duplicate re-check runs at insert time rather than trusting
// a preview that may be arbitrarily stale.
func (s Store) CreatePolicyBundle(ctx context.Context, params ImportBundleParams) (Policy, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Policy{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	mobile := NormalizeMobile(params.Mobile)
	registration := NormalizeRegistration(params.Registration)
	policyNumber := strings.TrimSpace(params.PolicyNumber)

	// Re-check both duplicate keys inside the transaction. Preview and
	// commit can be separated by a slow human review; the preview result
	// is advisory. Under concurrency the unique indexes are the final
	// word, these checks just give the row a readable reason first.
	var exists bool
	err = tx.GetContext(ctx, &exists, sqlCheckPolicyNumberExists, policyNumber)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to check policy number: %w", err)
	}
	if exists {
		err = ErrDuplicatePolicy
		return Policy{}, err
	}
	err = tx.GetContext(ctx, &exists, sqlCheckActivePolicyExists, registration, mobile)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to check active policy: %w", err)
	}
	if exists {
		err = ErrActivePolicyExists
		return Policy{}, err
	}

	var customer Customer
	err = tx.GetContext(ctx, &customer, sqlUpsertCustomerByMobile,
		params.CustomerName, mobile, params.Email)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to upsert customer: %w", err)
	}

	var vehicle Vehicle
	err = tx.GetContext(ctx, &vehicle, sqlUpsertVehicleByRegistration,
		customer.ID, registration, params.Make, params.Model)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to upsert vehicle: %w", err)
	}

	var policy Policy
	policy, err = createPolicy(ctx, tx, CreatePolicyParams{
		PolicyNumber:        policyNumber,
		Insurer:             params.Insurer,
		CustomerID:          customer.ID,
		VehicleID:           vehicle.ID,
		CustomerName:        customer.Name,
		CustomerMobile:      customer.Mobile,
		VehicleRegistration: vehicle.Registration,
		VehicleMake:         vehicle.Make,
		VehicleModel:        vehicle.Model,
		StartDate:           params.StartDate,
		EndDate:             params.EndDate,
		RenewalStatus:       RenewalStatusPending,
		RenewalStage:        RenewalStageNew,
		PremiumAmount:       params.PremiumAmount,
		NCBPercent:          params.NCBPercent,
	})
	if err != nil {
		return Policy{}, err
	}

	err = tx.Commit()
	if err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Policy{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return policy, nil
}
