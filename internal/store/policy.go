package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Policy is one insurance term for a customer's vehicle. Customer and
// vehicle fields are denormalized at issuance so historical terms keep the
// state at that time and so listing search needs no join.
type Policy struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PolicyNumber string    `db:"policy_number" json:"policy_number"`
	Insurer      string    `db:"insurer" json:"insurer"`
	CustomerID   uuid.UUID `db:"customer_id" json:"customer_id"`
	VehicleID    uuid.UUID `db:"vehicle_id" json:"vehicle_id"`

	CustomerName        string `db:"customer_name" json:"customer_name"`
	CustomerMobile      string `db:"customer_mobile" json:"customer_mobile"`
	VehicleRegistration string `db:"vehicle_registration" json:"vehicle_registration"`
	VehicleMake         string `db:"vehicle_make" json:"vehicle_make"`
	VehicleModel        string `db:"vehicle_model" json:"vehicle_model"`

	StartDate *time.Time `db:"start_date" json:"start_date,omitempty"`
	// EndDate drives bucketing. NULL marks an unparsable or missing expiry;
	// such rows go to the NeedsFix bucket, never Overdue.
	EndDate *time.Time `db:"end_date" json:"end_date,omitempty"`

	RenewalStatus    RenewalStatus `db:"renewal_status" json:"renewal_status"`
	RenewalStage     RenewalStage  `db:"renewal_stage" json:"renewal_stage"`
	NextFollowUpDate *time.Time    `db:"next_follow_up_date" json:"next_follow_up_date,omitempty"`
	AssignedAgentID  *uuid.UUID    `db:"assigned_agent_id" json:"assigned_agent_id,omitempty"`

	PremiumAmount decimal.Decimal     `db:"premium_amount" json:"premium_amount"`
	ODPremium     decimal.NullDecimal `db:"od_premium" json:"od_premium,omitempty"`
	TPPremium     decimal.NullDecimal `db:"tp_premium" json:"tp_premium,omitempty"`
	AddonPremium  decimal.NullDecimal `db:"addon_premium" json:"addon_premium,omitempty"`
	NCBPercent    decimal.NullDecimal `db:"ncb_percent" json:"ncb_percent,omitempty"`
	ClaimDetails  *string             `db:"claim_details" json:"claim_details,omitempty"`

	PaymentMode   *string `db:"payment_mode" json:"payment_mode,omitempty"`
	PaymentTxnRef *string `db:"payment_txn_ref" json:"payment_txn_ref,omitempty"`

	PredecessorID *uuid.UUID `db:"predecessor_id" json:"predecessor_id,omitempty"`
	SuccessorID   *uuid.UUID `db:"successor_id" json:"successor_id,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

const policyColumns = `id, policy_number, insurer, customer_id, vehicle_id,
customer_name, customer_mobile, vehicle_registration, vehicle_make, vehicle_model,
start_date, end_date, renewal_status, renewal_stage, next_follow_up_date, assigned_agent_id,
premium_amount, od_premium, tp_premium, addon_premium, ncb_percent, claim_details,
payment_mode, payment_txn_ref, predecessor_id, successor_id, created_at, updated_at`

// CreatePolicyParams represents parameters for creating a policy row
type CreatePolicyParams struct {
	PolicyNumber string
	Insurer      string
	CustomerID   uuid.UUID
	VehicleID    uuid.UUID

	CustomerName        string
	CustomerMobile      string
	VehicleRegistration string
	VehicleMake         string
	VehicleModel        string

	StartDate *time.Time
	EndDate   *time.Time

	RenewalStatus    RenewalStatus
	RenewalStage     RenewalStage
	NextFollowUpDate *time.Time
	AssignedAgentID  *uuid.UUID

	PremiumAmount decimal.Decimal
	ODPremium     decimal.NullDecimal
	TPPremium     decimal.NullDecimal
	AddonPremium  decimal.NullDecimal
	NCBPercent    decimal.NullDecimal
	ClaimDetails  *string

	PaymentMode   *string
	PaymentTxnRef *string

	PredecessorID *uuid.UUID
}

const sqlCreatePolicy = `
INSERT INTO policies (
	policy_number, insurer, customer_id, vehicle_id,
	customer_name, customer_mobile, vehicle_registration, vehicle_make, vehicle_model,
	start_date, end_date, renewal_status, renewal_stage, next_follow_up_date, assigned_agent_id,
	premium_amount, od_premium, tp_premium, addon_premium, ncb_percent, claim_details,
	payment_mode, payment_txn_ref, predecessor_id
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
RETURNING ` + policyColumns

// CreatePolicy inserts a new policy row. A unique-violation on the policy
// number surfaces as ErrDuplicatePolicy; one on the active-vehicle index
// as ErrActivePolicyExists.
func (s Store) CreatePolicy(ctx context.Context, params CreatePolicyParams) (Policy, error) {
	return createPolicy(ctx, s.db, params)
}

// queryer covers both *sqlx.DB and *sqlx.Tx so the same insert serves the
// plain create path and the renewal transaction.
type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func createPolicy(ctx context.Context, q queryer, params CreatePolicyParams) (Policy, error) {
	var policy Policy
	err := q.GetContext(ctx, &policy, sqlCreatePolicy,
		strings.TrimSpace(params.PolicyNumber),
		strings.TrimSpace(params.Insurer),
		params.CustomerID,
		params.VehicleID,
		params.CustomerName,
		NormalizeMobile(params.CustomerMobile),
		NormalizeRegistration(params.VehicleRegistration),
		params.VehicleMake,
		params.VehicleModel,
		params.StartDate,
		params.EndDate,
		params.RenewalStatus,
		params.RenewalStage,
		params.NextFollowUpDate,
		params.AssignedAgentID,
		params.PremiumAmount,
		params.ODPremium,
		params.TPPremium,
		params.AddonPremium,
		params.NCBPercent,
		params.ClaimDetails,
		params.PaymentMode,
		params.PaymentTxnRef,
		params.PredecessorID,
	)
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return Policy{}, dupErr
		}
		return Policy{}, fmt.Errorf("failed to create policy: %w", err)
	}
	return policy, nil
}

// constraintOneActivePerVehicle backs the one-open-policy-per-vehicle rule
// at the schema level, so concurrent writers cannot both pass the
// application checks and insert.
const constraintOneActivePerVehicle = "policies_one_active_per_vehicle"

// mapUniqueViolation translates a Postgres 23505 into the sentinel for the
// key that was violated, or nil for any other error.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	if pgErr.ConstraintName == constraintOneActivePerVehicle {
		return ErrActivePolicyExists
	}
	return ErrDuplicatePolicy
}

const sqlGetPolicyByID = `SELECT ` + policyColumns + ` FROM policies WHERE id = $1`

// GetPolicyByID retrieves a policy by ID
func (s Store) GetPolicyByID(ctx context.Context, policyID uuid.UUID) (Policy, error) {
	var policy Policy
	err := s.db.GetContext(ctx, &policy, sqlGetPolicyByID, policyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Policy{}, ErrNotFound
		}
		return Policy{}, fmt.Errorf("failed to get policy: %w", err)
	}
	return policy, nil
}

const sqlGetPolicyByNumber = `SELECT ` + policyColumns + ` FROM policies WHERE policy_number = $1`

// GetPolicyByNumber retrieves a policy by its policy number.
func (s Store) GetPolicyByNumber(ctx context.Context, policyNumber string) (Policy, error) {
	var policy Policy
	err := s.db.GetContext(ctx, &policy, sqlGetPolicyByNumber, strings.TrimSpace(policyNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Policy{}, ErrNotFound
		}
		return Policy{}, fmt.Errorf("failed to get policy by number: %w", err)
	}
	return policy, nil
}

const sqlGetActivePolicyForVehicle = `
SELECT ` + policyColumns + `
FROM policies
WHERE vehicle_registration = $1
  AND customer_mobile = $2
  AND renewal_status NOT IN ('Renewed', 'Lost', 'NotInterested')
ORDER BY created_at DESC
LIMIT 1`

// GetActivePolicyForVehicle retrieves the open policy for a (mobile,
// registration) pair. Exactly one such row should exist in normal
// operation; the import reconciler depends on this lookup to keep it that
// way.
func (s Store) GetActivePolicyForVehicle(ctx context.Context, registration, mobile string) (Policy, error) {
	var policy Policy
	err := s.db.GetContext(ctx, &policy, sqlGetActivePolicyForVehicle,
		NormalizeRegistration(registration), NormalizeMobile(mobile))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Policy{}, ErrNotFound
		}
		return Policy{}, fmt.Errorf("failed to get active policy for vehicle: %w", err)
	}
	return policy, nil
}

// ListPoliciesParams narrows and pages the policy listing. The end-date
// window fields are produced by the bucketing package at query time.
type ListPoliciesParams struct {
	Statuses []RenewalStatus
	Search   string
	AgentID  *uuid.UUID

	// Bucket-derived window over end_date.
	EndFrom   *time.Time // inclusive lower bound
	EndTo     *time.Time // inclusive upper bound
	EndBefore *time.Time // exclusive upper bound (overdue)
	OnlyOpen  bool       // exclude Renewed/Lost/NotInterested
	NeedsFix  bool       // end_date IS NULL

	Limit  int
	Offset int
}

// ListPolicies returns a page of policies and the total count for the same
// filter, ordered soonest-expiring first.
func (s Store) ListPolicies(ctx context.Context, params ListPoliciesParams) ([]Policy, int, error) {
	where, args := buildPolicyFilter(params)

	countQuery := `SELECT count(*) FROM policies` + where
	var total int
	if err := s.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count policies: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM policies%s
ORDER BY end_date ASC NULLS LAST, created_at ASC
LIMIT $%d OFFSET $%d`, policyColumns, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	policies := []Policy{}
	if err := s.db.SelectContext(ctx, &policies, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list policies: %w", err)
	}
	return policies, total, nil
}

func buildPolicyFilter(params ListPoliciesParams) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.OnlyOpen {
		clauses = append(clauses, `renewal_status NOT IN ('Renewed', 'Lost', 'NotInterested')`)
	}
	if len(params.Statuses) > 0 {
		statuses := make([]string, len(params.Statuses))
		for i, st := range params.Statuses {
			statuses[i] = string(st)
		}
		clauses = append(clauses, fmt.Sprintf("renewal_status = ANY(%s)", arg(statuses)))
	}
	if params.NeedsFix {
		clauses = append(clauses, "end_date IS NULL")
	} else {
		if params.EndFrom != nil {
			clauses = append(clauses, fmt.Sprintf("end_date >= %s", arg(*params.EndFrom)))
		}
		if params.EndTo != nil {
			clauses = append(clauses, fmt.Sprintf("end_date <= %s", arg(*params.EndTo)))
		}
		if params.EndBefore != nil {
			clauses = append(clauses, fmt.Sprintf("end_date < %s", arg(*params.EndBefore)))
		}
	}
	if params.AgentID != nil {
		clauses = append(clauses, fmt.Sprintf("assigned_agent_id = %s", arg(*params.AgentID)))
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		pattern := "%" + search + "%"
		p := arg(pattern)
		clauses = append(clauses, fmt.Sprintf(
			"(customer_name ILIKE %s OR customer_mobile ILIKE %s OR vehicle_registration ILIKE %s)", p, p, p))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// UpdatePolicyParams represents parameters for a partial policy update.
// Nil fields are left untouched.
type UpdatePolicyParams struct {
	PolicyNumber     *string
	Insurer          *string
	StartDate        *time.Time
	EndDate          *time.Time
	RenewalStatus    *RenewalStatus
	RenewalStage     *RenewalStage
	NextFollowUpDate *time.Time
	AssignedAgentID  *uuid.UUID
	PremiumAmount    *decimal.Decimal
	ODPremium        *decimal.NullDecimal
	TPPremium        *decimal.NullDecimal
	AddonPremium     *decimal.NullDecimal
	NCBPercent       *decimal.NullDecimal
	ClaimDetails     *string
	CustomerName     *string
	CustomerMobile   *string
}

// UpdatePolicy updates a policy row. Setting renewal_status = Renewed is a
// contract violation guarded in the policies processor; the renewal
// transactor is the only writer of that status.
func (s Store) UpdatePolicy(ctx context.Context, policyID uuid.UUID, params UpdatePolicyParams) (Policy, error) {
	// Build dynamic update query
	updates := []string{}
	args := []interface{}{}
	set := func(column string, v interface{}) {
		args = append(args, v)
		updates = append(updates, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.PolicyNumber != nil {
		set("policy_number", strings.TrimSpace(*params.PolicyNumber))
	}
	if params.Insurer != nil {
		set("insurer", *params.Insurer)
	}
	if params.StartDate != nil {
		set("start_date", *params.StartDate)
	}
	if params.EndDate != nil {
		set("end_date", *params.EndDate)
	}
	if params.RenewalStatus != nil {
		set("renewal_status", *params.RenewalStatus)
	}
	if params.RenewalStage != nil {
		set("renewal_stage", *params.RenewalStage)
	}
	if params.NextFollowUpDate != nil {
		set("next_follow_up_date", *params.NextFollowUpDate)
	}
	if params.AssignedAgentID != nil {
		set("assigned_agent_id", *params.AssignedAgentID)
	}
	if params.PremiumAmount != nil {
		set("premium_amount", *params.PremiumAmount)
	}
	if params.ODPremium != nil {
		set("od_premium", *params.ODPremium)
	}
	if params.TPPremium != nil {
		set("tp_premium", *params.TPPremium)
	}
	if params.AddonPremium != nil {
		set("addon_premium", *params.AddonPremium)
	}
	if params.NCBPercent != nil {
		set("ncb_percent", *params.NCBPercent)
	}
	if params.ClaimDetails != nil {
		set("claim_details", *params.ClaimDetails)
	}
	if params.CustomerName != nil {
		set("customer_name", *params.CustomerName)
	}
	if params.CustomerMobile != nil {
		set("customer_mobile", NormalizeMobile(*params.CustomerMobile))
	}

	if len(updates) == 0 {
		return s.GetPolicyByID(ctx, policyID)
	}
	set("updated_at", time.Now())

	args = append(args, policyID)
	query := fmt.Sprintf(`
		UPDATE policies
		SET %s
		WHERE id = $%d
		RETURNING %s`, strings.Join(updates, ", "), len(args), policyColumns)

	var policy Policy
	err := s.db.GetContext(ctx, &policy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Policy{}, ErrNotFound
		}
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return Policy{}, dupErr
		}
		return Policy{}, fmt.Errorf("failed to update policy: %w", err)
	}
	return policy, nil
}

// RenewPolicyParams carries the next-term details for the renewal
// transactor.
type RenewPolicyParams struct {
	NewPolicyNumber string
	Insurer         *string // defaults to the old term's insurer
	StartDate       time.Time
	EndDate         time.Time
	PremiumAmount   decimal.Decimal
	ODPremium       decimal.NullDecimal
	TPPremium       decimal.NullDecimal
	AddonPremium    decimal.NullDecimal
	NCBPercent      decimal.NullDecimal
	PaymentMode     string
	PaymentTxnRef   *string

	// Optional vehicle refresh recorded on the successor's snapshot.
	VehicleMake  *string
	VehicleModel *string
}

const sqlSelectPolicyForUpdate = `SELECT ` + policyColumns + ` FROM policies WHERE id = $1 FOR UPDATE`

const sqlClosePolicyOnRenewal = `
UPDATE policies
SET renewal_status = $1, renewal_stage = $2, updated_at = $3
WHERE id = $4`

const sqlLinkRenewalSuccessor = `UPDATE policies SET successor_id = $1 WHERE id = $2`

// RenewPolicy atomically closes the current term and opens the successor.
// Both writes happen in one transaction: no reader observes the old policy
// as Renewed without the successor existing, and a concurrent second
// attempt fails with ErrAlreadyRenewed once the first has locked the row.
// The old term is closed before the successor is inserted so the
// active-vehicle unique index never sees two open rows for the pair.
func (s Store) RenewPolicy(ctx context.Context, policyID uuid.UUID, params RenewPolicyParams) (Policy, error) {
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

	var current Policy
	err = tx.GetContext(ctx, &current, sqlSelectPolicyForUpdate, policyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
			return Policy{}, err
		}
		return Policy{}, fmt.Errorf("failed to lock policy: %w", err)
	}
	if current.RenewalStatus == RenewalStatusRenewed {
		err = ErrAlreadyRenewed
		return Policy{}, err
	}

	insurer := current.Insurer
	if params.Insurer != nil && strings.TrimSpace(*params.Insurer) != "" {
		insurer = strings.TrimSpace(*params.Insurer)
	}
	vehicleMake := current.VehicleMake
	if params.VehicleMake != nil {
		vehicleMake = *params.VehicleMake
	}
	vehicleModel := current.VehicleModel
	if params.VehicleModel != nil {
		vehicleModel = *params.VehicleModel
	}

	startDate := params.StartDate
	endDate := params.EndDate
	paymentMode := params.PaymentMode

	_, err = tx.ExecContext(ctx, sqlClosePolicyOnRenewal,
		RenewalStatusRenewed, RenewalStageClosed, time.Now(), current.ID)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to close renewed policy: %w", err)
	}

	var successor Policy
	successor, err = createPolicy(ctx, tx, CreatePolicyParams{
		PolicyNumber:        params.NewPolicyNumber,
		Insurer:             insurer,
		CustomerID:          current.CustomerID,
		VehicleID:           current.VehicleID,
		CustomerName:        current.CustomerName,
		CustomerMobile:      current.CustomerMobile,
		VehicleRegistration: current.VehicleRegistration,
		VehicleMake:         vehicleMake,
		VehicleModel:        vehicleModel,
		StartDate:           &startDate,
		EndDate:             &endDate,
		RenewalStatus:       RenewalStatusPending,
		RenewalStage:        RenewalStageNew,
		AssignedAgentID:     current.AssignedAgentID,
		PremiumAmount:       params.PremiumAmount,
		ODPremium:           params.ODPremium,
		TPPremium:           params.TPPremium,
		AddonPremium:        params.AddonPremium,
		NCBPercent:          params.NCBPercent,
		PaymentMode:         &paymentMode,
		PaymentTxnRef:       params.PaymentTxnRef,
		PredecessorID:       &current.ID,
	})
	if err != nil {
		return Policy{}, err
	}

	_, err = tx.ExecContext(ctx, sqlLinkRenewalSuccessor, successor.ID, current.ID)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to link renewal successor: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		s.logger.Error(ctx, "failed to commit renewal transaction", err)
		return Policy{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return successor, nil
}

// PolicyStats are the dashboard counts over open policies.
type PolicyStats struct {
	ExpiringToday int `db:"expiring_today" json:"expiring_today"`
	ExpiringWeek  int `db:"expiring_week" json:"expiring_week"`
	ExpiringMonth int `db:"expiring_month" json:"expiring_month"`
	Expired       int `db:"expired" json:"expired"`
	NeedsFix      int `db:"needs_fix" json:"needs_fix"`
}

const sqlPolicyStats = `
SELECT
	count(*) FILTER (WHERE end_date = $1::date) AS expiring_today,
	count(*) FILTER (WHERE end_date >= $1::date AND end_date <= $1::date + 7) AS expiring_week,
	count(*) FILTER (WHERE end_date >= $1::date AND end_date <= $1::date + 30) AS expiring_month,
	count(*) FILTER (WHERE end_date < $1::date) AS expired,
	count(*) FILTER (WHERE end_date IS NULL) AS needs_fix
FROM policies
WHERE renewal_status NOT IN ('Renewed', 'Lost', 'NotInterested')`

// GetPolicyStats computes bucket counts against the supplied timestamp.
// Counts are always derived at query time, never cached on rows.
func (s Store) GetPolicyStats(ctx context.Context, now time.Time) (PolicyStats, error) {
	var stats PolicyStats
	err := s.db.GetContext(ctx, &stats, sqlPolicyStats, now)
	if err != nil {
		return PolicyStats{}, fmt.Errorf("failed to get policy stats: %w", err)
	}
	return stats, nil
}
