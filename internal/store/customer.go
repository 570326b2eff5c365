package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Customer is the identity record a policy hangs off.
type Customer struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	Name            string         `db:"name" json:"name"`
	Mobile          string         `db:"mobile" json:"mobile"`
	AlternatePhones pq.StringArray `db:"alternate_phones" json:"alternate_phones,omitempty"`
	Email           *string        `db:"email" json:"email,omitempty"`
	AssignedAgentID *uuid.UUID     `db:"assigned_agent_id" json:"assigned_agent_id,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreateCustomerParams represents parameters for creating a customer
type CreateCustomerParams struct {
	Name            string
	Mobile          string
	AlternatePhones []string
	Email           *string
	AssignedAgentID *uuid.UUID
}

const sqlCreateCustomer = `
INSERT INTO customers (name, mobile, alternate_phones, email, assigned_agent_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, mobile, alternate_phones, email, assigned_agent_id, created_at, updated_at`

// CreateCustomer creates a new customer
func (s Store) CreateCustomer(ctx context.Context, params CreateCustomerParams) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlCreateCustomer,
		params.Name,
		NormalizeMobile(params.Mobile),
		pq.StringArray(params.AlternatePhones),
		params.Email,
		params.AssignedAgentID,
	)
	if err != nil {
		return Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

const sqlGetCustomerByID = `
SELECT id, name, mobile, alternate_phones, email, assigned_agent_id, created_at, updated_at
FROM customers
WHERE id = $1`

// GetCustomerByID retrieves a customer by ID
func (s Store) GetCustomerByID(ctx context.Context, customerID uuid.UUID) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlGetCustomerByID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

const sqlGetCustomerByMobile = `
SELECT id, name, mobile, alternate_phones, email, assigned_agent_id, created_at, updated_at
FROM customers
WHERE mobile = $1`

// GetCustomerByMobile retrieves a customer by their primary mobile number.
// The mobile is normalized before matching.
func (s Store) GetCustomerByMobile(ctx context.Context, mobile string) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlGetCustomerByMobile, NormalizeMobile(mobile))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, fmt.Errorf("failed to get customer by mobile: %w", err)
	}
	return customer, nil
}

// NormalizeMobile strips whitespace and dashes from a mobile number so
// lookups do not miss on formatting differences.
func NormalizeMobile(mobile string) string {
	mobile = strings.TrimSpace(mobile)
	mobile = strings.ReplaceAll(mobile, " ", "")
	mobile = strings.ReplaceAll(mobile, "-", "")
	return mobile
}
