package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vehicle is owned by exactly one customer; registration is the matching
// key for imports and renewals.
type Vehicle struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CustomerID      uuid.UUID `db:"customer_id" json:"customer_id"`
	Registration    string    `db:"registration" json:"registration"`
	Make            string    `db:"make" json:"make"`
	Model           string    `db:"model" json:"model"`
	Variant         *string   `db:"variant" json:"variant,omitempty"`
	FuelType        *string   `db:"fuel_type" json:"fuel_type,omitempty"`
	ManufactureYear *int      `db:"manufacture_year" json:"manufacture_year,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreateVehicleParams represents parameters for creating a vehicle
type CreateVehicleParams struct {
	CustomerID      uuid.UUID
	Registration    string
	Make            string
	Model           string
	Variant         *string
	FuelType        *string
	ManufactureYear *int
}

const sqlCreateVehicle = `
INSERT INTO vehicles (customer_id, registration, make, model, variant, fuel_type, manufacture_year)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, customer_id, registration, make, model, variant, fuel_type, manufacture_year, created_at, updated_at`

// CreateVehicle creates a new vehicle. The registration is stored in its
// normalized form so matching stays exact.
func (s Store) CreateVehicle(ctx context.Context, params CreateVehicleParams) (Vehicle, error) {
	var vehicle Vehicle
	err := s.db.GetContext(ctx, &vehicle, sqlCreateVehicle,
		params.CustomerID,
		NormalizeRegistration(params.Registration),
		params.Make,
		params.Model,
		params.Variant,
		params.FuelType,
		params.ManufactureYear,
	)
	if err != nil {
		return Vehicle{}, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

const sqlGetVehicleByRegistration = `
SELECT id, customer_id, registration, make, model, variant, fuel_type, manufacture_year, created_at, updated_at
FROM vehicles
WHERE customer_id = $1 AND registration = $2`

// GetVehicleByRegistration retrieves a customer's vehicle by its
// normalized registration number.
func (s Store) GetVehicleByRegistration(ctx context.Context, customerID uuid.UUID, registration string) (Vehicle, error) {
	var vehicle Vehicle
	err := s.db.GetContext(ctx, &vehicle, sqlGetVehicleByRegistration,
		customerID, NormalizeRegistration(registration))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Vehicle{}, ErrNotFound
		}
		return Vehicle{}, fmt.Errorf("failed to get vehicle by registration: %w", err)
	}
	return vehicle, nil
}

const sqlGetVehicleByID = `
SELECT id, customer_id, registration, make, model, variant, fuel_type, manufacture_year, created_at, updated_at
FROM vehicles
WHERE id = $1`

// GetVehicleByID retrieves a vehicle by ID
func (s Store) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (Vehicle, error) {
	var vehicle Vehicle
	err := s.db.GetContext(ctx, &vehicle, sqlGetVehicleByID, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Vehicle{}, ErrNotFound
		}
		return Vehicle{}, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

// NormalizeRegistration uppercases a registration number and strips all
// whitespace. Registrations are frequently mis-typed with inconsistent
// casing and spacing, so every match goes through this form.
func NormalizeRegistration(registration string) string {
	registration = strings.ToUpper(strings.TrimSpace(registration))
	return strings.Join(strings.Fields(registration), "")
}
