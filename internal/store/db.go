package store

import (
	"errors"
	"log"

	"renewal-server/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrAlreadyRenewed is returned when a renewal is attempted against a
	// policy whose status is already Renewed.
	ErrAlreadyRenewed = errors.New("policy already renewed")

	// ErrDuplicatePolicy is returned when an insert would reuse an
	// existing policy number.
	ErrDuplicatePolicy = errors.New("duplicate policy")

	// ErrActivePolicyExists is returned when a write would put a second
	// open policy on a (registration, mobile) pair.
	ErrActivePolicyExists = errors.New("active policy exists for vehicle")
)

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		log.Fatal(err)
		return Store{}, err
	}
	return Store{db: db, logger: logger}, nil
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	return s.db.Close()
}
