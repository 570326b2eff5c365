package bootstrap

import (
	"context"
	"fmt"

	"renewal-server/internal/config"
	"renewal-server/internal/observability"
	"renewal-server/internal/store"

	importsHandler "renewal-server/internal/imports/handler"
	importsProcessor "renewal-server/internal/imports/processor"
	interactionsHandler "renewal-server/internal/interactions/handler"
	interactionsProcessor "renewal-server/internal/interactions/processor"
	policiesHandler "renewal-server/internal/policies/handler"
	policiesProcessor "renewal-server/internal/policies/processor"
	renewalHandler "renewal-server/internal/renewal/handler"
	renewalProcessor "renewal-server/internal/renewal/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	PoliciesHandler     policiesHandler.Handler
	InteractionsHandler interactionsHandler.Handler
	RenewalHandler      renewalHandler.Handler
	ImportsHandler      importsHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize processors and handlers
	policies := policiesProcessor.New(deps.Store, logger, cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
	deps.PoliciesHandler = policiesHandler.New(policies, logger)

	interactions := interactionsProcessor.New(deps.Store, logger)
	deps.InteractionsHandler = interactionsHandler.New(interactions, logger)

	renewals := renewalProcessor.New(deps.Store, logger)
	deps.RenewalHandler = renewalHandler.New(renewals, logger)

	imports := importsProcessor.New(deps.Store, logger, cfg.Import.MaxRows)
	deps.ImportsHandler = importsHandler.New(imports, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	d.Store.Close()
}
