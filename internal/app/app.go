package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"quotedash/config"
	"quotedash/internal/api"
	"quotedash/internal/provider/sohu"
	"quotedash/internal/service"
	"quotedash/internal/store"
)

// clientCtor is an indirection for creating the provider client;
// tests can override it.
var clientCtor = func(cfg config.Config) *sohu.HTTPClient {
	return sohu.NewHTTPClient(cfg.Provider.BaseURL, cfg.Provider.RefererBase, cfg.Provider.Timeout)
}

// InitializeApp sets up all application dependencies and returns a
// fully configured Gin router, a cleanup function for graceful
// shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the provider HTTP client from configuration.
//   - Creates the session store (in-memory, process-lifetime).
//   - Wires the quote service and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Outbound quote provider client (bounded timeout, no retry)
	client := clientCtor(cfg)

	// Per-session state store
	sessions := store.New()

	// Business logic layer
	svc := service.NewQuoteService(client, sessions)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, cfg.Defaults)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return client.Ping(ctx)
	})
	healthHandler.Register(router)

	// Nothing external to tear down; sessions live in memory.
	cleanup := func() {}

	return router, cleanup, nil
}
