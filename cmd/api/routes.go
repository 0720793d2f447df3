package main

import (
	"log"
	"net/http"

	httphandlers "github.com/sinawatra/TamDan/internal/interfaces/http"
	"github.com/sinawatra/TamDan/internal/shared/config"
	"github.com/sinawatra/TamDan/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Welcome page and JSON 404 fallback
	mux.HandleFunc("/", httphandlers.HandleRoot)

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Public auth routes
	mux.HandleFunc("/api/auth/signup", deps.AuthHandler.HandleSignup)
	mux.HandleFunc("/api/auth/login", deps.AuthHandler.HandleLogin)
	mux.HandleFunc("/api/auth/logout", deps.AuthHandler.HandleLogout)

	// Transaction routes
	mux.HandleFunc("/expense", deps.TransactionHandler.HandleAddExpense)
	mux.HandleFunc("/income", deps.TransactionHandler.HandleAddIncome)
	mux.HandleFunc("/transactions", deps.TransactionHandler.HandleListTransactions)

	// Protected routes
	authMiddleware := middleware.Auth(deps.JWT, deps.Users)

	mux.Handle("/api/auth/me", authMiddleware(http.HandlerFunc(deps.AuthHandler.HandleMe)))

	// Apply global middleware, innermost first
	handler := middleware.AllowedHosts(cfg.Server.AllowedHosts)(mux)
	handler = middleware.CORS(cfg.Server.AllowedHosts)(handler)
	if cfg.Telemetry.Enabled {
		handler = middleware.Tracing(handler)
	}
	handler = middleware.RequestID(middleware.Logging(handler))

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(handler)
		log.Println("TLS security middleware enabled (HSTS)")
	}

	return handler
}
