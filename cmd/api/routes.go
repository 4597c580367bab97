package main

import (
	"log"
	"net/http"

	httphandlers "kassa/internal/interfaces/http"
	"kassa/internal/shared/config"
	"kassa/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("/{$}", httphandlers.HandleHome)
	mux.HandleFunc("/v1/health", httphandlers.HandleHealth)

	// Operator-only reset (gated by X-Reset-Key, see MaintenanceHandler)
	mux.HandleFunc("/v1/reset", deps.MaintenanceHandler.HandleReset)

	// Protected routes
	authMiddleware := middleware.Auth(deps.Verifier)

	mux.Handle("/v1/categories/", authMiddleware(http.HandlerFunc(deps.CategoryHandler.HandleCategories)))
	mux.Handle("/v1/categories/{id}", authMiddleware(http.HandlerFunc(deps.CategoryHandler.HandleCategoryByID)))
	mux.Handle("/v1/expenses/", authMiddleware(http.HandlerFunc(deps.ExpenseHandler.HandleExpenses)))
	mux.Handle("/v1/expenses/{id}", authMiddleware(http.HandlerFunc(deps.ExpenseHandler.HandleExpenseByID)))
	mux.Handle("/v1/income/", authMiddleware(http.HandlerFunc(deps.IncomeHandler.HandleSetIncome)))
	mux.Handle("/v1/income/{month}", authMiddleware(http.HandlerFunc(deps.IncomeHandler.HandleGetIncome)))
	mux.Handle("/v1/summary", authMiddleware(http.HandlerFunc(deps.SummaryHandler.HandleCurrentSummary)))
	mux.Handle("/v1/summary/{month}", authMiddleware(http.HandlerFunc(deps.SummaryHandler.HandleSummaryByMonth)))

	// Apply global middleware
	handler := middleware.Logging(middleware.Tracing(middleware.CORS(cfg.Server.AllowedHosts)(mux)))

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(handler)
		log.Println("TLS security middleware enabled (HSTS)")
	}

	return handler
}
