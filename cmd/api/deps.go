package main

import (
	"context"
	"log"

	"kassa/internal/domain/summary"
	"kassa/internal/infrastructure/firebase"
	"kassa/internal/infrastructure/postgres"
	httphandlers "kassa/internal/interfaces/http"
	"kassa/internal/shared/auth"
	"kassa/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	CategoryHandler    *httphandlers.CategoryHandler
	ExpenseHandler     *httphandlers.ExpenseHandler
	IncomeHandler      *httphandlers.IncomeHandler
	SummaryHandler     *httphandlers.SummaryHandler
	MaintenanceHandler *httphandlers.MaintenanceHandler

	// Auth
	Verifier auth.TokenVerifier
}

// NewDependencies initializes all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	// Apply schema migrations before opening the pooled connection
	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(cfg.Database.ConnectionString()); err != nil {
			return nil, err
		}
		log.Println("Database migrations applied")
	}

	// Connect to database
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	// Initialize the external token verifier
	verifier, err := firebase.NewClient(ctx, cfg.Firebase.CredentialsFile)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Initialize repositories
	categoryRepo := postgres.NewCategoryRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	incomeRepo := postgres.NewIncomeRepository(db)
	summaryRepo := postgres.NewSummaryRepository(db)
	maintenanceRepo := postgres.NewMaintenanceRepository(db)

	// Initialize domain services
	summaryService := summary.NewService(incomeRepo, summaryRepo)

	// Initialize handlers
	return &Dependencies{
		DB:                 db,
		CategoryHandler:    httphandlers.NewCategoryHandler(categoryRepo),
		ExpenseHandler:     httphandlers.NewExpenseHandler(expenseRepo),
		IncomeHandler:      httphandlers.NewIncomeHandler(incomeRepo),
		SummaryHandler:     httphandlers.NewSummaryHandler(summaryService),
		MaintenanceHandler: httphandlers.NewMaintenanceHandler(maintenanceRepo, cfg.Reset.KeyHash),
		Verifier:           verifier,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
