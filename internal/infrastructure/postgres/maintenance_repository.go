package postgres

import (
	"context"
	"fmt"
)

// MaintenanceRepository holds operator-only operations that cut across all
// users. Nothing here is reachable from the user-facing API without the
// reset key.
type MaintenanceRepository struct {
	db *DB
}

func NewMaintenanceRepository(db *DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// ResetAll wipes every category, expense and income row and restarts the id
// sequences. Destroys data for all users.
func (r *MaintenanceRepository) ResetAll(ctx context.Context) error {
	query := `TRUNCATE expenses, categories, incomes RESTART IDENTITY`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}

	return nil
}
