package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"kassa/internal/domain/income"
)

type IncomeRepository struct {
	db *DB
}

func NewIncomeRepository(db *DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

// Set upserts on the (user_id, month) primary key: a second set for the same
// month overwrites the amount instead of adding a row.
func (r *IncomeRepository) Set(ctx context.Context, userID string, params income.SetIncomeParams) (*income.Income, error) {
	query := `
		INSERT INTO incomes (user_id, month, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, month)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = CURRENT_TIMESTAMP
		RETURNING user_id, month, amount, updated_at
	`

	var inc income.Income
	err := r.db.QueryRowContext(ctx, query, userID, params.Month, params.Amount).Scan(
		&inc.UserID, &inc.Month, &inc.Amount, &inc.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set income: %w", err)
	}

	return &inc, nil
}

func (r *IncomeRepository) GetByMonth(ctx context.Context, userID, month string) (*income.Income, error) {
	query := `
		SELECT user_id, month, amount, updated_at
		FROM incomes
		WHERE user_id = $1 AND month = $2
	`

	var inc income.Income
	err := r.db.QueryRowContext(ctx, query, userID, month).Scan(
		&inc.UserID, &inc.Month, &inc.Amount, &inc.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get income: %w", err)
	}

	return &inc, nil
}
