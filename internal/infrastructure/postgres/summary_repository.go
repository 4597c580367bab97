package postgres

import (
	"context"
	"fmt"

	"kassa/internal/domain/summary"
)

type SummaryRepository struct {
	db *DB
}

func NewSummaryRepository(db *DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// CategorySpend aggregates the month's spend per category. The LEFT JOIN
// keeps categories with no matching expenses in the result with spent = 0.
func (r *SummaryRepository) CategorySpend(ctx context.Context, userID, month string) ([]summary.CategorySpend, error) {
	query := `
		SELECT c.id, c.name, c.limit_amount, COALESCE(SUM(e.amount), 0)
		FROM categories c
		LEFT JOIN expenses e
		  ON e.category_id = c.id
		 AND e.user_id = c.user_id
		 AND to_char(e.expense_date, 'YYYY-MM') = $2
		WHERE c.user_id = $1
		GROUP BY c.id, c.name, c.limit_amount
		ORDER BY c.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category spend: %w", err)
	}
	defer rows.Close()

	var spends []summary.CategorySpend
	for rows.Next() {
		var s summary.CategorySpend
		if err := rows.Scan(&s.CategoryID, &s.Name, &s.LimitAmount, &s.Spent); err != nil {
			return nil, fmt.Errorf("failed to scan category spend: %w", err)
		}
		spends = append(spends, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category spend: %w", err)
	}

	return spends, nil
}
