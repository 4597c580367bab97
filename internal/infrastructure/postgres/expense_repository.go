package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"kassa/internal/domain/expense"
)

const defaultExpenseListLimit = 100

type ExpenseRepository struct {
	db *DB
}

func NewExpenseRepository(db *DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create inserts the expense only if the referenced category exists and is
// owned by userID. The ownership check and the insert are a single statement,
// so a concurrently deleted category cannot slip through.
func (r *ExpenseRepository) Create(ctx context.Context, userID string, params expense.CreateExpenseParams) (*expense.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, category_id, amount, expense_date, description)
		SELECT $1, c.id, $3, $4, $5
		FROM categories c
		WHERE c.id = $2 AND c.user_id = $1
		RETURNING id, user_id, category_id, amount, expense_date, COALESCE(description, ''), created_at, updated_at
	`

	description := ""
	if params.Description != nil {
		description = *params.Description
	}

	var e expense.Expense
	err := r.db.QueryRowContext(
		ctx, query,
		userID, params.CategoryID, params.Amount, params.Date, description,
	).Scan(
		&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Date, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, expense.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &e, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, userID string, id int64) (*expense.Expense, error) {
	query := `
		SELECT id, user_id, category_id, amount, expense_date, COALESCE(description, ''), created_at, updated_at
		FROM expenses
		WHERE id = $1 AND user_id = $2
	`

	var e expense.Expense
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Date, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return &e, nil
}

func (r *ExpenseRepository) List(ctx context.Context, userID string, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `
		SELECT id, user_id, category_id, amount, expense_date, COALESCE(description, ''), created_at, updated_at
		FROM expenses
		WHERE user_id = $1
		  AND ($2::date IS NULL OR expense_date >= $2)
		  AND ($3::date IS NULL OR expense_date < $3)
		ORDER BY id ASC
		OFFSET $4 LIMIT $5
	`

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultExpenseListLimit
	}

	rows, err := r.db.QueryContext(ctx, query, userID, filter.From, filter.To, filter.Offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense
	for rows.Next() {
		var e expense.Expense
		err := rows.Scan(
			&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Date, &e.Description,
			&e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// Update applies only the provided fields. A category change is validated the
// same way as on create: the new category must belong to the same user.
func (r *ExpenseRepository) Update(ctx context.Context, userID string, id int64, params expense.UpdateExpenseParams) (*expense.Expense, error) {
	query := `
		UPDATE expenses e
		SET category_id = COALESCE($1, e.category_id),
		    amount = COALESCE($2, e.amount),
		    expense_date = COALESCE($3, e.expense_date),
		    description = COALESCE($4, e.description),
		    updated_at = CURRENT_TIMESTAMP
		WHERE e.id = $5 AND e.user_id = $6
		  AND ($1::bigint IS NULL OR EXISTS (
		      SELECT 1 FROM categories c WHERE c.id = $1 AND c.user_id = $6
		  ))
		RETURNING e.id, e.user_id, e.category_id, e.amount, e.expense_date, COALESCE(e.description, ''), e.created_at, e.updated_at
	`

	var e expense.Expense
	err := r.db.QueryRowContext(
		ctx, query,
		params.CategoryID, params.Amount, params.Date, params.Description, id, userID,
	).Scan(
		&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Date, &e.Description,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		// Distinguish a missing expense from a rejected category change.
		if params.CategoryID != nil {
			existing, getErr := r.GetByID(ctx, userID, id)
			if getErr == nil && existing != nil {
				return nil, expense.ErrCategoryNotFound
			}
		}
		return nil, expense.ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &e, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, userID string, id int64) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}
