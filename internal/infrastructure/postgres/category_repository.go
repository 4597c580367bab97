package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"kassa/internal/domain/category"
)

// uniqueViolation is the Postgres error code raised when an insert or update
// breaks a unique constraint.
const uniqueViolation = "23505"

type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts the category and relies on the (user_id, name) unique
// constraint for duplicate detection, so concurrent creates with the same
// name cannot both succeed.
func (r *CategoryRepository) Create(ctx context.Context, userID string, params category.CreateCategoryParams) (*category.Category, error) {
	query := `
		INSERT INTO categories (user_id, name, limit_amount)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, limit_amount, created_at, updated_at
	`

	var c category.Category
	err := r.db.QueryRowContext(ctx, query, userID, params.Name, params.LimitAmount).Scan(
		&c.ID, &c.UserID, &c.Name, &c.LimitAmount, &c.CreatedAt, &c.UpdatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, category.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, userID string, id int64) (*category.Category, error) {
	query := `
		SELECT id, user_id, name, limit_amount, created_at, updated_at
		FROM categories
		WHERE id = $1 AND user_id = $2
	`

	var c category.Category
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.LimitAmount, &c.CreatedAt, &c.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context, userID string, offset, limit int) ([]*category.Category, error) {
	query := `
		SELECT id, user_id, name, limit_amount, created_at, updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY id ASC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		var c category.Category
		err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.LimitAmount, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, userID string, id int64, params category.UpdateCategoryParams) (*category.Category, error) {
	query := `
		UPDATE categories
		SET name = COALESCE($1, name),
		    limit_amount = COALESCE($2, limit_amount),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, name, limit_amount, created_at, updated_at
	`

	var c category.Category
	err := r.db.QueryRowContext(ctx, query, params.Name, params.LimitAmount, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.LimitAmount, &c.CreatedAt, &c.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, category.ErrCategoryNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, category.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &c, nil
}

// Delete removes the category; its expenses go with it through the
// ON DELETE CASCADE on expenses.category_id.
func (r *CategoryRepository) Delete(ctx context.Context, userID string, id int64) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}
