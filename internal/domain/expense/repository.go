package expense

import (
	"context"
)

type Repository interface {
	// Create persists a new expense. The referenced category must exist and
	// belong to userID; ErrCategoryNotFound otherwise.
	Create(ctx context.Context, userID string, params CreateExpenseParams) (*Expense, error)
	GetByID(ctx context.Context, userID string, id int64) (*Expense, error)
	List(ctx context.Context, userID string, filter ListFilter) ([]*Expense, error)
	Update(ctx context.Context, userID string, id int64, params UpdateExpenseParams) (*Expense, error)
	Delete(ctx context.Context, userID string, id int64) error
}
