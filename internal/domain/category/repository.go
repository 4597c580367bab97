package category

import (
	"context"
)

// Repository is scoped by user on every call: a category is only ever visible
// to its owner.
type Repository interface {
	Create(ctx context.Context, userID string, params CreateCategoryParams) (*Category, error)
	GetByID(ctx context.Context, userID string, id int64) (*Category, error)
	List(ctx context.Context, userID string, offset, limit int) ([]*Category, error)
	Update(ctx context.Context, userID string, id int64, params UpdateCategoryParams) (*Category, error)
	Delete(ctx context.Context, userID string, id int64) error
}
