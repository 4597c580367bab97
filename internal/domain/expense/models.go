package expense

import (
	"errors"
	"time"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrCategoryNotFound is returned when the referenced category does not
	// exist or is not owned by the caller.
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
)

type Expense struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"-"`
	CategoryID  int64     `json:"category_id"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"-"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type CreateExpenseParams struct {
	CategoryID  int64
	Amount      float64
	Date        time.Time
	Description *string
}

func (p *CreateExpenseParams) Validate() error {
	if p.CategoryID <= 0 {
		return errors.New("category_id is required")
	}
	if p.Amount < 0 {
		return errors.New("amount must be non-negative")
	}
	if p.Date.IsZero() {
		return errors.New("date is required")
	}
	if p.Description != nil && len(*p.Description) > 255 {
		return errors.New("description must be 255 characters or less")
	}
	return nil
}

type UpdateExpenseParams struct {
	CategoryID  *int64
	Amount      *float64
	Date        *time.Time
	Description *string
}

func (p *UpdateExpenseParams) Validate() error {
	if p.CategoryID != nil && *p.CategoryID <= 0 {
		return errors.New("category_id must be positive")
	}
	if p.Amount != nil && *p.Amount < 0 {
		return errors.New("amount must be non-negative")
	}
	if p.Description != nil && len(*p.Description) > 255 {
		return errors.New("description must be 255 characters or less")
	}
	return nil
}

// ListFilter narrows an expense listing. From/To bound the expense date as
// [From, To). Limit of 0 means the repository default.
type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Offset int
	Limit  int
}
