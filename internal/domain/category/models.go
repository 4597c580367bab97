package category

import (
	"errors"
	"time"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateName    = errors.New("category with this name already exists")
)

type Category struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	LimitAmount float64   `json:"limit_amount"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type CreateCategoryParams struct {
	Name        string
	LimitAmount float64
}

func (p *CreateCategoryParams) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if len(p.Name) > 128 {
		return errors.New("name must be 128 characters or less")
	}
	if p.LimitAmount < 0 {
		return errors.New("limit_amount must be non-negative")
	}
	return nil
}

type UpdateCategoryParams struct {
	Name        *string
	LimitAmount *float64
}

func (p *UpdateCategoryParams) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return errors.New("name must not be empty")
	}
	if p.Name != nil && len(*p.Name) > 128 {
		return errors.New("name must be 128 characters or less")
	}
	if p.LimitAmount != nil && *p.LimitAmount < 0 {
		return errors.New("limit_amount must be non-negative")
	}
	return nil
}
