package income

import (
	"context"
)

type Repository interface {
	// Set creates the income row for (userID, month) or overwrites its amount.
	Set(ctx context.Context, userID string, params SetIncomeParams) (*Income, error)
	// GetByMonth returns (nil, nil) when no income is set for the month.
	GetByMonth(ctx context.Context, userID, month string) (*Income, error)
}
