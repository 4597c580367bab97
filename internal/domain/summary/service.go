package summary

import (
	"context"
	"time"

	"kassa/internal/domain/income"
)

// Repository provides the per-category spend aggregation for one user+month.
type Repository interface {
	CategorySpend(ctx context.Context, userID, month string) ([]CategorySpend, error)
}

// Service computes the monthly overview from set income and aggregated
// expenses.
type Service struct {
	incomes income.Repository
	repo    Repository
}

func NewService(incomes income.Repository, repo Repository) *Service {
	return &Service{incomes: incomes, repo: repo}
}

// CurrentMonth returns the current calendar month as "YYYY-MM".
func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

// MonthlySummary builds the overview for one month. The month must be a
// "YYYY-MM" string and income must already be set for it; income.ErrIncomeNotFound
// is returned otherwise, regardless of whether expenses exist.
func (s *Service) MonthlySummary(ctx context.Context, userID, month string) (*MonthlySummary, error) {
	if !income.ValidMonth(month) {
		return nil, ErrInvalidMonth
	}

	inc, err := s.incomes.GetByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	if inc == nil {
		return nil, income.ErrIncomeNotFound
	}

	rows, err := s.repo.CategorySpend(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	result := &MonthlySummary{
		Month:      month,
		Income:     inc.Amount,
		Categories: make([]CategorySummary, 0, len(rows)),
	}

	for _, row := range rows {
		result.TotalSpent += row.Spent
		result.Categories = append(result.Categories, CategorySummary{
			Category:  row.Name,
			Limit:     row.LimitAmount,
			Spent:     row.Spent,
			Balance:   row.LimitAmount - row.Spent,
			OverLimit: row.Spent > row.LimitAmount,
		})
	}

	result.Remaining = inc.Amount - result.TotalSpent
	return result, nil
}
