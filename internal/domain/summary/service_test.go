package summary

import (
	"context"
	"errors"
	"testing"

	"kassa/internal/domain/income"
)

type mockIncomeRepo struct {
	setFunc        func(ctx context.Context, userID string, params income.SetIncomeParams) (*income.Income, error)
	getByMonthFunc func(ctx context.Context, userID, month string) (*income.Income, error)
}

func (m *mockIncomeRepo) Set(ctx context.Context, userID string, params income.SetIncomeParams) (*income.Income, error) {
	return m.setFunc(ctx, userID, params)
}

func (m *mockIncomeRepo) GetByMonth(ctx context.Context, userID, month string) (*income.Income, error) {
	return m.getByMonthFunc(ctx, userID, month)
}

type mockSummaryRepo struct {
	categorySpendFunc func(ctx context.Context, userID, month string) ([]CategorySpend, error)
}

func (m *mockSummaryRepo) CategorySpend(ctx context.Context, userID, month string) ([]CategorySpend, error) {
	return m.categorySpendFunc(ctx, userID, month)
}

func TestService_MonthlySummary(t *testing.T) {
	incomes := &mockIncomeRepo{
		getByMonthFunc: func(ctx context.Context, userID, month string) (*income.Income, error) {
			return &income.Income{UserID: userID, Month: month, Amount: 30000}, nil
		},
	}
	repo := &mockSummaryRepo{
		categorySpendFunc: func(ctx context.Context, userID, month string) ([]CategorySpend, error) {
			return []CategorySpend{
				{CategoryID: 1, Name: "Groceries", LimitAmount: 10000, Spent: 1500},
				{CategoryID: 2, Name: "Transport", LimitAmount: 100, Spent: 150},
			}, nil
		},
	}

	svc := NewService(incomes, repo)
	got, err := svc.MonthlySummary(context.Background(), "user123", "2025-05")
	if err != nil {
		t.Fatalf("MonthlySummary() unexpected error: %v", err)
	}

	if got.Month != "2025-05" {
		t.Errorf("Month = %q, want %q", got.Month, "2025-05")
	}
	if got.Income != 30000 {
		t.Errorf("Income = %v, want 30000", got.Income)
	}
	if got.TotalSpent != 1650 {
		t.Errorf("TotalSpent = %v, want 1650", got.TotalSpent)
	}
	if got.Remaining != 28350 {
		t.Errorf("Remaining = %v, want 28350", got.Remaining)
	}
	if len(got.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(got.Categories))
	}

	groceries := got.Categories[0]
	if groceries.Category != "Groceries" || groceries.Spent != 1500 || groceries.Balance != 8500 {
		t.Errorf("Groceries = %+v, want spent=1500 balance=8500", groceries)
	}
	if groceries.OverLimit {
		t.Error("Groceries should not be over limit")
	}

	transport := got.Categories[1]
	if transport.Balance != -50 {
		t.Errorf("Transport balance = %v, want -50", transport.Balance)
	}
	if !transport.OverLimit {
		t.Error("Transport should be over limit")
	}
}

// Spending exactly the limit is not over the limit.
func TestService_MonthlySummary_AtLimit(t *testing.T) {
	incomes := &mockIncomeRepo{
		getByMonthFunc: func(ctx context.Context, userID, month string) (*income.Income, error) {
			return &income.Income{UserID: userID, Month: month, Amount: 5000}, nil
		},
	}
	repo := &mockSummaryRepo{
		categorySpendFunc: func(ctx context.Context, userID, month string) ([]CategorySpend, error) {
			return []CategorySpend{
				{CategoryID: 1, Name: "Rent", LimitAmount: 1200, Spent: 1200},
			}, nil
		},
	}

	got, err := NewService(incomes, repo).MonthlySummary(context.Background(), "user123", "2025-05")
	if err != nil {
		t.Fatalf("MonthlySummary() unexpected error: %v", err)
	}
	if got.Categories[0].OverLimit {
		t.Error("spending exactly the limit should not flag over_limit")
	}
	if got.Categories[0].Balance != 0 {
		t.Errorf("Balance = %v, want 0", got.Categories[0].Balance)
	}
}

func TestService_MonthlySummary_NoCategories(t *testing.T) {
	incomes := &mockIncomeRepo{
		getByMonthFunc: func(ctx context.Context, userID, month string) (*income.Income, error) {
			return &income.Income{UserID: userID, Month: month, Amount: 1000}, nil
		},
	}
	repo := &mockSummaryRepo{
		categorySpendFunc: func(ctx context.Context, userID, month string) ([]CategorySpend, error) {
			return nil, nil
		},
	}

	got, err := NewService(incomes, repo).MonthlySummary(context.Background(), "user123", "2025-05")
	if err != nil {
		t.Fatalf("MonthlySummary() unexpected error: %v", err)
	}
	if got.Categories == nil {
		t.Error("Categories should be an empty slice, not nil")
	}
	if got.TotalSpent != 0 {
		t.Errorf("TotalSpent = %v, want 0", got.TotalSpent)
	}
	if got.Remaining != 1000 {
		t.Errorf("Remaining = %v, want 1000", got.Remaining)
	}
}

func TestService_MonthlySummary_IncomeNotSet(t *testing.T) {
	incomes := &mockIncomeRepo{
		getByMonthFunc: func(ctx context.Context, userID, month string) (*income.Income, error) {
			return nil, nil
		},
	}
	repo := &mockSummaryRepo{
		categorySpendFunc: func(ctx context.Context, userID, month string) ([]CategorySpend, error) {
			t.Fatal("CategorySpend should not be called when income is missing")
			return nil, nil
		},
	}

	_, err := NewService(incomes, repo).MonthlySummary(context.Background(), "user123", "2025-05")
	if !errors.Is(err, income.ErrIncomeNotFound) {
		t.Errorf("MonthlySummary() error = %v, want ErrIncomeNotFound", err)
	}
}

func TestService_MonthlySummary_InvalidMonth(t *testing.T) {
	incomes := &mockIncomeRepo{
		getByMonthFunc: func(ctx context.Context, userID, month string) (*income.Income, error) {
			t.Fatal("GetByMonth should not be called for an invalid month")
			return nil, nil
		},
	}
	repo := &mockSummaryRepo{}

	_, err := NewService(incomes, repo).MonthlySummary(context.Background(), "user123", "2025-5")
	if !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("MonthlySummary() error = %v, want ErrInvalidMonth", err)
	}
}

func TestService_MonthlySummary_RepoError(t *testing.T) {
	wantErr := errors.New("connection refused")
	incomes := &mockIncomeRepo{
		getByMonthFunc: func(ctx context.Context, userID, month string) (*income.Income, error) {
			return &income.Income{Amount: 100}, nil
		},
	}
	repo := &mockSummaryRepo{
		categorySpendFunc: func(ctx context.Context, userID, month string) ([]CategorySpend, error) {
			return nil, wantErr
		},
	}

	_, err := NewService(incomes, repo).MonthlySummary(context.Background(), "user123", "2025-05")
	if !errors.Is(err, wantErr) {
		t.Errorf("MonthlySummary() error = %v, want %v", err, wantErr)
	}
}
