package summary

import (
	"errors"
)

var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

// CategorySpend is one row of the per-category aggregation: how much was
// spent against a category in a given month. Categories with no expenses in
// the month still produce a row with Spent = 0.
type CategorySpend struct {
	CategoryID  int64
	Name        string
	LimitAmount float64
	Spent       float64
}

type CategorySummary struct {
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	Balance   float64 `json:"balance"`
	OverLimit bool    `json:"over_limit"`
}

type MonthlySummary struct {
	Month      string            `json:"month"`
	Income     float64           `json:"income"`
	TotalSpent float64           `json:"total_spent"`
	Remaining  float64           `json:"remaining"`
	Categories []CategorySummary `json:"categories"`
}
