package income

import (
	"errors"
	"regexp"
	"time"
)

var ErrIncomeNotFound = errors.New("income not found")

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ValidMonth reports whether month is a "YYYY-MM" string.
func ValidMonth(month string) bool {
	return monthPattern.MatchString(month)
}

// Income holds a user's declared earnings for one calendar month. There is at
// most one row per (user, month); setting it again overwrites the amount.
type Income struct {
	UserID    string    `json:"-"`
	Month     string    `json:"month"`
	Amount    float64   `json:"amount"`
	UpdatedAt time.Time `json:"-"`
}

type SetIncomeParams struct {
	Month  string
	Amount float64
}

func (p *SetIncomeParams) Validate() error {
	if !ValidMonth(p.Month) {
		return errors.New("month must be in YYYY-MM format")
	}
	if p.Amount < 0 {
		return errors.New("amount must be non-negative")
	}
	return nil
}
