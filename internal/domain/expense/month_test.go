package expense

import (
	"errors"
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "mid-year month",
			month:     "2025-05",
			wantStart: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december rolls the year",
			month:     "2025-12",
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "malformed month",
			month:   "2025-5",
			wantErr: true,
		},
		{
			name:    "month out of range",
			month:   "2025-13",
			wantErr: true,
		},
		{
			name:    "not a month at all",
			month:   "may-2025",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthRange(tt.month)
			if tt.wantErr {
				if err == nil {
					t.Fatal("MonthRange() expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidMonth) {
					t.Errorf("MonthRange() error = %v, want ErrInvalidMonth", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("MonthRange() unexpected error: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

// The range is inclusive at the start and exclusive at the end: the last day
// of the month is in, the first day of the next month is out.
func TestMonthRange_Boundaries(t *testing.T) {
	start, end, err := MonthRange("2025-05")
	if err != nil {
		t.Fatalf("MonthRange() unexpected error: %v", err)
	}

	lastDay := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	nextFirst := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if lastDay.Before(start) || !lastDay.Before(end) {
		t.Errorf("2025-05-31 should fall inside [%v, %v)", start, end)
	}
	if nextFirst.Before(end) {
		t.Errorf("2025-06-01 should fall outside [%v, %v)", start, end)
	}
}
