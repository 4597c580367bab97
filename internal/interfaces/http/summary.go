package http

import (
	"errors"
	"log"
	"net/http"

	"kassa/internal/domain/income"
	"kassa/internal/domain/summary"
	"kassa/internal/shared/middleware"
)

type SummaryHandler struct {
	service *summary.Service
}

func NewSummaryHandler(service *summary.Service) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// HandleSummaryByMonth returns the overview for the month in the path.
func (h *SummaryHandler) HandleSummaryByMonth(w http.ResponseWriter, r *http.Request) {
	h.respondSummary(w, r, r.PathValue("month"))
}

// HandleCurrentSummary returns the overview for the current calendar month.
func (h *SummaryHandler) HandleCurrentSummary(w http.ResponseWriter, r *http.Request) {
	h.respondSummary(w, r, summary.CurrentMonth())
}

func (h *SummaryHandler) respondSummary(w http.ResponseWriter, r *http.Request, month string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.service.MonthlySummary(r.Context(), userID, month)
	if err != nil {
		switch {
		case errors.Is(err, summary.ErrInvalidMonth):
			http.Error(w, "Month must be in YYYY-MM format", http.StatusBadRequest)
		case errors.Is(err, income.ErrIncomeNotFound):
			http.Error(w, "Income not set for this month", http.StatusNotFound)
		default:
			log.Printf("Error computing summary for user %s month %s: %v", userID, month, err)
			http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
