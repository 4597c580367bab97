package http

import (
	"encoding/json"
	"log"
	"net/http"

	"kassa/internal/domain/income"
	"kassa/internal/shared/middleware"
)

type IncomeHandler struct {
	incomeRepo income.Repository
}

func NewIncomeHandler(incomeRepo income.Repository) *IncomeHandler {
	return &IncomeHandler{incomeRepo: incomeRepo}
}

// Request/Response DTOs

type SetIncomeRequest struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type IncomeResponse struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

func toIncomeResponse(inc *income.Income) IncomeResponse {
	return IncomeResponse{
		Month:  inc.Month,
		Amount: inc.Amount,
	}
}

// HandleSetIncome creates or overwrites the caller's income for one month.
// Always responds 201; the upsert makes a repeated set idempotent.
func (h *IncomeHandler) HandleSetIncome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SetIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding set income request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := income.SetIncomeParams{
		Month:  req.Month,
		Amount: req.Amount,
	}

	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inc, err := h.incomeRepo.Set(r.Context(), userID, params)
	if err != nil {
		log.Printf("Error setting income for user %s: %v", userID, err)
		http.Error(w, "Failed to set income", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toIncomeResponse(inc))
}

// HandleGetIncome fetches the caller's income for the month in the path.
func (h *IncomeHandler) HandleGetIncome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	month := r.PathValue("month")
	if !income.ValidMonth(month) {
		http.Error(w, "Month must be in YYYY-MM format", http.StatusBadRequest)
		return
	}

	inc, err := h.incomeRepo.GetByMonth(r.Context(), userID, month)
	if err != nil {
		log.Printf("Error getting income for user %s month %s: %v", userID, month, err)
		http.Error(w, "Failed to get income", http.StatusInternalServerError)
		return
	}
	if inc == nil {
		http.Error(w, "Income not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toIncomeResponse(inc))
}
