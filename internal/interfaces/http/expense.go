package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"kassa/internal/domain/expense"
	"kassa/internal/shared/middleware"
)

const dateLayout = "2006-01-02"

type ExpenseHandler struct {
	expenseRepo expense.Repository
}

func NewExpenseHandler(expenseRepo expense.Repository) *ExpenseHandler {
	return &ExpenseHandler{expenseRepo: expenseRepo}
}

// Request/Response DTOs

type CreateExpenseRequest struct {
	CategoryID  int64   `json:"category_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
}

type UpdateExpenseRequest struct {
	CategoryID  *int64   `json:"category_id,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type ExpenseResponse struct {
	ID          int64   `json:"id"`
	CategoryID  int64   `json:"category_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
}

func toExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
	}
}

// HandleExpenses routes collection requests based on method
func (h *ExpenseHandler) HandleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListExpenses(w, r)
	case http.MethodPost:
		h.handleCreateExpense(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleExpenseByID routes requests for a specific expense
func (h *ExpenseHandler) HandleExpenseByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetExpense(w, r)
	case http.MethodPut:
		h.handleUpdateExpense(w, r)
	case http.MethodDelete:
		h.handleDeleteExpense(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleListExpenses returns the caller's expenses, optionally narrowed to a
// single "YYYY-MM" month via the month query parameter.
func (h *ExpenseHandler) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	offset, limit, err := parsePagination(r, defaultListOffset, defaultListLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := expense.ListFilter{Offset: offset, Limit: limit}
	if month := r.URL.Query().Get("month"); month != "" {
		start, end, err := expense.MonthRange(month)
		if err != nil {
			http.Error(w, "Month must be in YYYY-MM format", http.StatusBadRequest)
			return
		}
		filter.From = &start
		filter.To = &end
	}

	expenses, err := h.expenseRepo.List(r.Context(), userID, filter)
	if err != nil {
		log.Printf("Error listing expenses for user %s: %v", userID, err)
		http.Error(w, "Failed to list expenses", http.StatusInternalServerError)
		return
	}

	response := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		response = append(response, toExpenseResponse(e))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *ExpenseHandler) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding create expense request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		http.Error(w, "Date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	params := expense.CreateExpenseParams{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}

	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.expenseRepo.Create(r.Context(), userID, params)
	if err != nil {
		if errors.Is(err, expense.ErrCategoryNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		log.Printf("Error creating expense for user %s: %v", userID, err)
		http.Error(w, "Failed to create expense", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(e))
}

func (h *ExpenseHandler) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid expense ID", http.StatusBadRequest)
		return
	}

	e, err := h.expenseRepo.GetByID(r.Context(), userID, id)
	if err != nil {
		log.Printf("Error getting expense %d: %v", id, err)
		http.Error(w, "Failed to get expense", http.StatusInternalServerError)
		return
	}
	if e == nil {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponse(e))
}

func (h *ExpenseHandler) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid expense ID", http.StatusBadRequest)
		return
	}

	var req UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding update expense request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := expense.UpdateExpenseParams{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			http.Error(w, "Date must be in YYYY-MM-DD format", http.StatusBadRequest)
			return
		}
		params.Date = &date
	}

	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.expenseRepo.Update(r.Context(), userID, id, params)
	if err != nil {
		switch {
		case errors.Is(err, expense.ErrExpenseNotFound):
			http.Error(w, "Expense not found", http.StatusNotFound)
		case errors.Is(err, expense.ErrCategoryNotFound):
			http.Error(w, "Category not found", http.StatusNotFound)
		default:
			log.Printf("Error updating expense %d: %v", id, err)
			http.Error(w, "Failed to update expense", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponse(e))
}

func (h *ExpenseHandler) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid expense ID", http.StatusBadRequest)
		return
	}

	if err := h.expenseRepo.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, expense.ErrExpenseNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		log.Printf("Error deleting expense %d: %v", id, err)
		http.Error(w, "Failed to delete expense", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
