package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kassa/internal/shared/auth"
)

type mockResetter struct {
	resetAllFunc func(ctx context.Context) error
	calls        int
}

func (m *mockResetter) ResetAll(ctx context.Context) error {
	m.calls++
	if m.resetAllFunc != nil {
		return m.resetAllFunc(ctx)
	}
	return nil
}

func TestMaintenanceHandler_Reset(t *testing.T) {
	hash, err := auth.HashResetKey("operator-secret")
	if err != nil {
		t.Fatalf("failed to hash key: %v", err)
	}

	tests := []struct {
		name       string
		keyHash    string
		resetKey   string
		wantStatus int
		wantBody   string
		wantCalls  int
	}{
		{
			name:       "valid key",
			keyHash:    hash,
			resetKey:   "operator-secret",
			wantStatus: http.StatusOK,
			wantBody:   "reset complete",
			wantCalls:  1,
		},
		{
			name:       "wrong key",
			keyHash:    hash,
			resetKey:   "guess",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid reset key",
		},
		{
			name:       "missing key",
			keyHash:    hash,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Reset key required",
		},
		{
			name:       "disabled when unconfigured",
			keyHash:    "",
			resetKey:   "operator-secret",
			wantStatus: http.StatusForbidden,
			wantBody:   "Reset is disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetter := &mockResetter{}
			handler := NewMaintenanceHandler(resetter, tt.keyHash)

			req := httptest.NewRequest(http.MethodPost, "/v1/reset", nil)
			if tt.resetKey != "" {
				req.Header.Set("X-Reset-Key", tt.resetKey)
			}
			rec := httptest.NewRecorder()
			handler.HandleReset(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
			if resetter.calls != tt.wantCalls {
				t.Errorf("ResetAll calls = %d, want %d", resetter.calls, tt.wantCalls)
			}
		})
	}
}

func TestMaintenanceHandler_ResetFailure(t *testing.T) {
	hash, err := auth.HashResetKey("operator-secret")
	if err != nil {
		t.Fatalf("failed to hash key: %v", err)
	}

	resetter := &mockResetter{
		resetAllFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}
	handler := NewMaintenanceHandler(resetter, hash)

	req := httptest.NewRequest(http.MethodPost, "/v1/reset", nil)
	req.Header.Set("X-Reset-Key", "operator-secret")
	rec := httptest.NewRecorder()
	handler.HandleReset(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestMaintenanceHandler_MethodNotAllowed(t *testing.T) {
	handler := NewMaintenanceHandler(&mockResetter{}, "some-hash")

	req := httptest.NewRequest(http.MethodGet, "/v1/reset", nil)
	rec := httptest.NewRecorder()
	handler.HandleReset(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
