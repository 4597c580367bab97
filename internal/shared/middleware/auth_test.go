package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubVerifier struct {
	userID string
	err    error
	calls  int
	token  string
}

func (v *stubVerifier) Verify(ctx context.Context, token string) (string, error) {
	v.calls++
	v.token = token
	if v.err != nil {
		return "", v.err
	}
	return v.userID, nil
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		verifier       *stubVerifier
		expectedStatus int
		expectedBody   string
		expectedUser   string
	}{
		{
			name:           "Valid Bearer Token",
			header:         "Bearer good-token",
			verifier:       &stubVerifier{userID: "user123"},
			expectedStatus: http.StatusOK,
			expectedUser:   "user123",
		},
		{
			name:           "Missing Header",
			header:         "",
			verifier:       &stubVerifier{userID: "user123"},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authentication required",
		},
		{
			name:           "No Bearer Prefix",
			header:         "Token abc",
			verifier:       &stubVerifier{userID: "user123"},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid authorization header format",
		},
		{
			name:           "Empty Token After Prefix",
			header:         "Bearer ",
			verifier:       &stubVerifier{userID: "user123"},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid authorization header format",
		},
		{
			name:           "Verification Failure",
			header:         "Bearer broken-token",
			verifier:       &stubVerifier{err: errors.New("token expired")},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = r.Context().Value(UserIDKey).(string)
				w.WriteHeader(http.StatusOK)
			})

			handler := Auth(tt.verifier)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}
			if tt.expectedBody != "" && !strings.Contains(rr.Body.String(), tt.expectedBody) {
				t.Errorf("body = %q, want it to contain %q", rr.Body.String(), tt.expectedBody)
			}
			if tt.expectedUser != "" && gotUser != tt.expectedUser {
				t.Errorf("user id in context = %q, want %q", gotUser, tt.expectedUser)
			}
		})
	}
}

func TestAuth_PassesRawToken(t *testing.T) {
	verifier := &stubVerifier{userID: "user123"}
	handler := Auth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer faketoken123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if verifier.calls != 1 {
		t.Fatalf("verifier called %d times, want 1", verifier.calls)
	}
	if verifier.token != "faketoken123" {
		t.Errorf("verifier received token %q, want %q", verifier.token, "faketoken123")
	}
}
