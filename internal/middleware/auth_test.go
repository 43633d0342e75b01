package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sayemas-kitchen/api/internal/auth"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if claims := ClaimsFromContext(r.Context()); claims == nil || claims.Role != auth.RoleStaff {
			t.Error("claims missing from request context")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.RoleStaff)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var called bool
	h := Authenticate(testSecret)(protectedHandler(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if !called {
		t.Error("next handler not invoked")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"malformed", "Bearer"},
		{"bad token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			h := Authenticate(testSecret)(protectedHandler(t, &called))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if called {
				t.Error("next handler invoked without valid credentials")
			}
			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rr.Code)
			}
		})
	}
}
