package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fernet/fernet-go"

	custommiddleware "github.com/holdview/Holdings-View-Backend/internal/api/middleware"
)

// TestTokenAuth tests the session token gate.
//
// WHY: Every portfolio endpoint sits behind this middleware; a broken gate
// either locks everyone out or forwards unauthenticated requests upstream.
func TestTokenAuth(t *testing.T) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	var gotToken, gotSubject string
	handler := custommiddleware.TokenAuth(&key, time.Hour)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotToken = custommiddleware.TokenFromContext(r.Context())
			gotSubject = custommiddleware.SubjectFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

	t.Run("rejects a missing header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", recorder.Code)
		}
	})

	t.Run("rejects a non-bearer header", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", recorder.Code)
		}
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer not-a-fernet-token")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", recorder.Code)
		}
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		var otherKey fernet.Key
		if err := otherKey.Generate(); err != nil {
			t.Fatalf("Failed to generate key: %v", err)
		}
		token, err := fernet.EncryptAndSign([]byte("user-1"), &otherKey)
		if err != nil {
			t.Fatalf("Failed to sign token: %v", err)
		}
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer "+string(token))
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", recorder.Code)
		}
	})

	t.Run("passes a valid token and fills the context", func(t *testing.T) {
		token, err := fernet.EncryptAndSign([]byte("user-1"), &key)
		if err != nil {
			t.Fatalf("Failed to sign token: %v", err)
		}
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer "+string(token))
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		if recorder.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", recorder.Code)
		}
		if gotToken != string(token) {
			t.Error("Expected the raw token in the request context")
		}
		if gotSubject != "user-1" {
			t.Errorf("Expected subject user-1, got %q", gotSubject)
		}
	})
}

// TestContextAccessors tests the unauthenticated defaults.
func TestContextAccessors(t *testing.T) {
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	if got := custommiddleware.TokenFromContext(ctx); got != "" {
		t.Errorf("Expected empty token, got %q", got)
	}
	if got := custommiddleware.SubjectFromContext(ctx); got != "" {
		t.Errorf("Expected empty subject, got %q", got)
	}
}
