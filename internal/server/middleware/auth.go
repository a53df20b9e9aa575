// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// companyIDKey is the context key for storing the authenticated company ID.
const companyIDKey ContextKey = "companyID"

// TokenValidator is an interface for validating bearer tokens. It allows the
// middleware to work with any token service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (CompanyIDGetter, error)
}

// CompanyIDGetter extracts the company ID from token claims.
type CompanyIDGetter interface {
	GetCompanyID() uuid.UUID
}

// Auth creates middleware that validates bearer tokens and adds the caller's
// company ID to the request context.
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" is matched case-insensitively.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), companyIDKey, claims.GetCompanyID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCompanyID extracts the authenticated company ID from the request context.
func GetCompanyID(r *http.Request) (uuid.UUID, error) {
	companyID, ok := r.Context().Value(companyIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("company ID not found in request context")
	}
	return companyID, nil
}

// CompanyIDKey returns the context key for the company ID (for testing purposes).
func CompanyIDKey() ContextKey {
	return companyIDKey
}
