package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	companyID uuid.UUID
}

func (c *stubClaims) GetCompanyID() uuid.UUID { return c.companyID }

type stubValidator struct {
	companyID uuid.UUID
	err       error
}

func (v *stubValidator) ValidateToken(string) (CompanyIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{companyID: v.companyID}, nil
}

func TestAuth_ValidToken(t *testing.T) {
	companyID := uuid.New()
	var got uuid.UUID

	handler := Auth(&stubValidator{companyID: companyID})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetCompanyID(r)
		require.NoError(t, err)
		got = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, companyID, got)
}

func TestAuth_RejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no scheme", "some-token"},
		{"wrong scheme", "Basic some-token"},
		{"empty token", "Bearer "},
		{"extra parts", "Bearer a b"},
	}

	handler := Auth(&stubValidator{companyID: uuid.New()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	handler := Auth(&stubValidator{companyID: uuid.New()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer some-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	handler := Auth(&stubValidator{err: errors.New("bad token")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCompanyID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetCompanyID(req)
	assert.Error(t, err)
}
