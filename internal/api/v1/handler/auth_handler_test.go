package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMux(t *testing.T, svc service.UserService) *http.ServeMux {
	t.Helper()
	h := NewAuthHandler(svc, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	svc := &stubUserService{
		signupFn: func(_ context.Context, email, password string) (*model.User, string, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "hunter22", password)
			return &model.User{ID: "u-1", Email: "alice@example.com"}, "tok-123", nil
		},
	}
	mux := newAuthMux(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"email":"alice@example.com","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok-123", resp.Token)
	assert.Equal(t, "u-1", resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.False(t, resp.User.Premium)
}

func TestSignup_MissingFields(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, &stubUserService{
		signupFn: func(context.Context, string, string) (*model.User, string, error) {
			t.Fatal("service must not be called for invalid input")
			return nil, "", nil
		},
	})

	for _, body := range []string{`{}`, `{"email":"alice@example.com"}`, `{"password":"x"}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, &stubUserService{
		signupFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", service.ErrEmailTaken
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"email":"alice@example.com","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, &stubUserService{
		loginFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", service.ErrInvalidCredentials
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, &stubUserService{
		loginFn: func(context.Context, string, string) (*model.User, string, error) {
			return &model.User{ID: "u-1", Email: "alice@example.com", Premium: true}, "tok-456", nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok-456", resp.Token)
	assert.True(t, resp.User.Premium)
}

func TestAuthEndpoints_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	mux := newAuthMux(t, &stubUserService{})
	for _, path := range []string{"/auth/signup", "/auth/login"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "path %s", path)
	}
}
