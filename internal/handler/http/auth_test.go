package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdash/airdash/internal/service"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/models"
)

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRegister_ReturnsBearerToken(t *testing.T) {
	auth := &mockAuthSvc{
		registerFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "resident", user.Login)
			user.UserID = 7
			return user, nil
		},
	}
	router := newTestRouter(t, auth, nil)

	rr := postJSON(router, "/api/auth/register", `{"login":"resident","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer stub-token", rr.Header().Get("Authorization"))
}

func TestRegister_Conflict(t *testing.T) {
	auth := &mockAuthSvc{
		registerFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	router := newTestRouter(t, auth, nil)

	rr := postJSON(router, "/api/auth/register", `{"login":"resident","password":"secret"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rr := postJSON(router, "/api/auth/register", "{broken")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_ReturnsBearerToken(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rr := postJSON(router, "/api/auth/login", `{"login":"resident","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer stub-token", rr.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthSvc{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	router := newTestRouter(t, auth, nil)

	rr := postJSON(router, "/api/auth/login", `{"login":"resident","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_MissingCredentials(t *testing.T) {
	auth := &mockAuthSvc{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	router := newTestRouter(t, auth, nil)

	rr := postJSON(router, "/api/auth/login", `{"login":"resident"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
