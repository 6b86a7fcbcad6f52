package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t, nil)

	w, cookie := env.login(t, "guessing")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, cookie, "no session cookie on a failed login")
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newTestEnv(t, nil)

	w, cookie := env.login(t, "hunter2")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(httptest.NewRequest(http.MethodGet, "/auth/me", nil), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCookieSkipsLoginFormOnReload(t *testing.T) {
	env := newTestEnv(t, nil)
	_, cookie := env.login(t, "hunter2")
	require.NotNil(t, cookie)

	w := env.do(httptest.NewRequest(http.MethodGet, "/auth/me", nil), cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutEndsTheSession(t *testing.T) {
	env := newTestEnv(t, nil)
	_, cookie := env.login(t, "hunter2")
	require.NotNil(t, cookie)

	w := env.do(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), cookie)
	require.Equal(t, http.StatusOK, w.Code)

	// The old token still parses but its session is gone.
	w = env.do(httptest.NewRequest(http.MethodGet, "/auth/me", nil), cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
