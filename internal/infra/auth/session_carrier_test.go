package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCarrier(t *testing.T, env string) *SessionCarrier {
	t.Helper()

	cfg := testConfig()
	cfg.Env.Env = env
	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	return NewSessionCarrier(cfg, tokens)
}

func TestSessionCarrier_ExtractPrefersBearerHeader(t *testing.T) {
	carrier := newCarrier(t, "dev")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

	token, ok := carrier.Extract(req)
	assert.True(t, ok)
	assert.Equal(t, "header-token", token)
}

func TestSessionCarrier_ExtractFallsBackToCookie(t *testing.T) {
	carrier := newCarrier(t, "dev")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

	token, ok := carrier.Extract(req)
	assert.True(t, ok)
	assert.Equal(t, "cookie-token", token)
}

func TestSessionCarrier_ExtractNoToken(t *testing.T) {
	carrier := newCarrier(t, "dev")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := carrier.Extract(req)
	assert.False(t, ok)

	// A non-bearer Authorization header does not count.
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, ok = carrier.Extract(req)
	assert.False(t, ok)
}

func TestSessionCarrier_CookieAttributes(t *testing.T) {
	carrier := newCarrier(t, "dev")

	cookie := carrier.Cookie("some-token")
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 1800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestSessionCarrier_CookieSecureOutsideDev(t *testing.T) {
	carrier := newCarrier(t, "production")

	assert.True(t, carrier.Cookie("some-token").Secure)
	assert.True(t, carrier.Clear().Secure)
}

func TestSessionCarrier_Clear(t *testing.T) {
	carrier := newCarrier(t, "dev")

	cookie := carrier.Clear()
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}
