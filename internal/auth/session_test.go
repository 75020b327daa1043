package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionCookie extracts the session cookie from a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", SessionCookieName)
	return nil
}

func TestSession_AuthenticateThenFromRequest(t *testing.T) {
	m := NewSessionManager([]byte("test-secret"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Authenticate(rec, req))

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	authed := httptest.NewRequest(http.MethodGet, "/admin", nil)
	authed.AddCookie(cookie)
	assert.True(t, m.FromRequest(authed).Admin)
}

func TestSession_MissingCookieIsAnonymous(t *testing.T) {
	m := NewSessionManager([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	assert.False(t, m.FromRequest(req).Admin)
}

func TestSession_TamperedTokenIsAnonymous(t *testing.T) {
	m := NewSessionManager([]byte("test-secret"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Authenticate(rec, req))
	cookie := sessionCookie(t, rec)

	cookie.Value = cookie.Value + "x"
	tampered := httptest.NewRequest(http.MethodGet, "/admin", nil)
	tampered.AddCookie(cookie)
	assert.False(t, m.FromRequest(tampered).Admin)
}

func TestSession_WrongSigningKeyIsAnonymous(t *testing.T) {
	issuer := NewSessionManager([]byte("key-one"))
	verifier := NewSessionManager([]byte("key-two"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, issuer.Authenticate(rec, req))
	cookie := sessionCookie(t, rec)

	forged := httptest.NewRequest(http.MethodGet, "/admin", nil)
	forged.AddCookie(cookie)
	assert.False(t, verifier.FromRequest(forged).Admin)
}

func TestSession_ClearRemovesCookie(t *testing.T) {
	m := NewSessionManager([]byte("test-secret"))

	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
