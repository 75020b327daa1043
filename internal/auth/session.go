// ABOUTME: Session gate for the admin back office
// ABOUTME: Client-held HS256 JWT cookie carrying an admin flag, no server state

package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the name of the session cookie
const SessionCookieName = "portfolio_session"

// SessionDuration is how long an admin session stays valid
const SessionDuration = 24 * time.Hour

// Session errors
var (
	ErrInvalidSession = errors.New("invalid session")
	ErrExpiredSession = errors.New("session expired")
)

// Session is the per-request authentication state decoded from the client
// token. The zero value is an anonymous session.
type Session struct {
	Admin bool
}

// SessionManager signs and verifies session tokens. The signing secret is
// process-wide configuration; all state lives in the client's cookie.
type SessionManager struct {
	secret []byte
}

// NewSessionManager creates a session manager with the given signing secret.
func NewSessionManager(secret []byte) *SessionManager {
	return &SessionManager{secret: secret}
}

// FromRequest decodes and verifies the session cookie on the request. A
// missing, malformed, expired or badly signed cookie yields an anonymous
// session; callers never see an error for those cases because an attacker
// holding a bad token must be indistinguishable from a visitor with none.
func (m *SessionManager) FromRequest(r *http.Request) Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return Session{}
	}

	sess, err := m.verify(cookie.Value)
	if err != nil {
		return Session{}
	}
	return sess
}

// Authenticate marks the client as an authenticated admin by setting a signed
// session cookie. Called only after successful credential verification.
func (m *SessionManager) Authenticate(w http.ResponseWriter, r *http.Request) error {
	token, err := m.generate(SessionDuration)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(SessionDuration),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the session cookie. Safe to call for anonymous clients.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// verify validates the token signature and expiry and decodes the admin claim
func (m *SessionManager) verify(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrExpiredSession
		}
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	if !token.Valid {
		return Session{}, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidSession
	}

	admin, _ := claims["admin"].(bool)
	return Session{Admin: admin}, nil
}

// generate creates a signed session token with the admin flag set
func (m *SessionManager) generate(expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin": true,
		"iat":   now.Unix(),
		"exp":   now.Add(expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}
