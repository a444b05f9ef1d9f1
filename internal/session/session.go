package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// cookieName is the session cookie set after login or registration.
const cookieName = "stockdesk_session"

// ErrNoSession is returned when the request carries no usable session.
var ErrNoSession = errors.New("no session")

// Session is the authenticated state persisted between requests: the bearer
// token issued by the backend plus the identity it belongs to. There is no
// client-side expiry tracking beyond the cookie itself; a token the backend
// no longer accepts surfaces as an unauthorized API error.
type Session struct {
	Token    string
	Username string
	Role     string
}

type claims struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs sessions into an HttpOnly cookie and reads them back.
// It is injected into the web layer rather than read from globals, so
// handlers and tests can swap it freely.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a session manager signing with the given secret.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the session and sets it as the session cookie.
func (m *Manager) Issue(w http.ResponseWriter, s Session) error {
	now := time.Now()
	c := claims{
		Token:    s.Token,
		Username: s.Username,
		Role:     s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("signing session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// Get reads and validates the session cookie. It returns ErrNoSession when
// the cookie is absent, expired, or fails validation.
func (m *Manager) Get(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrNoSession
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, ErrNoSession
	}

	return &Session{Token: c.Token, Username: c.Username, Role: c.Role}, nil
}

// Clear removes the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
