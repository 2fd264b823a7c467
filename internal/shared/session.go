package shared

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity embedded in a session token. The session is
// stateless: expiry and tamper-evidence come entirely from the signature,
// the store is never consulted to validate a live token.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies cookie-carried session tokens.
type SessionManager struct {
	cookieName string
	secret     []byte
	ttl        time.Duration
	secure     bool
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(cookieName, secret string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		cookieName: cookieName,
		secret:     []byte(secret),
		ttl:        ttl,
		secure:     secure,
	}
}

// Issue signs a token for the given identity and sets it as the session cookie.
func (sm *SessionManager) Issue(w http.ResponseWriter, userID, email, role string) error {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sm.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sm.secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sm.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sm.ttl.Seconds()),
		HttpOnly: true,
		Secure:   sm.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Token extracts the raw session token from the request cookie.
// Returns ErrAuthRequired when no cookie is present.
func (sm *SessionManager) Token(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sm.cookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrAuthRequired
		}
		return "", err
	}
	return cookie.Value, nil
}

// Verify decodes and validates a raw token. Expired, malformed and
// badly-signed tokens all collapse to ErrInvalidSession.
func (sm *SessionManager) Verify(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return sm.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// Clear expires the session cookie with matching attributes.
func (sm *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sm.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sm.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TTL exposes the configured session lifetime.
func (sm *SessionManager) TTL() time.Duration {
	return sm.ttl
}

// CookieName returns the cookie identifier used for sessions.
func (sm *SessionManager) CookieName() string {
	return sm.cookieName
}
