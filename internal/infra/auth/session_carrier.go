package auth

import (
	"net/http"
	"strings"
	"time"

	"openspace/config"
	"openspace/internal/domain/service"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "open_space_auth"

const bearerPrefix = "Bearer "

// SessionCarrier binds session tokens to the HTTP transport. Tokens travel
// in an HTTP-only cookie; a bearer Authorization header is accepted as well
// and takes precedence when both are present.
type SessionCarrier struct {
	ttl    time.Duration
	secure bool
}

// NewSessionCarrier is the constructor for SessionCarrier. The cookie
// lifetime matches the token lifetime, and the Secure flag is always set
// outside dev environments.
func NewSessionCarrier(cfg *config.Config, tokens service.TokenService) *SessionCarrier {
	return &SessionCarrier{
		ttl:    tokens.SessionDuration(),
		secure: !cfg.IsDev(),
	}
}

// Extract pulls a session token out of a request. The bearer header is
// tried first, then the session cookie. The second return value reports
// whether a token was found.
func (s *SessionCarrier) Extract(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		token := strings.TrimSpace(header[len(bearerPrefix):])
		if token != "" {
			return token, true
		}
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

// Cookie builds the session cookie carrying the given token.
func (s *SessionCarrier) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Clear builds a deletion directive for the session cookie. Because tokens
// are stateless, a copied token remains usable until its natural expiry.
func (s *SessionCarrier) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
