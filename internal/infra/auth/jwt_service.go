package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"openspace/config"
	"openspace/internal/domain/service"
	"openspace/internal/errors"
)

// devJWTSecret is only ever used in dev environments; the constructor
// refuses to start without a real secret anywhere else.
const devJWTSecret = "dev-only-secret"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are stateless: nothing is persisted, and a token stays valid until
// its expiry even after logout.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	secret := cfg.SecretKey.JWT
	if secret == "" {
		if !cfg.IsDev() {
			return nil, errors.New("jwt secret must be provided outside dev environments")
		}
		secret = devJWTSecret
	}

	ttl := cfg.Auth.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed HS256 token whose subject is the account's email.
func (s *jwtService) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks a token string and returns the subject email. Failures map
// onto the typed errors of the service package.
func (s *jwtService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", service.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return "", service.ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", service.ErrTokenMalformed
		default:
			return "", errors.Wrap(err, "verify token")
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", service.ErrTokenSignature
	}
	if claims.Subject == "" {
		return "", service.ErrTokenMissingSubject
	}

	return claims.Subject, nil
}

// SessionDuration returns the configured lifetime of a session token.
func (s *jwtService) SessionDuration() time.Duration {
	return s.ttl
}
