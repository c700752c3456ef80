package auth

import (
	"testing"
	"time"

	"openspace/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	tokens, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := tokens.Issue("user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL issues tokens that are already expired.
	svc := &jwtService{secret: []byte("test_secret"), ttl: -time.Minute}

	token, err := svc.Issue("user@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_WrongSecret(t *testing.T) {
	tokens, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := tokens.Issue("user@example.com")
	require.NoError(t, err)

	other := &jwtService{secret: []byte("a_completely_different_secret"), ttl: 30 * time.Minute}
	_, err = other.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenSignature))
}

func TestJWTService_MalformedToken(t *testing.T) {
	tokens, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, err = tokens.Verify("not-a-token")
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))

	_, err = tokens.Verify("")
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_MissingSubject(t *testing.T) {
	cfg := testConfig()
	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Sign a structurally valid token that carries no subject claim.
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey.JWT))
	require.NoError(t, err)

	_, err = tokens.Verify(raw)
	assert.True(t, errors.Is(err, service.ErrTokenMissingSubject))
}

func TestJWTService_RejectsNonHMACSigningMethod(t *testing.T) {
	cfg := testConfig()
	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	// alg=none tokens must never verify.
	claims := jwt.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.Verify(raw)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecretOutsideDev(t *testing.T) {
	cfg := testConfig()
	cfg.Env.Env = "production"
	cfg.SecretKey.JWT = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	// Dev environments fall back to a built-in secret.
	cfg.Env.Env = "dev"
	_, err = NewJWTService(cfg)
	assert.NoError(t, err)
}

func TestJWTService_SessionDuration(t *testing.T) {
	tokens, err := NewJWTService(testConfig())
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, tokens.SessionDuration())
}
