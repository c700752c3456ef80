package auth

import (
	"strings"
	"testing"
	"time"

	"openspace/config"
	"openspace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "dev"
	cfg.SecretKey.JWT = "test_jwt_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{
		Pepper:     "test-pepper",
		SessionTTL: 30 * time.Minute,
		Argon2: config.Argon2Config{
			// Cheap parameters to keep the tests fast.
			Memory:      8 * 1024,
			Iterations:  1,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		},
	}

	return cfg
}

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher, err := NewArgon2Hasher(testConfig())
	require.NoError(t, err)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
}

func TestArgon2Hasher_HashIsSalted(t *testing.T) {
	hasher, err := NewArgon2Hasher(testConfig())
	require.NoError(t, err)

	password := "StrongPass123!"
	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Two hashes of the same password differ but both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestArgon2Hasher_EmptyPassword(t *testing.T) {
	hasher, err := NewArgon2Hasher(testConfig())
	require.NoError(t, err)

	_, err = hasher.Hash("")
	assert.True(t, errors.Is(err, service.ErrEmptyPassword))
}

func TestArgon2Hasher_CheckNeverErrors(t *testing.T) {
	hasher, err := NewArgon2Hasher(testConfig())
	require.NoError(t, err)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123!", ""))
	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))
	assert.False(t, hasher.Check("StrongPass123!", "$argon2id$v=19$garbage"))
}

func TestArgon2Hasher_LegacyBcrypt(t *testing.T) {
	hasher, err := NewArgon2Hasher(testConfig())
	require.NoError(t, err)

	impl, ok := hasher.(*argon2Hasher)
	require.True(t, ok)

	// A hash produced by the previous bcrypt scheme, peppered the same way.
	password := "LegacyPass123!"
	legacy, err := bcrypt.GenerateFromPassword(impl.pepperPassword(password), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, string(legacy)))
	assert.False(t, hasher.Check("WrongPassword123!", string(legacy)))

	// Legacy hashes must be flagged for replacement on next login.
	assert.True(t, hasher.NeedsRehash(string(legacy)))
}

func TestArgon2Hasher_NeedsRehash(t *testing.T) {
	hasher, err := NewArgon2Hasher(testConfig())
	require.NoError(t, err)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	// Fresh hashes under the current policy pass.
	assert.False(t, hasher.NeedsRehash(hash))

	// Malformed values are flagged too.
	assert.True(t, hasher.NeedsRehash("invalid_hash"))

	// A hasher with stronger parameters flags the old hash.
	strongerCfg := testConfig()
	strongerCfg.Auth.Argon2.Iterations = 2
	stronger, err := NewArgon2Hasher(strongerCfg)
	require.NoError(t, err)
	assert.True(t, stronger.NeedsRehash(hash))
	assert.True(t, stronger.Check("StrongPass123!", hash))
}

func TestArgon2Hasher_PepperChangesHash(t *testing.T) {
	cfg := testConfig()
	hasher, err := NewArgon2Hasher(cfg)
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.Auth.Pepper = "another-pepper"
	other, err := NewArgon2Hasher(otherCfg)
	require.NoError(t, err)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	// A hasher with a different pepper cannot verify the hash.
	assert.False(t, other.Check("StrongPass123!", hash))
}

func TestNewArgon2Hasher_RequiresPepperOutsideDev(t *testing.T) {
	cfg := testConfig()
	cfg.Env.Env = "production"
	cfg.Auth.Pepper = ""

	_, err := NewArgon2Hasher(cfg)
	assert.Error(t, err)

	// Dev environments fall back to a built-in pepper.
	cfg.Env.Env = "dev"
	_, err = NewArgon2Hasher(cfg)
	assert.NoError(t, err)
}
