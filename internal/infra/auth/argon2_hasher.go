// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"openspace/config"
	"openspace/internal/domain/service"
	"openspace/internal/errors"
)

const argon2Prefix = "$argon2id$"

// devPepper is only ever used in dev environments; the constructor refuses
// to start without a real pepper anywhere else.
const devPepper = "dev-only-pepper"

// Default argon2id cost parameters, applied when the config leaves them zero.
const (
	defaultArgon2Memory      = 64 * 1024
	defaultArgon2Iterations  = 3
	defaultArgon2Parallelism = 4
	defaultArgon2SaltLength  = 16
	defaultArgon2KeyLength   = 32
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using peppered argon2id. It still verifies legacy bcrypt hashes so that
// accounts created before the migration can log in; NeedsRehash flags those
// for replacement.
type argon2Hasher struct {
	pepper      []byte
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// A missing pepper is a startup error outside dev, not a first-use error.
func NewArgon2Hasher(cfg *config.Config) (service.PasswordHasher, error) {
	pepper := cfg.Auth.Pepper
	if pepper == "" {
		if !cfg.IsDev() {
			return nil, errors.New("hashing pepper must be provided outside dev environments")
		}
		pepper = devPepper
	}

	params := cfg.Auth.Argon2
	if params.Memory == 0 {
		params.Memory = defaultArgon2Memory
	}
	if params.Iterations == 0 {
		params.Iterations = defaultArgon2Iterations
	}
	if params.Parallelism == 0 {
		params.Parallelism = defaultArgon2Parallelism
	}
	if params.SaltLength == 0 {
		params.SaltLength = defaultArgon2SaltLength
	}
	if params.KeyLength == 0 {
		params.KeyLength = defaultArgon2KeyLength
	}

	return &argon2Hasher{
		pepper:      []byte(pepper),
		memory:      params.Memory,
		iterations:  params.Iterations,
		parallelism: params.Parallelism,
		saltLength:  params.SaltLength,
		keyLength:   params.KeyLength,
	}, nil
}

// Hash generates a salted argon2id hash of the peppered password, encoded
// in the standard PHC string format.
func (h *argon2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", service.ErrEmptyPassword
	}

	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}

	key := argon2.IDKey(h.pepperPassword(password), salt, h.iterations, h.memory, h.parallelism, h.keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.iterations, h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Check compares a plaintext password with a stored hash. Malformed or
// unrecognized hashes never cause an error, only a failed match.
func (h *argon2Hasher) Check(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	peppered := h.pepperPassword(password)

	switch {
	case strings.HasPrefix(hash, argon2Prefix):
		memory, iterations, parallelism, salt, key, err := decodeArgon2Hash(hash)
		if err != nil {
			return false
		}
		computed := argon2.IDKey(peppered, salt, iterations, memory, parallelism, uint32(len(key)))

		return subtle.ConstantTimeCompare(computed, key) == 1

	case strings.HasPrefix(hash, "$2"):
		// Legacy bcrypt hash from before the argon2id migration.
		return bcrypt.CompareHashAndPassword([]byte(hash), peppered) == nil

	default:
		return false
	}
}

// NeedsRehash reports whether the stored hash should be replaced with a
// fresh one under the current policy. Legacy bcrypt hashes always qualify.
func (h *argon2Hasher) NeedsRehash(hash string) bool {
	if !strings.HasPrefix(hash, argon2Prefix) {
		return true
	}

	memory, iterations, parallelism, _, key, err := decodeArgon2Hash(hash)
	if err != nil {
		return true
	}

	return memory != h.memory ||
		iterations != h.iterations ||
		parallelism != h.parallelism ||
		uint32(len(key)) != h.keyLength
}

// pepperPassword mixes the server-side pepper into the password with
// HMAC-SHA256. The digest is base64-encoded so the result stays within
// bcrypt's input limits and contains no NUL bytes.
func (h *argon2Hasher) pepperPassword(password string) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))
	sum := mac.Sum(nil)

	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum)

	return out
}

// decodeArgon2Hash splits a PHC-formatted argon2id string into its
// parameters, salt and derived key.
func decodeArgon2Hash(hash string) (memory, iterations uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("not an argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "parse version")
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "parse parameters")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "decode salt")
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "decode key")
	}

	return memory, iterations, parallelism, salt, key, nil
}
