// internal/auth/password.go
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned when a stored password hash cannot be parsed.
var ErrMalformedHash = errors.New("malformed password hash")

const argon2Variant = "argon2id"

// Argon2Params are the argon2id cost settings used for new hashes. Every hash
// records the settings it was made with, so changing them never invalidates
// stored passwords.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

var DefaultArgon2Params = Argon2Params{
	Time:      1,
	MemoryKiB: 64 * 1024,
	Threads:   4,
	KeyLen:    32,
	SaltLen:   16,
}

type HasherOption func(*Argon2Params)

// WithArgon2Cost overrides the cost settings. Zero values keep the default.
func WithArgon2Cost(time, memoryKiB uint32, threads uint8) HasherOption {
	return func(p *Argon2Params) {
		if time > 0 {
			p.Time = time
		}
		if memoryKiB > 0 {
			p.MemoryKiB = memoryKiB
		}
		if threads > 0 {
			p.Threads = threads
		}
	}
}

// PasswordHasher hashes account passwords with argon2id.
type PasswordHasher struct {
	params Argon2Params
}

func NewPasswordHasher(opts ...HasherOption) *PasswordHasher {
	params := DefaultArgon2Params
	for _, opt := range opts {
		opt(&params)
	}
	return &PasswordHasher{params: params}
}

// Params returns the settings new hashes are made with.
func (p *PasswordHasher) Params() Argon2Params {
	return p.params
}

func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, p.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	h := encodedHash{params: p.params, salt: salt}
	h.key = h.derive(password)
	return h.String(), nil
}

// Verify reports whether password matches an encoded argon2id hash. Malformed
// hashes are an error, a wrong password is not.
func (p *PasswordHasher) Verify(password, encoded string) (bool, error) {
	h, err := parseEncodedHash(encoded)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(h.key, h.derive(password)) == 1, nil
}

// encodedHash is the PHC string form:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
type encodedHash struct {
	params Argon2Params
	salt   []byte
	key    []byte
}

func (h encodedHash) derive(password string) []byte {
	return argon2.IDKey([]byte(password), h.salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, h.params.KeyLen)
}

func (h encodedHash) String() string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Variant,
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(h.key),
	)
}

func parseEncodedHash(s string) (encodedHash, error) {
	var h encodedHash

	parts := strings.Split(s, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argon2Variant {
		return h, fmt.Errorf("%w: not an %s hash", ErrMalformedHash, argon2Variant)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return h, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return h, fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedHash, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.params.MemoryKiB, &h.params.Time, &h.params.Threads); err != nil {
		return h, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return h, fmt.Errorf("%w: salt: %w", ErrMalformedHash, err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return h, fmt.Errorf("%w: key: %w", ErrMalformedHash, err)
	}
	if len(h.key) == 0 {
		return h, fmt.Errorf("%w: empty key", ErrMalformedHash)
	}
	h.params.KeyLen = uint32(len(h.key))
	h.params.SaltLen = uint32(len(h.salt))
	return h, nil
}
