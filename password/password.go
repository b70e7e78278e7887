// Package password hashes account secrets with argon2id.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Hasher is a one-way transform for secrets with a verify counterpart.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(encoded, secret string) (bool, error)
}

// ErrMalformedHash the encoded hash is not an argon2id PHC string.
var ErrMalformedHash = errors.New("malformed argon2id hash")

// Argon2 hashes with argon2id and encodes the result as
// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>.
type Argon2 struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// NewArgon2 returns a hasher with the usual interactive parameters.
func NewArgon2() *Argon2 {
	return &Argon2{
		Time:    3,
		Memory:  64 * 1024,
		Threads: 4,
		SaltLen: 16,
		KeyLen:  32,
	}
}

// Upper bounds accepted when verifying, stored hashes above them are malformed.
const (
	MaxMemory = 1 << 20 // KiB
	MaxTime   = 16
	MaxKeyLen = 1024
)

var b64 = base64.RawStdEncoding

// Hash derives a key from secret with a random salt.
func (a *Argon2) Hash(secret string) (string, error) {
	salt := make([]byte, a.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	key := argon2.IDKey([]byte(secret), salt, a.Time, a.Memory, a.Threads, a.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.Memory, a.Time, a.Threads, b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// Verify reports whether secret produced encoded. The parameters are read
// from encoded, so hashes made with other settings still verify.
func (a *Argon2) Verify(encoded, secret string) (bool, error) {
	p, err := decode(encoded)
	if err != nil {
		return false, err
	}
	key := argon2.IDKey([]byte(secret), p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(key, p.key) == 1, nil
}

type params struct {
	time    uint32
	memory  uint32
	threads uint8
	salt    []byte
	key     []byte
}

func decode(encoded string) (*params, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, ErrMalformedHash
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}
	p := &params{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	var err error
	if p.salt, err = b64.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	if p.key, err = b64.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("%w: key: %v", ErrMalformedHash, err)
	}
	if len(p.key) == 0 || p.time == 0 || p.threads == 0 {
		return nil, ErrMalformedHash
	}
	if p.memory > MaxMemory || p.time > MaxTime || len(p.key) > MaxKeyLen {
		return nil, fmt.Errorf("%w: m=%d,t=%d above limits", ErrMalformedHash, p.memory, p.time)
	}
	return p, nil
}
