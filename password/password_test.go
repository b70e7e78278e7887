package password

import (
	"errors"
	"strings"
	"testing"
)

// fast keeps the tests quick, the encoding is the same.
func fast() *Argon2 {
	return &Argon2{Time: 1, Memory: 1024, Threads: 1, SaltLen: 16, KeyLen: 32}
}

func TestHashVerify(t *testing.T) {
	h := fast()
	encoded, err := h.Hash("chess456")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$") {
		t.Errorf("unexpected encoding %s", encoded)
	}
	ok, err := h.Verify(encoded, "chess456")
	if err != nil || !ok {
		t.Fatalf("expected the secret to verify, got %v %v", ok, err)
	}
	ok, err = h.Verify(encoded, "chess457")
	if err != nil || ok {
		t.Fatalf("expected a wrong secret to fail, got %v %v", ok, err)
	}
}

func TestSaltedHashes(t *testing.T) {
	h := fast()
	a, _ := h.Hash("art123")
	b, _ := h.Hash("art123")
	if a == b {
		t.Error("expected different salts to give different hashes")
	}
}

func TestVerifyReadsParameters(t *testing.T) {
	encoded, err := fast().Hash("admin789")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := NewArgon2().Verify(encoded, "admin789")
	if err != nil || !ok {
		t.Fatalf("expected verify with other defaults to succeed, got %v %v", ok, err)
	}
}

func TestMalformed(t *testing.T) {
	tests := []string{
		"",
		"plain-text",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdHNhbHQ$a2V5",
		"$argon2id$v=16$m=1024,t=1,p=1$c2FsdHNhbHQ$a2V5",
		"$argon2id$v=19$m=1024$c2FsdHNhbHQ$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$not base64!$a2V5",
		"$argon2id$v=19$m=1024,t=0,p=1$c2FsdHNhbHQ$a2V5",
		"$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHQ$a2V5",
		"$argon2id$v=19$m=1024,t=4294967295,p=1$c2FsdHNhbHQ$a2V5",
	}
	for _, encoded := range tests {
		t.Run(encoded, func(t *testing.T) {
			_, err := fast().Verify(encoded, "x")
			if !errors.Is(err, ErrMalformedHash) {
				t.Errorf("expected ErrMalformedHash, got %v", err)
			}
		})
	}
}
