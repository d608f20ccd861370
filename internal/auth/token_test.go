package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerifyToken(t *testing.T) {
	hash, err := HashToken("bt_deadbeef")
	if err != nil {
		t.Fatalf("HashToken: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash = %q", hash)
	}

	ok, err := VerifyToken("bt_deadbeef", hash)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if !ok {
		t.Error("correct token rejected")
	}

	ok, err = VerifyToken("bt_wrong", hash)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if ok {
		t.Error("wrong token accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, _ := HashToken("bt_deadbeef")
	h2, _ := HashToken("bt_deadbeef")
	if h1 == h2 {
		t.Error("hashes should differ per salt")
	}
}

func TestVerifyTokenBadHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"wrong parts", "$argon2id$v=19$m=65536"},
		{"wrong algo", "$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{"bad salt", "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyToken("bt_x", tt.hash); !errors.Is(err, ErrInvalidHash) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestVerifyTokenIncompatibleVersion(t *testing.T) {
	hash := "$argon2id$v=18$m=65536,t=3,p=4$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA"
	if _, err := VerifyToken("bt_x", hash); !errors.Is(err, ErrIncompatibleVersion) {
		t.Errorf("err = %v", err)
	}
}

func TestGenerateToken(t *testing.T) {
	tok, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if !strings.HasPrefix(tok.Plaintext, "bt_") || len(tok.Plaintext) != 3+32 {
		t.Errorf("plaintext = %q", tok.Plaintext)
	}
	ok, err := VerifyToken(tok.Plaintext, tok.Hash)
	if err != nil || !ok {
		t.Errorf("generated token does not verify: ok=%v err=%v", ok, err)
	}
}
