package security

import (
	"testing"

	"github.com/buyyourkawa/kawa-backend/pkg/config"
)

func fastParams() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestHashAndVerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", fastParams())
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}

	ok, err := VerifyPassword("s3cret", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected matching password to verify")
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch to fail verification")
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("s3cret", fastParams())
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	second, err := HashPassword("s3cret", fastParams())
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("s3cret", "not-an-encoded-hash"); err == nil {
		t.Fatalf("expected malformed hash to error")
	}
}
