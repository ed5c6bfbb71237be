package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword generates a PHC-format Argon2id hash string including
// the salt and parameters. Every call draws a fresh random salt, so
// hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword compares a plaintext password against a PHC-style
// Argon2id hash. The final comparison is constant-time.
func VerifyPassword(password, encodedHash string) error {
	// PHC layout: $argon2id$v=19$m=X,t=Y,p=Z$salt$hash
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("cryptox: invalid hash format")
	}
	if parts[1] != "argon2id" || parts[2] != "v=19" {
		return errors.New("cryptox: unsupported hash variant")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("cryptox: invalid hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("cryptox: invalid salt encoding: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("cryptox: invalid hash encoding: %w", err)
	}

	got := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iters,
		mem,
		par,
		uint32(len(want)), // #nosec G115 - hash lengths are tiny
	)

	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}
	return nil
}
