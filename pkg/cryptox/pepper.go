package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
)

// Argon2id parameters (RFC 9106 low-memory profile).
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

var (
	// Pepper is loaded from a file on first use, generated if absent.
	pepper     string
	pepperFile string
)

// SetPepperPath configures where the pepper file lives. Call once at
// startup before any hashing happens.
func SetPepperPath(file string) {
	pepperFile = file
}

func GetPepper() string {
	if pepper != "" {
		return pepper
	}

	var err error
	pepper, err = loadOrGeneratePepper()
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}

	return pepper
}

// loadOrGeneratePepper loads the pepper from its file, generating and
// persisting a fresh one on first boot.
func loadOrGeneratePepper() (string, error) {
	pepperFile = filepath.Clean(pepperFile)
	if err := os.MkdirAll(filepath.Dir(pepperFile), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(pepperFile); os.IsNotExist(err) {
		raw := make([]byte, keyLength)
		if _, err := rand.Read(raw); err != nil {
			return "", err
		}
		generated := base64.RawURLEncoding.EncodeToString(raw)

		if err := os.WriteFile(pepperFile, []byte(generated), 0600); err != nil {
			return "", err
		}
		return generated, nil
	}

	data, err := os.ReadFile(pepperFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
