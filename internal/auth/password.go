// internal/auth/password.go
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

type PasswordParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen uint32
}

// PasswordHasher derives and verifies argon2id digests. Verification is
// the one intentionally expensive step of a login attempt; comparison is
// constant-time.
type PasswordHasher struct {
	params PasswordParams
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{
		params: PasswordParams{
			time:    1,
			memory:  64 * 1024,
			threads: 4,
			keyLen:  32,
			saltLen: 16,
		},
	}
}

func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, p.params.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey(
		[]byte(password),
		salt,
		p.params.time,
		p.params.memory,
		p.params.threads,
		p.params.keyLen,
	)

	// Format: $argon2id$v=19$m=65536,t=1,p=4$salt$hash
	encoded := fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.params.memory,
		p.params.time,
		p.params.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// Verify reports whether password matches encodedHash. The digest's own
// parameters drive the comparison so hashes survive parameter upgrades.
func (p *PasswordHasher) Verify(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format")
	}

	var params PasswordParams
	_, err := fmt.Sscanf(
		parts[3],
		"m=%d,t=%d,p=%d",
		&params.memory,
		&params.time,
		&params.threads,
	)
	if err != nil {
		return false, fmt.Errorf("invalid hash format: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("invalid salt: %w", err)
	}

	decodedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("invalid hash: %w", err)
	}

	params.keyLen = uint32(len(decodedHash))

	comparisonHash := argon2.IDKey(
		[]byte(password),
		salt,
		params.time,
		params.memory,
		params.threads,
		params.keyLen,
	)

	return subtle.ConstantTimeCompare(decodedHash, comparisonHash) == 1, nil
}
