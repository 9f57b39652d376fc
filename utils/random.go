package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"path"
	"time"
)

const designKeyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateDesignKey returns a random external-facing design key.
func GenerateDesignKey(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid key length: %d", length)
	}
	key := make([]byte, length)
	max := big.NewInt(int64(len(designKeyAlphabet)))
	for i := range key {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate design key: %w", err)
		}
		key[i] = designKeyAlphabet[n.Int64()]
	}
	return string(key), nil
}

// GenerateStoragePath derives an unguessable object key under prefix,
// partitioned by UTC date. The key is never derived from user input.
func GenerateStoragePath(prefix string, now time.Time) (string, error) {
	suffix := make([]byte, 16)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate storage path: %w", err)
	}
	datePath := now.UTC().Format("2006/01/02")
	return path.Join(prefix, datePath, hex.EncodeToString(suffix)), nil
}
