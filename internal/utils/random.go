package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID (16 hex characters)
func GenerateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS source is gone; fall back to a uuid slice
		return uuid.New().String()[:16]
	}
	return hex.EncodeToString(b)
}

// GenerateRunID generates the run identifier returned in invoke/batch metadata
func GenerateRunID() string {
	return uuid.New().String()
}
