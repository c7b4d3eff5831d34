package callback

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/google/uuid"
)

// NewState returns an unguessable state parameter for a single
// authorization attempt.
func NewState() string {
	return uuid.New().String()
}

// stateHash is the storage key for a state parameter. Flows are stored
// against the hash, never the raw state.
func stateHash(state string) string {
	hash := sha256.Sum256([]byte(state))
	return base64.URLEncoding.EncodeToString(hash[:])
}
