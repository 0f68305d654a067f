package ids

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const sessionPrefix = "FRM-"

// NewSessionID generates a form session ID in format FRM-{nanoid(21)}.
func NewSessionID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s", sessionPrefix, id), nil
}

// IsSessionID reports whether id has the shape produced by NewSessionID.
func IsSessionID(id string) bool {
	rest, ok := strings.CutPrefix(id, sessionPrefix)
	if !ok || len(rest) != 21 {
		return false
	}
	for _, r := range rest {
		if !strings.ContainsRune(nanoidAlphabet, r) {
			return false
		}
	}
	return true
}

const nanoidAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewRequestID returns a random UUID string.
func NewRequestID() string {
	return uuid.NewString()
}
