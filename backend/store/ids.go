package store

import (
	"time"

	"github.com/google/uuid"
)

// newID returns a prefixed unique ID, e.g. "order-6ba7b810-...".
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
