package schema

import (
	"time"

	"github.com/google/uuid"
)

// newUUIDv7 keeps externally visible ids sortable by creation time.
func newUUIDv7() uuid.UUID {
	u, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return u
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
