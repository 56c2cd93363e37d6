package planner

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGen mints ids for generated plan items. Injected so tests can use a
// seeded sequential generator instead of shared counter state.
type IDGen func() string

// NewUUIDGen returns the production generator.
func NewUUIDGen() IDGen {
	return uuid.NewString
}

// NewSequenceGen returns a deterministic generator producing
// "<prefix>-1", "<prefix>-2", ...
func NewSequenceGen(prefix string) IDGen {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
