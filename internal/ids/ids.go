// Package ids provides an injectable generator of opaque, collision-free
// identifiers for items, commits, and blobs.
package ids

import "github.com/google/uuid"

// Generator produces a fresh opaque identifier on every call.
type Generator interface {
	New() string
}

// UUIDGenerator is the default Generator, backed by google/uuid.
type UUIDGenerator struct{}

// New returns a fresh UUIDv4 string.
func (UUIDGenerator) New() string { return uuid.NewString() }
