package store

import "github.com/google/uuid"

// IDGenerator mints ids for reviews and admin-created products. It is
// injected into the store so tests can supply a deterministic sequence.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
