package memory

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID-based IDs for drafts, pending entities and
// backend records.
type ULIDGenerator struct {
	prefix string
}

// NewULIDGenerator creates a new ULIDGenerator. Generated ids start with prefix.
func NewULIDGenerator(prefix string) *ULIDGenerator {
	return &ULIDGenerator{prefix: prefix}
}

// Generate returns a new id. Ids are monotonic within the process.
func (g *ULIDGenerator) Generate() string {
	return g.prefix + ulid.Make().String()
}
