// Package ids generates the opaque identifiers given to fragment instances.
package ids

import (
	"crypto/rand"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid"
)

// ID identifies a fragment instance for its lifetime. The empty ID means "none".
type ID string

// Generator hands out identifiers that are unique for the life of the process.
type Generator interface {
	Next() ID
}

// Default is the process-wide generator used when no other is configured.
var Default Generator = NewSequence("f")

// Sequence is a monotonic counter. Safe for concurrent use.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

// NewSequence creates a counter whose ids carry the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) Next() ID {
	return ID(s.prefix + strconv.FormatUint(s.n.Add(1), 10))
}

// ULID produces lexically sortable ids from a monotonic entropy source.
type ULID struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

// NewULID creates a ULID generator seeded from crypto/rand.
func NewULID() *ULID {
	return &ULID{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (u *ULID) Next() ID {
	u.mu.Lock()
	defer u.mu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(u.now()), u.entropy).String())
}
