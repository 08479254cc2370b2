// Package id hands out concept ids.
package id

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/typedb/typedb-sub018/pkg/concept"
)

// Prefix starts every generated concept id.
const Prefix = "V"

// Generator hands out concept ids that are unique for its lifetime.
type Generator interface {
	Next() concept.ID
}

// ULIDGenerator generates ids from monotonic ULIDs, so ids generated in the
// same millisecond still sort in generation order.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

var _ Generator = (*ULIDGenerator)(nil)

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (g *ULIDGenerator) Next() concept.ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, err := ulid.New(ulid.Timestamp(g.now()), g.entropy)
	if err != nil {
		// the monotonic entropy overflowed within one millisecond
		v = ulid.Make()
	}
	return concept.ID(Prefix + v.String())
}

// Time returns the creation time encoded in an id made by ULIDGenerator.
func Time(id concept.ID) (time.Time, error) {
	s, ok := strings.CutPrefix(string(id), Prefix)
	if !ok {
		return time.Time{}, fmt.Errorf("concept id '%s' lacks the '%s' prefix", id, Prefix)
	}
	v, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("concept id '%s': %w", id, err)
	}
	return ulid.Time(v.Time()), nil
}

// IsGenerated reports whether id was made by ULIDGenerator.
func IsGenerated(id concept.ID) bool {
	_, err := Time(id)
	return err == nil
}

// SequenceGenerator generates V1, V2 and so on. Its ids are predictable and meant for tests.
type SequenceGenerator struct {
	last atomic.Uint64
}

var _ Generator = (*SequenceGenerator)(nil)

func (g *SequenceGenerator) Next() concept.ID {
	return concept.ID(Prefix + strconv.FormatUint(g.last.Add(1), 10))
}
