// Package report stamps pipeline results with unique ids for emission.
// Emission is serialization for a downstream consumer; nothing is stored.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/intentpipe/pkg/intent"
)

// Record is an emitted processing result.
type Record struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Result    *intent.Result `json:"result"`
}

// Builder mints monotonic ULIDs for records. A builder is not safe for
// concurrent use; give each goroutine its own.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a record builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Build stamps a result with a fresh id and timestamp.
func (b *Builder) Build(res *intent.Result) Record {
	now := time.Now()
	return Record{
		ID:        ulid.MustNew(ulid.Timestamp(now), b.entropy).String(),
		CreatedAt: now,
		Result:    res,
	}
}
