package logging

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// entropy feeds ULID generation. ULIDs only need uniqueness within one
// process, so math/rand seeded once is sufficient.
var (
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec // trace IDs are not security-sensitive
	entropyMu sync.Mutex
)

// newTraceID returns a lexicographically sortable unique trace ID.
func newTraceID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
