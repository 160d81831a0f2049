package pure

import (
	"time"

	"github.com/on-the-ground/memo_ive_go/internal/memolog"
)

// table is the keyed lookup-or-compute store shared by every memo shape.
// It is not safe for concurrent use.
type table[K comparable, O any] struct {
	entries  map[K]O
	sizeHint int
	log      *memolog.Logger

	hits, misses, failures uint64
	since                  time.Time
}

func newTable[K comparable, O any](cfg config) *table[K, O] {
	return &table[K, O]{
		entries:  make(map[K]O, cfg.sizeHint),
		sizeHint: cfg.sizeHint,
		log:      memolog.New(cfg.logger, cfg.name),
		since:    cfg.now(),
	}
}

// lookupOrCompute returns the cached output for key, or computes, stores and
// returns it. A panic in compute leaves the table untouched.
func (t *table[K, O]) lookupOrCompute(key K, compute func() O) O {
	if v, ok := t.entries[key]; ok {
		t.hits++
		t.log.Hit(key)
		return v
	}
	t.misses++
	t.log.Miss(key)

	// compute may re-enter with the same key; the last store wins.
	v := compute()
	t.entries[key] = v
	t.log.Stored(key)
	return v
}

// lookupOrTry is lookupOrCompute for fallible computations. Errors are
// returned as-is and never stored.
func (t *table[K, O]) lookupOrTry(key K, try func() (O, error)) (O, error) {
	if v, ok := t.entries[key]; ok {
		t.hits++
		t.log.Hit(key)
		return v, nil
	}
	t.misses++
	t.log.Miss(key)

	v, err := try()
	if err != nil {
		t.failures++
		t.log.Failed(key, err)
		var zero O
		return zero, err
	}
	t.entries[key] = v
	t.log.Stored(key)
	return v, nil
}

// reset drops every entry and restarts the statistics window.
func (t *table[K, O]) reset(now time.Time) {
	dropped := len(t.entries)
	t.entries = make(map[K]O, t.sizeHint)
	t.hits, t.misses, t.failures = 0, 0, 0
	t.since = now
	t.log.Cleared(dropped)
}

func (t *table[K, O]) len() int {
	return len(t.entries)
}

func (t *table[K, O]) stats(now time.Time) Stats {
	return Stats{
		Hits:     t.hits,
		Misses:   t.misses,
		Failures: t.failures,
		Entries:  len(t.entries),
		Window:   newTimeSpan(t.since, now),
	}
}
