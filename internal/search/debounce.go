// Package search holds the storefront's search-as-you-type support:
// debounced suggestions and per-user recent searches.
package search

import (
	"context"
	"sync"
	"time"

	errx "github.com/seasonal-storefront/server/internal/core/error"
)

// Debouncer delays work per key and lets only the latest call for a key
// complete. Older calls have their context cancelled and report
// errx.ErrSuperseded.
type Debouncer struct {
	wait time.Duration

	mu    sync.Mutex
	seq   uint64
	calls map[string]*pending
}

type pending struct {
	seq    uint64
	cancel context.CancelFunc
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait, calls: make(map[string]*pending)}
}

// Do waits out the debounce window and then runs fn, unless a newer call for
// the same key arrives first.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	seq := d.start(key, cancel)
	defer d.finish(key, seq, cancel)

	if d.wait > 0 {
		timer := time.NewTimer(d.wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			if !d.current(key, seq) {
				return errx.ErrSuperseded
			}
			return ctx.Err()
		case <-timer.C:
		}
	}
	if !d.current(key, seq) {
		return errx.ErrSuperseded
	}

	err := fn(ctx)
	if !d.current(key, seq) {
		return errx.ErrSuperseded
	}
	return err
}

// Pending reports how many keys have a call in flight.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

func (d *Debouncer) start(key string, cancel context.CancelFunc) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.calls[key]; ok {
		prev.cancel()
	}
	d.seq++
	d.calls[key] = &pending{seq: d.seq, cancel: cancel}
	return d.seq
}

func (d *Debouncer) finish(key string, seq uint64, cancel context.CancelFunc) {
	cancel()
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.calls[key]; ok && p.seq == seq {
		delete(d.calls, key)
	}
}

func (d *Debouncer) current(key string, seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.calls[key]
	return ok && p.seq == seq
}
