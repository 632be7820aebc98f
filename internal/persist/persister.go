package persist

import (
	"context"
	"courtside/internal/terminal"
	"courtside/pkg/logging"
	"errors"
	"sync"
	"time"
)

const subsystem = "Persist"

// DefaultDebounce coalesces bursts of mutations (panel resizing, rapid
// watchlist edits) into one write.
const DefaultDebounce = 250 * time.Millisecond

// Persister writes the persisted slice of a terminal.State to a Store after
// every change that touches it. A zero debounce writes synchronously.
type Persister struct {
	store    Store
	state    *terminal.State
	debounce time.Duration

	// saveMu is held for the whole of a write, so Flush waits for a timer
	// write that is already running.
	saveMu sync.Mutex

	mu          sync.Mutex
	timer       *time.Timer
	pending     bool
	closed      bool
	unsubscribe func()
	lastErr     error
}

// NewPersister subscribes to state. Call Close to flush and detach.
func NewPersister(store Store, state *terminal.State, debounce time.Duration) *Persister {
	p := &Persister{store: store, state: state, debounce: debounce}
	p.unsubscribe = state.Subscribe(p.onChange)
	return p
}

func (p *Persister) onChange(c terminal.Change) {
	if !c.Persisted() {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	if p.debounce <= 0 {
		p.mu.Unlock()
		p.saveMu.Lock()
		defer p.saveMu.Unlock()
		p.save(context.Background())
		return
	}
	p.pending = true
	if p.timer == nil {
		p.timer = time.AfterFunc(p.debounce, p.fire)
	} else {
		p.timer.Reset(p.debounce)
	}
	p.mu.Unlock()
}

func (p *Persister) fire() {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	p.mu.Lock()
	if !p.pending {
		p.mu.Unlock()
		return
	}
	p.pending = false
	p.mu.Unlock()
	p.save(context.Background())
}

// save writes the current snapshot. Caller holds saveMu.
func (p *Persister) save(ctx context.Context) error {
	data, err := terminal.Encode(p.state.Snapshot())
	if err == nil {
		err = p.store.Save(ctx, terminal.StorageKey, data)
	}

	p.mu.Lock()
	p.lastErr = err
	p.mu.Unlock()

	if err != nil {
		logging.Error(subsystem, err, "Failed to save terminal state")
		return err
	}
	logging.Debug(subsystem, "Saved terminal state (%d bytes)", len(data))
	return nil
}

// Flush writes any pending change immediately. A write already in progress
// completes before Flush returns.
func (p *Persister) Flush(ctx context.Context) error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	p.mu.Lock()
	pending := p.pending
	p.pending = false
	if p.timer != nil {
		p.timer.Stop()
	}
	p.mu.Unlock()

	if !pending {
		return nil
	}
	return p.save(ctx)
}

// Err returns the error from the most recent save, if any.
func (p *Persister) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Close flushes pending changes and stops listening. It does not close the
// underlying Store.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.unsubscribe()
	return p.Flush(ctx)
}

// LoadInto restores state from store. A missing, corrupt or too-new record
// leaves state at its defaults; only store I/O failures are returned.
func LoadInto(ctx context.Context, store Store, state *terminal.State) error {
	data, err := store.Load(ctx, terminal.StorageKey)
	if errors.Is(err, ErrNotFound) {
		logging.Debug(subsystem, "No saved terminal state, using defaults")
		return nil
	}
	if err != nil {
		return err
	}

	snap, err := terminal.Decode(data)
	if err != nil {
		logging.Warn(subsystem, "Ignoring saved terminal state: %v", err)
		return nil
	}
	state.Restore(snap)
	logging.Info(subsystem, "Restored terminal state (%d watchlist entries)", len(snap.Watchlist))
	return nil
}
