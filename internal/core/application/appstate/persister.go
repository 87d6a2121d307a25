package appstate

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// SaveFunc writes one snapshot.
type SaveFunc func(ctx context.Context) error

// Persister runs saves in the background. Saves are coalesced per key: only
// the latest scheduled snapshot of a structure is written.
type Persister struct {
	mu      sync.Mutex
	pending map[ports.Key]SaveFunc

	// saving serialises batches so an older snapshot never overwrites a newer one.
	saving sync.Mutex

	wake   chan struct{}
	logger *slog.Logger
}

func NewPersister(logger *slog.Logger) *Persister {
	return &Persister{
		pending: make(map[ports.Key]SaveFunc),
		wake:    make(chan struct{}, 1),
		logger:  logger.With("component", "persister"),
	}
}

// Schedule queues save for key, replacing any save still pending for it.
// It never blocks.
func (p *Persister) Schedule(key ports.Key, save SaveFunc) {
	p.mu.Lock()
	p.pending[key] = save
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Run writes scheduled saves until ctx is cancelled.
func (p *Persister) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.wake:
			_ = p.Flush(ctx)
		}
	}
}

// Flush writes every pending save now.
func (p *Persister) Flush(ctx context.Context) error {
	p.saving.Lock()
	defer p.saving.Unlock()

	p.mu.Lock()
	batch := p.pending
	p.pending = make(map[ports.Key]SaveFunc)
	p.mu.Unlock()

	var failures []error
	for _, key := range ports.Keys() {
		save, ok := batch[key]
		if !ok {
			continue
		}
		if err := save(ctx); err != nil {
			err = errs.NewPersistenceUnavailableError(string(key), err)
			p.logger.WarnContext(ctx, "Save failed", "key", string(key), "error", err)
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
