package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/archive"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// CompletionArchive guards the archive aggregate and stamps completion times.
type CompletionArchive struct {
	mu        sync.Mutex
	archive   *archive.Archive
	loc       *time.Location
	clock     kernel.Clock
	listeners broadcaster[[]archive.Record]
	recorded  broadcaster[archive.Record]
	logger    *slog.Logger
}

// NewCompletionArchive wraps a. Day keys are computed in loc.
func NewCompletionArchive(
	a *archive.Archive,
	loc *time.Location,
	clock kernel.Clock,
	logger *slog.Logger,
) *CompletionArchive {
	if a == nil {
		a = archive.New(nil)
	}
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = kernel.SystemClock
	}
	return &CompletionArchive{
		archive: a,
		loc:     loc,
		clock:   clock,
		logger:  logger.With("component", "completion_archive"),
	}
}

// Subscribe registers l for snapshots after every mutation.
func (c *CompletionArchive) Subscribe(l Listener[[]archive.Record]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners.add(l)
}

// SubscribeRecorded registers l for every newly archived record.
func (c *CompletionArchive) SubscribeRecorded(l Listener[archive.Record]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recorded.add(l)
}

// Revision changes after every mutation.
func (c *CompletionArchive) Revision() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listeners.revision
}

// Restore replaces the records with reloaded ones unless the archive was
// mutated after revision was read.
func (c *CompletionArchive) Restore(ctx context.Context, records []archive.Record, revision uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listeners.revision != revision {
		return false
	}
	c.archive = archive.New(records)
	c.listeners.notify(ctx, c.archive.Records())
	return true
}

// Archive records o as completed now. A second call for the same id is
// ignored and reports false.
func (c *CompletionArchive) Archive(ctx context.Context, o *order.Order) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	added, err := c.archive.Record(o, c.clock())
	if err != nil || !added {
		return added, err
	}
	c.logger.InfoContext(ctx, "Order archived", "order_id", o.ID(), "total", o.Total().String())
	records := c.archive.Records()
	c.recorded.notify(ctx, records[0])
	c.listeners.notify(ctx, records)
	return true, nil
}

// Records returns all records, newest completion first.
func (c *CompletionArchive) Records() []archive.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.archive.Records()
}

// GroupedByDay returns records grouped by local day, newest day first.
func (c *CompletionArchive) GroupedByDay() []archive.DayGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.archive.GroupedByDay(c.loc)
}

// Remove deletes a single record.
func (c *CompletionArchive) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.archive.Remove(id); err != nil {
		return err
	}
	c.listeners.notify(ctx, c.archive.Records())
	return nil
}

// RemoveDay deletes every record completed on day once confirm agrees.
func (c *CompletionArchive) RemoveDay(ctx context.Context, day string, confirm ports.ConfirmFunc) (int, error) {
	if !kernel.IsDayKey(day) {
		return 0, errs.NewValueIsInvalidErrorWithCause("day", fmt.Errorf("%q is not a yyyy-MM-dd day", day))
	}
	action := fmt.Sprintf("remove completed orders of %s", day)
	if confirm == nil || !confirm(ctx, action) {
		return 0, errs.NewActionNotConfirmedError(action)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.archive.RemoveDay(day, c.loc)
	c.logger.InfoContext(ctx, "Completed day removed", "day", day, "removed", removed)
	c.listeners.notify(ctx, c.archive.Records())
	return removed, nil
}

// Clear deletes every record once confirm agrees.
func (c *CompletionArchive) Clear(ctx context.Context, confirm ports.ConfirmFunc) (int, error) {
	const action = "clear all completed orders"
	if confirm == nil || !confirm(ctx, action) {
		return 0, errs.NewActionNotConfirmedError(action)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.archive.Clear()
	c.logger.InfoContext(ctx, "Completed orders cleared", "removed", removed)
	c.listeners.notify(ctx, c.archive.Records())
	return removed, nil
}
