// Package archive provides the completion archive: snapshots of every order
// that ever reached Delivered, grouped by the local calendar day it completed.
//
// Key business rules:
//   - At most one record per order id; later archival attempts are ignored
//   - Records are deep copies, so later edits to the live order never leak in
//   - New records are placed in front, so iteration is newest completion first
//   - Day grouping formats completedAt in the caller's zone at read time
package archive

import (
	"sort"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// Record is an order snapshot stamped with its completion time.
type Record struct {
	order       *order.Order
	completedAt time.Time
}

// NewRecord snapshots o.
func NewRecord(o *order.Order, completedAt time.Time) (Record, error) {
	if err := o.Validate(); err != nil {
		return Record{}, err
	}
	if completedAt.IsZero() {
		return Record{}, errs.NewValueIsRequiredError("completedAt")
	}
	return Record{order: o.Clone(), completedAt: completedAt}, nil
}

func (r Record) ID() string             { return r.order.ID() }
func (r Record) CompletedAt() time.Time { return r.completedAt }
func (r Record) Total() kernel.Money    { return r.order.Total() }

// Order returns a copy of the archived order.
func (r Record) Order() *order.Order {
	return r.order.Clone()
}

// DayKey returns the local calendar day the record belongs to.
func (r Record) DayKey(loc *time.Location) string {
	return kernel.DayKey(r.completedAt, loc)
}

// DayGroup is one calendar day of completed orders.
type DayGroup struct {
	Day     string
	Records []Record
	Total   kernel.Money
}

// Archive holds completion records, newest first.
type Archive struct {
	records []Record
}

// New builds an archive from records already in newest-first order. Later
// duplicates of an id are dropped.
func New(records []Record) *Archive {
	a := &Archive{}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.ID()] {
			continue
		}
		seen[r.ID()] = true
		a.records = append(a.records, r)
	}
	return a
}

// Record archives o unless its id is already present. It reports whether a
// record was added; a duplicate is not an error.
func (a *Archive) Record(o *order.Order, completedAt time.Time) (bool, error) {
	if a.Contains(o.ID()) {
		return false, nil
	}
	r, err := NewRecord(o, completedAt)
	if err != nil {
		return false, err
	}
	a.records = append([]Record{r}, a.records...)
	return true, nil
}

// Contains reports whether a record with the given order id exists.
func (a *Archive) Contains(id string) bool {
	for _, r := range a.records {
		if r.ID() == id {
			return true
		}
	}
	return false
}

// Remove deletes the record with the given order id.
func (a *Archive) Remove(id string) error {
	for i, r := range a.records {
		if r.ID() == id {
			a.records = append(a.records[:i:i], a.records[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("completedOrderId", id)
}

// RemoveDay deletes every record whose completion falls on day in loc and
// returns how many were removed. It uses the same day formatting as GroupedByDay.
func (a *Archive) RemoveDay(day string, loc *time.Location) int {
	kept := make([]Record, 0, len(a.records))
	for _, r := range a.records {
		if r.DayKey(loc) != day {
			kept = append(kept, r)
		}
	}
	removed := len(a.records) - len(kept)
	a.records = kept
	return removed
}

// Clear deletes all records and returns how many there were.
func (a *Archive) Clear() int {
	n := len(a.records)
	a.records = nil
	return n
}

// Len returns the number of records.
func (a *Archive) Len() int {
	return len(a.records)
}

// Records returns the records newest first.
func (a *Archive) Records() []Record {
	records := make([]Record, len(a.records))
	copy(records, a.records)
	return records
}

// GroupedByDay groups records by local day, newest day first. Within a day
// records keep archive order.
func (a *Archive) GroupedByDay(loc *time.Location) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, r := range a.records {
		day := r.DayKey(loc)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day, Total: kernel.Zero})
		}
		groups[i].Records = append(groups[i].Records, r)
		groups[i].Total = groups[i].Total.Add(r.Total())
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Day > groups[j].Day
	})
	return groups
}
