// Package appstate assembles the stores into the single application state,
// loads it from a ports.StateRepository at start, keeps it persisted through
// a background Persister and relays order changes to a ports.ChangePublisher.
//
// Loading never fails: an absent or unreadable structure is replaced by its
// default (no orders, empty archive, seeded menu, blank profile) and a warning
// is logged. Saves are fire-and-forget; a failed save is logged and retried by
// the next mutation, the autosave job or the final flush.
package appstate
