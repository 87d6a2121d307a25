// Package store holds the authoritative in-process state of the restaurant:
// live orders, the completion archive, the menu and the shop profile.
//
// Each store guards its state with a single mutex so a read-modify-write
// sequence, such as "check previous status then archive", is one indivisible
// transition even when HTTP handlers run concurrently. After every successful
// mutation a store notifies its listeners with a full snapshot. Listeners run
// while the store lock is held so snapshots arrive in mutation order; they
// must return quickly and must not call back into the same store.
package store
