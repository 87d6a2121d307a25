// Package ports defines the boundaries between the order engine and its
// collaborators: blob persistence, the typed state repository built on it,
// change publishing, print surfaces and the confirmation gate for
// destructive operations.
package ports
