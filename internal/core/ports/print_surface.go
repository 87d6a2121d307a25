package ports

import "context"

// PrintSurface is a display surface holding one document until it is printed
// or discarded.
type PrintSurface interface {
	Write(document []byte) error
	Print() error
	Discard() error
}

// PrintSurfaceFactory opens print surfaces. Surfaces opened under the same
// name are independent. Open fails when no surface can be
// initialised; callers report that failure and do not retry.
type PrintSurfaceFactory interface {
	Open(ctx context.Context, name string) (PrintSurface, error)
}
