// Package spool hands receipts to a print spooler directory. A document is
// written to <name>-<random>.tmp and renamed to <name>-<random>.html when
// printed, so the spooler only ever picks up complete documents and two
// surfaces for the same name never share a file.
package spool

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"restaurant/internal/core/ports"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Factory opens print surfaces inside a spool directory.
type Factory struct {
	dir string
}

var _ ports.PrintSurfaceFactory = (*Factory)(nil)

func NewFactory(dir string) *Factory {
	return &Factory{dir: dir}
}

// Open creates an empty document named after name.
func (f *Factory) Open(_ context.Context, name string) (ports.PrintSurface, error) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare spool directory: %w", err)
	}

	file, err := os.CreateTemp(f.dir, unsafeName.ReplaceAllString(name, "_")+"-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("open print surface: %w", err)
	}
	return &Surface{file: file, target: strings.TrimSuffix(file.Name(), ".tmp") + ".html"}, nil
}

var errSurfaceClosed = errors.New("print surface already printed or discarded")

// Surface is one pending document.
type Surface struct {
	mu     sync.Mutex
	file   *os.File
	target string
	closed bool
}

func (s *Surface) Write(document []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSurfaceClosed
	}
	_, err := s.file.Write(document)
	return err
}

// Print releases the document to the spooler. Printing twice is an error.
func (s *Surface) Print() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSurfaceClosed
	}
	s.closed = true

	if err := s.file.Close(); err != nil {
		_ = os.Remove(s.file.Name())
		return err
	}
	return os.Rename(s.file.Name(), s.target)
}

// Discard drops the pending document. It is a no-op after Print.
func (s *Surface) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	return errors.Join(s.file.Close(), os.Remove(s.file.Name()))
}
