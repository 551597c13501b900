package argon2

import (
	"runtime"
	"sync/atomic"

	"github.com/jeremyhahn/go-argon2/pkg/argon2/native"
)

// Number of buffers currently pinned across all calls
var activePins atomic.Int64

// pinScope keeps the buffers of a single native call in place until
// release is called. Callers must defer release immediately.
type pinScope struct {
	pinner runtime.Pinner
	count  int64
}

// Pins b and returns its pointer / length pair. Empty slices are not
// pinned and produce a nil pointer.
func (s *pinScope) bytes(b []byte) native.Buffer {
	buf := native.BufferOf(b)
	if buf.Ptr != nil {
		s.pin(buf.Ptr)
	}
	return buf
}

func (s *pinScope) pin(pointer any) {
	s.pinner.Pin(pointer)
	s.count++
	activePins.Add(1)
}

func (s *pinScope) release() {
	s.pinner.Unpin()
	activePins.Add(-s.count)
	s.count = 0
}
