package app

import (
	"io"
	"sync"
)

// syncWriter serializes writes so that progress lines printed by parts
// running in parallel never interleave mid-line.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
