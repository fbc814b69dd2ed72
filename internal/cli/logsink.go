package cli

import (
	"io"
	"sync"
)

// LogSink is an io.Writer for service logs that can be muted at runtime.
// A nil *LogSink discards everything.
type LogSink struct {
	mu    sync.Mutex
	w     io.Writer
	muted bool
}

// NewLogSink wraps w.
func NewLogSink(w io.Writer) *LogSink {
	return &LogSink{w: w}
}

func (s *LogSink) Write(p []byte) (int, error) {
	if s == nil {
		return len(p), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted || s.w == nil {
		return len(p), nil
	}
	return s.w.Write(p)
}

// Mute drops all further writes until Unmute.
func (s *LogSink) Mute() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.muted = true
	s.mu.Unlock()
}

// Unmute resumes writing.
func (s *LogSink) Unmute() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.muted = false
	s.mu.Unlock()
}

// Muted reports whether writes are being dropped.
func (s *LogSink) Muted() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}
