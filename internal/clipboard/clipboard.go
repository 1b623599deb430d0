// Package clipboard provides the sink the current card's text is copied to.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
	"github.com/vytor/dialoguedeck/internal/logger"
)

// Sink receives text to copy. Writes are fire-and-forget.
type Sink interface {
	Write(text string)
}

// System writes to the operating system clipboard.
type System struct {
	log *logger.Logger
}

func NewSystem(log *logger.Logger) *System {
	if log == nil {
		log = logger.Default()
	}
	return &System{log: log.WithPrefix("clipboard")}
}

// Available reports whether a clipboard utility was found on this host.
func Available() bool {
	return !clipboard.Unsupported
}

func (s *System) Write(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		s.log.Warn("clipboard write failed: %v", err)
		return
	}
	s.log.Debug("copied %d bytes", len(text))
}

// Discard drops every write.
type Discard struct{}

func (Discard) Write(string) {}

// Recorder keeps every write in memory. Useful for tests and headless runs.
type Recorder struct {
	mu     sync.Mutex
	writes []string
}

func (r *Recorder) Write(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, text)
}

func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}

// Last returns the most recent write, if any.
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return "", false
	}
	return r.writes[len(r.writes)-1], true
}
