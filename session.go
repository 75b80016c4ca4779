package tailorcss

import (
	"strings"
	"sync"
)

// Session accumulates markup and paths for lazy generation.
// Generate consumes the accumulated input and resets the session.
type Session struct {
	mu      sync.Mutex
	html    strings.Builder
	paths   []string
	collect CollectOptions
}

// NewSession creates an empty session. collect configures how pushed paths are read.
func NewSession(collect CollectOptions) *Session {
	return &Session{collect: collect}
}

// PushHTML appends markup to the session
func (s *Session) PushHTML(markup string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.html.WriteString(markup)
}

// PushPath queues a file, directory or glob pattern
func (s *Session) PushPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, path)
}

// Generate compiles the markup read from the queued paths followed by the
// pushed markup. It fails with ErrNoLazyInput when nothing was pushed.
func (s *Session) Generate(opts Options) (*Result, error) {
	s.mu.Lock()
	html := s.html.String()
	paths := s.paths
	s.html.Reset()
	s.paths = nil
	s.mu.Unlock()

	if html == "" && len(paths) == 0 {
		return nil, ErrNoLazyInput
	}

	var markup strings.Builder
	if len(paths) > 0 {
		collection, err := NewCollector(s.collect).Collect(paths)
		if err != nil {
			return nil, err
		}
		markup.WriteString(collection.Markup)
	}
	markup.WriteString(html)

	return Generate(markup.String(), opts)
}
