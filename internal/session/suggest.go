package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultDebounce is how long input must stay unchanged before a suggestion
// request is sent.
const DefaultDebounce = 150 * time.Millisecond

// FetchFunc looks up suggestions for input. It must honor ctx cancellation.
type FetchFunc[T any] func(ctx context.Context, input string) ([]T, error)

// Suggester turns a stream of text input into suggestion lists. Each Update
// restarts the debounce timer and cancels any request still in flight, so
// only the newest input's suggestions are ever delivered.
type Suggester[T any] struct {
	fetch    FetchFunc[T]
	deliver  func([]T)
	debounce time.Duration

	mu     sync.Mutex
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

// NewSuggester creates a Suggester. deliver is called with the suggestions
// for the latest input, or nil when the input is cleared. It runs with the
// Suggester's lock held and must not call Update or Close. A non-positive
// debounce means DefaultDebounce.
func NewSuggester[T any](fetch FetchFunc[T], deliver func([]T), debounce time.Duration) *Suggester[T] {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Suggester[T]{fetch: fetch, deliver: deliver, debounce: debounce}
}

// Update records new input.
func (s *Suggester[T]) Update(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.stopLocked()
	s.seq++

	input = strings.TrimSpace(input)
	if input == "" {
		s.deliver(nil)
		return
	}

	seq := s.seq
	s.timer = time.AfterFunc(s.debounce, func() { s.run(seq, input) })
}

// Close stops pending and in-flight lookups. Nothing is delivered after
// Close returns.
func (s *Suggester[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.stopLocked()
}

func (s *Suggester[T]) run(seq uint64, input string) {
	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	items, err := s.fetch(ctx, input)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq != s.seq {
		return
	}
	s.cancel = nil

	if err != nil {
		// previous suggestions stay visible
		log.Warn().Err(err).Str("input", input).Msg("suggestion lookup failed")
		return
	}
	s.deliver(items)
}

func (s *Suggester[T]) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
