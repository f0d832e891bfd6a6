package letterboard

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/letterboard/pkg/observability"
)

// Store is the serialized dispatch point. Actions apply one at a time in
// the order Dispatch is called; the result of each is the input to the next.
type Store struct {
	// dispatchMu orders whole dispatches, notifications included. mu guards
	// the fields below and is never held while subscribers run.
	dispatchMu sync.Mutex
	mu         sync.Mutex

	reducer *Reducer
	state   State
	logger  *log.Logger
	subs    map[int]func(State)
	nextSub int
	count   int
}

// NewStore creates a store holding initial. A nil logger discards output.
func NewStore(r *Reducer, initial State, logger *log.Logger) *Store {
	if r == nil {
		r = NewReducer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		reducer: r,
		state:   initial,
		logger:  logger,
		subs:    make(map[int]func(State)),
	}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatched returns how many actions have been applied.
func (s *Store) Dispatched() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Dispatch applies a and returns the new state. Subscribers are notified in
// dispatch order before Dispatch returns. They may read the store and
// unsubscribe, but must not dispatch.
func (s *Store) Dispatch(ctx context.Context, a Action) State {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	start := time.Now()
	next := s.reducer.Reduce(s.state, a)
	elapsed := time.Since(start)

	s.state = next
	s.count++
	seq := s.count
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	actionType := "<nil>"
	if a != nil {
		actionType = string(a.Type())
	}
	s.logger.Debug("dispatch",
		"action", actionType,
		"seq", seq,
		"tiles", len(next.Tiles),
		"gallery", len(next.Panel.GalleryPolaroids),
		"elapsed", elapsed)

	observability.Dispatch().OnDispatch(ctx, actionType, elapsed)
	switch a.(type) {
	case AddHeading, ReflowLayout:
		observability.Layout().OnLayout(ctx, len(next.Headings), len(next.Tiles), countManual(next))
	}

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn to receive every new state. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func countManual(st State) int {
	n := 0
	for _, t := range st.Tiles {
		if t.ManuallyMoved {
			n++
		}
	}
	return n
}
