package letterboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/layout"
	"github.com/matzehuels/letterboard/pkg/observability"
)

type recordingHooks struct {
	mu       sync.Mutex
	actions  []string
	layouts  int
	lastTile int
	manual   int
}

func (h *recordingHooks) OnDispatch(_ context.Context, actionType string, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.actions = append(h.actions, actionType)
}

func (h *recordingHooks) OnLayout(_ context.Context, _, tiles, manual int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.layouts++
	h.lastTile = tiles
	h.manual = manual
}

func TestStoreDispatch(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetDispatchHooks(hooks)
	observability.SetLayoutHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	s := NewStore(nil, InitialState(DefaultHeadings(), 1), nil)

	var seen []State
	unsubscribe := s.Subscribe(func(st State) { seen = append(seen, st) })

	s.Dispatch(ctx, FontReady{})
	s.Dispatch(ctx, BoardMeasured{Metrics: board.Measure(1200, 250)})
	st := s.Dispatch(ctx, ReflowLayout{})

	if len(st.Tiles) == 0 {
		t.Fatal("no tiles after reflow")
	}
	if got := s.State(); len(got.Tiles) != len(st.Tiles) {
		t.Errorf("State() tiles = %d, want %d", len(got.Tiles), len(st.Tiles))
	}
	if s.Dispatched() != 3 {
		t.Errorf("Dispatched() = %d, want 3", s.Dispatched())
	}
	if len(seen) != 3 {
		t.Errorf("subscriber saw %d states, want 3", len(seen))
	}

	want := []string{string(TypeFontReady), string(TypeBoardMeasured), string(TypeReflowLayout)}
	if len(hooks.actions) != len(want) {
		t.Fatalf("hook actions = %v, want %v", hooks.actions, want)
	}
	for i := range want {
		if hooks.actions[i] != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, hooks.actions[i], want[i])
		}
	}
	if hooks.layouts != 1 || hooks.lastTile != len(st.Tiles) || hooks.manual != 0 {
		t.Errorf("layout hook = %d calls, %d tiles, %d manual", hooks.layouts, hooks.lastTile, hooks.manual)
	}

	unsubscribe()
	s.Dispatch(ctx, AddHeading{Level: layout.H4, Text: "x"})
	if len(seen) != 3 {
		t.Error("unsubscribed callback still notified")
	}
	if hooks.layouts != 2 {
		t.Errorf("layout hook calls = %d, want 2", hooks.layouts)
	}
}

func TestStoreConcurrentDispatch(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewReducer(), InitialState(nil, 1), nil)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(ctx, AddHeading{Level: layout.H3, Text: "t"})
		}()
	}
	wg.Wait()

	st := s.State()
	if len(st.Headings) != n {
		t.Errorf("headings = %d, want %d", len(st.Headings), n)
	}
	ids := make(map[string]bool)
	for _, h := range st.Headings {
		ids[h.ID] = true
	}
	if len(ids) != n {
		t.Errorf("distinct heading ids = %d, want %d", len(ids), n)
	}
}

func TestStoreSubscriberReadsStore(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil, InitialState(DefaultHeadings(), 1), nil)

	var (
		calls       int
		seenCount   int
		seenReady   bool
		unsubscribe func()
	)
	unsubscribe = s.Subscribe(func(st State) {
		calls++
		seenCount = s.Dispatched()
		seenReady = s.State().FontReady
		unsubscribe()
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Dispatch(ctx, FontReady{})
		s.Dispatch(ctx, PanelOpen{Panel: PanelCraft})
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked while a subscriber read the store")
	}

	if calls != 1 {
		t.Errorf("subscriber calls = %d, want 1 after unsubscribing itself", calls)
	}
	if seenCount != 1 || !seenReady {
		t.Errorf("subscriber saw count=%d ready=%v, want 1 true", seenCount, seenReady)
	}
}
