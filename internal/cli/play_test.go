package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/letterboard/pkg/letterboard"
)

func newTestPlayModel() playModel {
	store := letterboard.NewStore(nil, letterboard.InitialState(letterboard.DefaultHeadings(), 1), nil)
	return newPlayModel(context.Background(), letterboard.NewController(store, 1))
}

// send applies msgs in order and returns the resulting model.
func send(t *testing.T, m playModel, msgs ...tea.Msg) playModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(playModel)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ready boots the model on a 102-column terminal.
func ready(t *testing.T) playModel {
	t.Helper()
	m := send(t, newTestPlayModel(), fontReadyMsg{})
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 102, Height: 40})
	if cmd == nil {
		t.Fatal("resize did not schedule a measurement")
	}
	m = next.(playModel)
	return send(t, m, resizeMsg{gen: m.resizeGen, size: boardSizeFor(100)})
}

func TestPlayResizeDebounce(t *testing.T) {
	m := send(t, newTestPlayModel(), fontReadyMsg{})
	m = send(t, m, tea.WindowSizeMsg{Width: 80}, tea.WindowSizeMsg{Width: 122})

	stale := send(t, m, resizeMsg{gen: m.resizeGen - 1, size: boardSizeFor(78)})
	if stale.state.BoardMetrics != nil {
		t.Fatal("stale resize measured the board")
	}
	m = send(t, m, resizeMsg{gen: m.resizeGen, size: boardSizeFor(120)})
	if m.state.BoardMetrics == nil || m.state.BoardMetrics.Width != 1440 {
		t.Fatalf("metrics = %+v", m.state.BoardMetrics)
	}
	if len(m.state.Tiles) == 0 {
		t.Error("measured board has no tiles")
	}
}

func TestPlayDragSelectedTile(t *testing.T) {
	m := ready(t)
	before, _ := m.selected()

	m = send(t, m, key("down"), key("right"))
	after, _ := m.state.Tile(before.ID)
	bm := m.state.BoardMetrics
	if after.Y != before.Y+bm.RowHeightPx {
		t.Errorf("y = %v, want %v", after.Y, before.Y+bm.RowHeightPx)
	}
	if after.X <= before.X || !after.ManuallyMoved {
		t.Errorf("tile after drag = %+v", after)
	}
	if m.status == "" {
		t.Error("drag did not set a status")
	}
}

func TestPlayOpenMenuPanel(t *testing.T) {
	m := ready(t)
	for i := 0; i < len(m.state.Tiles); i++ {
		if tile, _ := m.selected(); tile.Char == "Craft" {
			break
		}
		m = send(t, m, key("tab"))
	}
	m = send(t, m, key("enter"))
	if m.state.Panel.ActivePanel != letterboard.PanelCraft {
		t.Fatalf("panel = %q", m.state.Panel.ActivePanel)
	}

	m = send(t, m, key("v"))
	if m.state.CraftPanel.ActiveNotecard != letterboard.NotecardV60 {
		t.Fatalf("notecard = %q", m.state.CraftPanel.ActiveNotecard)
	}
	if view := m.View(); !strings.Contains(view, "V60 Recipe") || !strings.Contains(view, "1:15") {
		t.Errorf("view missing recipe:\n%s", view)
	}

	m = send(t, m, key("esc"))
	if m.state.CraftPanel.ActiveNotecard != letterboard.NotecardNone || !m.state.Panel.IsPanelOpen {
		t.Fatal("first esc should close only the notecard")
	}
	m = send(t, m, key("esc"))
	if m.state.Panel.IsPanelOpen {
		t.Fatal("second esc should close the panel")
	}
}

func TestPlayBringToFront(t *testing.T) {
	m := ready(t)
	p, _ := backmostPolaroid(m.state)
	m = send(t, m, key("f"))
	got, _ := m.state.Polaroid(p.ID)
	if got.ZIndex != m.state.MaxZIndex {
		t.Errorf("z = %d, want %d", got.ZIndex, m.state.MaxZIndex)
	}
}

func TestPlayQuit(t *testing.T) {
	_, cmd := newTestPlayModel().Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestRenderBoard(t *testing.T) {
	m := ready(t)
	out := renderBoard(m.state, m.cols, "")
	for _, want := range []string{"J", "Journey", "Contact"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q:\n%s", want, out)
		}
	}
	if got := renderBoard(letterboard.InitialState(nil, 1), 40, ""); !strings.Contains(got, "measuring board") {
		t.Errorf("unmeasured board = %q", got)
	}
}

func TestPlayHelpListsKeys(t *testing.T) {
	view := ready(t).View()
	for _, want := range []string{"e encore", "v v60", "r reshuffle", "f front", "esc close", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("help line missing %q", want)
		}
	}
}
