package cli

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/letterboard/pkg/board"
	"github.com/matzehuels/letterboard/pkg/geometry"
	"github.com/matzehuels/letterboard/pkg/layout"
	"github.com/matzehuels/letterboard/pkg/letterboard"
	"github.com/matzehuels/letterboard/pkg/polaroid"
)

// playCommand creates the play command for the interactive board.
func (c *CLI) playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Drag tiles and open panels in the terminal",
		Long: `Drag tiles and open panels in the terminal.

The board is sized to the terminal and re-measured when the window settles
after a resize. Tab selects a tile, arrow keys drag it one cell or one groove,
enter on a menu word opens its panel and esc closes it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			sess, err := c.newSession(cfg, "")
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			p := tea.NewProgram(newPlayModel(ctx, sess.controller), tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run board: %w", err)
			}
			c.Logger.Debug("board closed", "actions", sess.store.Dispatched())
			return nil
		},
	}
}

// =============================================================================
// Board Model
// =============================================================================

const (
	// resizeDebounce is how long the window size must be stable before the
	// board is re-measured.
	resizeDebounce = 250 * time.Millisecond

	// cellWidthPx is the board width one terminal column stands for.
	cellWidthPx = 12.0

	minBoardCols = 20
)

type fontReadyMsg struct{}

type resizeMsg struct {
	gen  int
	size geometry.Size
}

// playModel is the bubbletea model for the interactive board.
type playModel struct {
	ctx    context.Context
	ctrl   *letterboard.Controller
	state  letterboard.State
	cursor int
	cols   int

	resizeGen int
	status    string
}

func newPlayModel(ctx context.Context, ctrl *letterboard.Controller) playModel {
	return playModel{ctx: ctx, ctrl: ctrl, state: ctrl.State(), cols: minBoardCols}
}

// boardCols is the number of grid columns for a terminal width.
func boardCols(termWidth int) int {
	return max(termWidth-2, minBoardCols)
}

// boardSizeFor returns the pixel board that fills cols columns, keeping the
// board's viewbox aspect ratio.
func boardSizeFor(cols int) geometry.Size {
	w := float64(cols) * cellWidthPx
	return geometry.Size{Width: w, Height: w * board.ViewBoxHeight / board.ViewBoxWidth}
}

func (m playModel) Init() tea.Cmd {
	return func() tea.Msg { return fontReadyMsg{} }
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fontReadyMsg:
		m.state = m.ctrl.FontReady(m.ctx)
	case tea.WindowSizeMsg:
		m.resizeGen++
		gen, cols := m.resizeGen, boardCols(msg.Width)
		return m, tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
			return resizeMsg{gen: gen, size: boardSizeFor(cols)}
		})
	case resizeMsg:
		if msg.gen != m.resizeGen {
			return m, nil
		}
		m.cols = int(msg.size.Width / cellWidthPx)
		m.state = m.ctrl.BoardMeasured(m.ctx, board.Measure(msg.size.Width, msg.size.Height))
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	m.cursor = min(m.cursor, max(len(m.state.Tiles)-1, 0))
	return m, nil
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.state
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if n := len(st.Tiles); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case "shift+tab":
		if n := len(st.Tiles); n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case "left", "h":
		m.drag(-1, 0)
	case "right", "l":
		m.drag(1, 0)
	case "up", "k":
		m.drag(0, -1)
	case "down", "j":
		m.drag(0, 1)
	case "enter":
		if t, ok := m.selected(); ok && layout.IsMenuItem(t.Char) {
			m.state = m.ctrl.OpenMenuItem(m.ctx, t.Char)
			m.status = "opened " + string(m.state.Panel.ActivePanel)
		}
	case "esc":
		switch {
		case st.CraftPanel.ActiveNotecard != letterboard.NotecardNone:
			m.state = m.ctrl.CloseNotecard(m.ctx)
		case st.Panel.IsPanelOpen:
			m.state = m.ctrl.ClosePanel(m.ctx)
		}
	case "e", "v":
		if st.Panel.IsPanelOpen && st.Panel.ActivePanel == letterboard.PanelCraft {
			n := letterboard.NotecardEncore
			if msg.String() == "v" {
				n = letterboard.NotecardV60
			}
			m.state = m.ctrl.OpenNotecard(m.ctx, n)
		}
	case "r":
		if st.Panel.IsPanelOpen && st.Panel.ActivePanel == letterboard.PanelGallery && st.BoardMetrics != nil {
			bm := st.BoardMetrics
			m.state = m.ctrl.RegenerateGallery(m.ctx, bm.Width*letterboard.GalleryStageRatio, bm.Height)
			m.status = "reshuffled gallery"
		}
	case "f":
		if p, ok := backmostPolaroid(st); ok {
			m.state = m.ctrl.BringToFront(m.ctx, p.ID)
			m.status = fmt.Sprintf("%s to front (z %d)", p.Caption, m.state.MaxZIndex)
		}
	}
	return m, nil
}

// drag moves the selected tile by whole cells and grooves.
func (m *playModel) drag(dcols, drows int) {
	t, ok := m.selected()
	bm := m.state.BoardMetrics
	if !ok || bm == nil {
		return
	}
	dx := float64(dcols) * bm.Width / float64(m.cols)
	dy := float64(drows) * bm.RowHeightPx
	m.state = m.ctrl.DragTile(m.ctx, t.ID, dx, dy)
	if moved, ok := m.state.Tile(t.ID); ok {
		m.status = fmt.Sprintf("%s → (%s, %s)", t.ID, formatFloat(moved.X), formatFloat(moved.Y))
	}
}

func (m playModel) selected() (layout.Tile, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Tiles) {
		return layout.Tile{}, false
	}
	return m.state.Tiles[m.cursor], true
}

// backmostPolaroid returns the lowest polaroid of the visible set.
func backmostPolaroid(st letterboard.State) (polaroid.Polaroid, bool) {
	ps := st.Panel.HeroPolaroids
	if st.Panel.IsPanelOpen {
		if st.Panel.ActivePanel != letterboard.PanelGallery {
			return polaroid.Polaroid{}, false
		}
		ps = st.Panel.GalleryPolaroids
	}
	if len(ps) == 0 {
		return polaroid.Polaroid{}, false
	}
	return slices.MinFunc(ps, func(a, b polaroid.Polaroid) int { return a.ZIndex - b.ZIndex }), true
}

// =============================================================================
// Rendering
// =============================================================================

var (
	boardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Reverse(true)
	tileStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorGray).Padding(0, 1)
)

// playHelp lists the keys. e and v apply in the craft panel, r in the gallery.
const playHelp = "tab select · ←↑↓→ drag · ⏎ open · e encore · v v60 · r reshuffle · f front · esc close · q quit"

func (m playModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("letterboard"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(playHelp))
	b.WriteString("\n")

	selectedID := ""
	if t, ok := m.selected(); ok {
		selectedID = t.ID
	}
	b.WriteString(renderBoard(m.state, m.cols, selectedID))
	b.WriteString("\n")

	if panel := renderPanel(m.state); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(StyleDim.Render(m.status))
	}
	return b.String()
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellTile
	cellManual
	cellSelected
)

// renderBoard draws tiles on a grid with one line per groove row.
func renderBoard(st letterboard.State, cols int, selectedID string) string {
	bm := st.BoardMetrics
	if bm == nil || bm.RowHeightPx <= 0 || cols <= 0 {
		return boardStyle.Render(StyleDim.Render("measuring board..."))
	}
	rows := int(bm.Height / bm.RowHeightPx)
	cellW := bm.Width / float64(cols)

	chars := make([][]rune, rows)
	kinds := make([][]cellKind, rows)
	for r := range chars {
		chars[r] = []rune(strings.Repeat(" ", cols))
		kinds[r] = make([]cellKind, cols)
	}
	for _, t := range st.Tiles {
		row := int(math.Round((t.Y - bm.GrooveOffsetPx) / bm.RowHeightPx))
		if row < 0 || row >= rows {
			continue
		}
		kind := cellTile
		switch {
		case t.ID == selectedID:
			kind = cellSelected
		case t.ManuallyMoved:
			kind = cellManual
		}
		col := int(t.X / cellW)
		for i, ch := range []rune(t.Char) {
			if c := col + i; c >= 0 && c < cols {
				chars[row][c], kinds[row][c] = ch, kind
			}
		}
	}

	lines := make([]string, rows)
	for r := range chars {
		var line strings.Builder
		start := 0
		for c := 1; c <= cols; c++ {
			if c < cols && kinds[r][c] == kinds[r][start] {
				continue
			}
			line.WriteString(cellStyle(kinds[r][start]).Render(string(chars[r][start:c])))
			start = c
		}
		lines[r] = line.String()
	}
	return boardStyle.Render(strings.Join(lines, "\n"))
}

func cellStyle(k cellKind) lipgloss.Style {
	switch k {
	case cellSelected:
		return selectedStyle
	case cellManual:
		return StyleManual
	case cellTile:
		return tileStyle
	}
	return StyleDim
}

// renderPanel draws the open panel, or "" when the hero board is showing.
func renderPanel(st letterboard.State) string {
	if !st.Panel.IsPanelOpen {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleTitle.Render(strings.ToUpper(string(st.Panel.ActivePanel))))
	b.WriteString("\n")

	switch st.Panel.ActivePanel {
	case letterboard.PanelGallery:
		if len(st.Panel.GalleryPolaroids) == 0 {
			b.WriteString(StyleDim.Render("no polaroids yet, press r to scatter"))
		} else {
			b.WriteString(polaroidTable(st.Panel.GalleryPolaroids))
		}
	case letterboard.PanelCraft:
		b.WriteString(renderNotecard(st.CraftPanel.ActiveNotecard))
	default:
		b.WriteString(StyleDim.Render("esc to return to the board"))
	}
	return panelStyle.Render(b.String())
}

func renderNotecard(n letterboard.NotecardType) string {
	switch n {
	case letterboard.NotecardEncore:
		rows := make([][]string, len(letterboard.EncoreGrindSettings))
		for i, g := range letterboard.EncoreGrindSettings {
			rows[i] = []string{g.GrindSize, g.BrewMethod}
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(StyleDim).
			Headers("Grind", "Brew method").
			Rows(rows...)
		return StyleValue.Render(letterboard.NotecardTitle(n)) + "\n" + t.Render()
	case letterboard.NotecardV60:
		lines := []string{StyleValue.Render(letterboard.NotecardTitle(n))}
		for _, f := range letterboard.V60Recipe {
			v := StyleValue.Render(f.Value)
			if f.LinkURL != "" {
				v += " " + StyleLink.Render(f.LinkURL)
			}
			lines = append(lines, StyleDim.Render(fmt.Sprintf("%-8s", f.Label))+v)
		}
		return strings.Join(lines, "\n")
	}
	return StyleDim.Render("e encore grind settings · v V60 recipe")
}
