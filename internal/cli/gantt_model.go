package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/alexanderramin/yabane/internal/state"
	"github.com/alexanderramin/yabane/internal/timeline"
)

// Layout constants for the gantt screen. The label pane is fixed; the grid
// fills the rest.
const (
	ganttLabelWidth = 30
	ganttHeaderRows = 2
)

type ganttLoadedMsg struct {
	project    *domain.Project
	arrows     []*domain.Arrow
	items      []*domain.WbsItem
	milestones []*domain.Milestone
	err        error
}

// ganttReloadMsg arrives from the database watcher when another process
// writes the database.
type ganttReloadMsg struct{}

type dragCommittedMsg struct {
	arrowID    int64
	start, end time.Time
	err        error
}

type reorderCommittedMsg struct {
	ids []int64
	err error
}

// ganttKeyMap holds the bindings for both the browse mode and the reorder
// overlay. Cancel is only consulted while a reorder session is active, so it
// may share keys with Quit.
type ganttKeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Collapse key.Binding
	Reorder  key.Binding
	Reload   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

func defaultGanttKeyMap() ganttKeyMap {
	return ganttKeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "move")),
		Down:     key.NewBinding(key.WithKeys("j", "down")),
		Collapse: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "collapse")),
		Reorder:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reorder")),
		Reload:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

type ganttModel struct {
	app       *App
	projectID int64
	dayWidth  int
	keys      ganttKeyMap

	project    *domain.Project
	arrows     *state.ArrowSet
	items      *state.WbsSet
	milestones []*domain.Milestone
	guard      *state.DirtyGuard

	collapsed map[int64]bool
	cursor    int
	top       int
	rng       timeline.Range

	drag    *timeline.Drag
	reorder *state.ReorderSession

	width, height int
	status        string
	confirmQuit   bool
	err           error
}

func newGanttModel(app *App, projectID int64) ganttModel {
	return ganttModel{
		app:       app,
		projectID: projectID,
		dayWidth:  ganttCellWidth(app.Config.DayWidth),
		keys:      defaultGanttKeyMap(),
		arrows:    state.NewArrowSet(nil),
		items:     state.NewWbsSet(nil),
		guard:     state.NewDirtyGuard(),
		collapsed: make(map[int64]bool),
	}
}

// ganttCellWidth scales the configured pixel day width down to terminal
// cells. One day is at least one cell, at most four.
func ganttCellWidth(pixels int) int {
	cells := pixels / 10
	if cells < 1 {
		cells = 1
	}
	if cells > 4 {
		cells = 4
	}
	return cells
}

func (m ganttModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ganttModel) loadCmd() tea.Cmd {
	app, projectID := m.app, m.projectID
	return func() tea.Msg {
		ctx := context.Background()
		project, err := app.Projects.GetByID(ctx, projectID)
		if err != nil {
			return ganttLoadedMsg{err: err}
		}
		arrows, err := app.Arrows.ListByProject(ctx, projectID)
		if err != nil {
			return ganttLoadedMsg{err: err}
		}
		items, err := app.Wbs.ListByProject(ctx, projectID)
		if err != nil {
			return ganttLoadedMsg{err: err}
		}
		milestones, err := app.Milestones.ListByProject(ctx, projectID)
		if err != nil {
			return ganttLoadedMsg{err: err}
		}
		return ganttLoadedMsg{project: project, arrows: arrows, items: items, milestones: milestones}
	}
}

func (m ganttModel) commitDragCmd(arrowID int64, start, end time.Time) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		s, e := start, end
		err := app.Arrows.UpdateDates(context.Background(), arrowID, &s, &e)
		return dragCommittedMsg{arrowID: arrowID, start: start, end: end, err: err}
	}
}

func (m ganttModel) commitReorderCmd(ids []int64) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		err := app.Arrows.Reorder(context.Background(), ids)
		return reorderCommittedMsg{ids: ids, err: err}
	}
}

func (m *ganttModel) recomputeRange() {
	now := time.Now()
	m.rng = m.arrows.DateRange(m.project, m.app.Config.MarginDays, now)
}

// nodes returns the visible tree rows.
func (m *ganttModel) nodes() []timeline.Node {
	return m.arrows.Tree(m.collapsed)
}

func (m ganttModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case ganttLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.project = msg.project
		m.arrows.Replace(msg.arrows)
		m.items.Replace(msg.items)
		m.milestones = msg.milestones
		m.recomputeRange()
		m.clampCursor()
		return m, nil

	case ganttReloadMsg:
		// External change. An in-flight drag is cancelled, not committed.
		m.drag = nil
		m.guard.Reset()
		m.status = "reloaded after external change"
		return m, m.loadCmd()

	case dragCommittedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		if a, ok := m.arrows.Get(msg.arrowID); ok {
			s, e := msg.start, msg.end
			a.StartDate, a.EndDate = &s, &e
			m.arrows.Update(a)
		}
		m.recomputeRange()
		m.status = "saved"
		return m, nil

	case reorderCommittedMsg:
		if msg.err != nil {
			m.status = "reorder failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		m.arrows.ApplyReorder(msg.ids)
		m.status = "order saved"
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m ganttModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.reorder != nil {
		return m.updateReorderKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.drag != nil {
			// Teardown cancels the drag without committing.
			m.drag = nil
			m.guard.Reset()
			m.status = "drag cancelled"
			return m, nil
		}
		if !m.guard.ConfirmLeave(func() bool { return m.confirmQuit }) {
			m.confirmQuit = true
			m.status = "unsaved drag in progress, press q again to discard"
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()

	case key.Matches(msg, m.keys.Collapse):
		if node, ok := m.cursorNode(); ok {
			m.collapsed[node.Arrow.ID] = !m.collapsed[node.Arrow.ID]
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Reorder):
		if node, ok := m.cursorNode(); ok {
			session := state.NewReorderSession(m.siblingIDs(node.Arrow))
			if session.Begin(node.Arrow.ID) {
				m.reorder = session
				m.status = "reordering: j/k to move, enter to save, esc to cancel"
			}
		}

	case key.Matches(msg, m.keys.Reload):
		return m, m.loadCmd()
	}
	return m, nil
}

func (m ganttModel) updateReorderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	order := m.reorder.Order()
	pos := indexOfID(order, m.reorderDraggedID())

	switch {
	case key.Matches(msg, m.keys.Down):
		if pos >= 0 && pos < len(order)-1 {
			m.reorder.Hover(order[pos+1])
		}
	case key.Matches(msg, m.keys.Up):
		if pos > 0 {
			m.reorder.Hover(order[pos-1])
		}
	case key.Matches(msg, m.keys.Confirm):
		ids, ok := m.reorder.Commit()
		m.reorder = nil
		if !ok {
			m.status = ""
			return m, nil
		}
		return m, m.commitReorderCmd(ids)
	case key.Matches(msg, m.keys.Cancel):
		m.reorder.Cancel()
		m.reorder = nil
		m.status = "reorder cancelled"
	}
	return m, nil
}

func (m *ganttModel) reorderDraggedID() int64 {
	if node, ok := m.cursorNode(); ok {
		return node.Arrow.ID
	}
	return 0
}

func indexOfID(ids []int64, id int64) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// siblingIDs returns the ordered ids of the arrow's sibling group.
func (m *ganttModel) siblingIDs(a *domain.Arrow) []int64 {
	var ids []int64
	for _, other := range m.arrows.All() {
		if sameParent(a.ParentID, other.ParentID) {
			ids = append(ids, other.ID)
		}
	}
	return ids
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (m ganttModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.beginMouseDrag(msg.X, msg.Y), nil

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.drag.MoveTo(msg.X, m.dayWidth)
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		drag := m.drag
		m.drag = nil
		m.guard.Reset()
		start, end, changed := drag.Drop()
		if !changed {
			m.status = ""
			return m, nil
		}
		return m, m.commitDragCmd(drag.ArrowID, start, end)
	}
	return m, nil
}

// beginMouseDrag maps a click onto a bar row and picks the drag mode from
// where inside the bar the press landed: first cell resizes the start, last
// cell resizes the end, anywhere else moves the whole bar.
func (m ganttModel) beginMouseDrag(x, y int) ganttModel {
	row := y - ganttHeaderRows + m.top
	nodes := m.nodes()
	if row < 0 || row >= len(nodes) {
		return m
	}
	a := nodes[row].Arrow
	if !a.HasDates() {
		return m
	}

	relX := x - ganttLabelWidth
	if relX < 0 {
		m.cursor = row
		return m
	}
	bar := timeline.BarFor(*a.StartDate, *a.EndDate, m.rng.Start, m.dayWidth, a.Status)
	if relX < bar.Left || relX >= bar.Left+bar.Width {
		m.cursor = row
		return m
	}

	mode := timeline.DragMove
	switch {
	case relX < bar.Left+m.dayWidth:
		mode = timeline.DragResizeStart
	case relX >= bar.Left+bar.Width-m.dayWidth:
		mode = timeline.DragResizeEnd
	}

	if drag, ok := timeline.BeginDrag(a, mode, x); ok {
		m.drag = drag
		m.guard.Set(true)
		m.cursor = row
		m.status = ""
	}
	return m
}

func (m *ganttModel) cursorNode() (timeline.Node, bool) {
	nodes := m.nodes()
	if m.cursor < 0 || m.cursor >= len(nodes) {
		return timeline.Node{}, false
	}
	return nodes[m.cursor], true
}

func (m *ganttModel) clampCursor() {
	n := len(m.nodes())
	if n == 0 {
		m.cursor, m.top = 0, 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	visible := m.visibleRows()
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+visible {
		m.top = m.cursor - visible + 1
	}
}

// visibleRows is how many tree rows fit under the header and above the
// status line.
func (m *ganttModel) visibleRows() int {
	rows := m.height - ganttHeaderRows - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}
