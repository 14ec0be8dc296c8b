package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"safety-board/config"
	"safety-board/grid"
	"safety-board/inspect"
	"safety-board/keys"
	"safety-board/log"
	"safety-board/storage"
	"safety-board/ui"
	"safety-board/ui/layout"
	"safety-board/ui/overlay"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, store config.Store) error {
	h := newHome(ctx, cfg, store)
	if fs, ok := store.(*config.FileStore); ok {
		watcher, err := fs.Watch()
		if err != nil {
			log.WarningLog.Printf("changes from other processes will not be picked up: %v", err)
		} else {
			defer watcher.Close()
			h.storeChanges = watcher.Changed()
		}
	}

	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // press, drag motion and release
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when a help screen is displayed.
	stateHelp
	// stateConfirm is the state when a confirmation modal is displayed.
	stateConfirm
)

func (s state) String() string {
	switch s {
	case stateHelp:
		return "help"
	case stateConfirm:
		return "confirm"
	default:
		return "default"
	}
}

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	appConfig *config.Config
	// adapter persists every accepted board mutation
	adapter *storage.Adapter
	metrics layout.Metrics
	// storeChanges fires when the store file changes on disk
	storeChanges <-chan struct{}
	// reloadPending is set when a store change arrived during a gesture.
	reloadPending bool

	// -- State --

	state state
	board *grid.Board

	// width and height are the terminal size the geometry was computed for.
	width, height int
	sized         bool
	geometry      layout.Geometry

	// pendingWidth and pendingHeight hold the latest size notification not
	// yet applied. A newer one replaces it.
	pendingWidth, pendingHeight int
	hasPending                  bool
	// dirty is set when the layout changed since the geometry was computed.
	dirty          bool
	frameScheduled bool

	// resize is the open splitter session, activeSplitter the strip it drags.
	resize         *grid.ResizeSession
	activeSplitter *layout.Splitter

	drag       grid.DragToken
	dragging   bool
	dropTarget grid.SlotID
	hasTarget  bool

	// statusSeq invalidates hide messages for replaced status text.
	statusSeq int

	// -- UI Components --

	grid   *ui.GridView
	menu   *ui.Menu
	status *ui.StatusBar
	// textOverlay displays the help screen
	textOverlay *overlay.TextOverlay
	// confirmationOverlay asks before a reset
	confirmationOverlay *overlay.ConfirmationOverlay

	inspectErrors *log.Every
}

func newHome(ctx context.Context, cfg *config.Config, store config.Store) *home {
	adapter := storage.NewAdapterFromConfig(store, cfg)

	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		adapter:   adapter,
		metrics: layout.Metrics{
			CellWidthPx:  float64(cfg.CellWidthPx),
			CellHeightPx: float64(cfg.CellHeightPx),
		},
		state:         stateDefault,
		board:         grid.NewBoard(adapter.LoadLayout(), adapter.LoadSlots()),
		grid:          ui.NewGridView(nil),
		menu:          ui.NewMenu(),
		status:        ui.NewStatusBar(),
		inspectErrors: log.NewEvery(10 * time.Second),
	}
	h.board.Subscribe(adapter)
	h.board.Subscribe(h)
	return h
}

// LayoutChanged implements grid.Listener. Geometry is recomputed on the
// next frame.
func (m *home) LayoutChanged(grid.Layout) {
	m.dirty = true
}

// SlotsChanged implements grid.Listener. The view reads the assignment from
// the board, so there is nothing to recompute.
func (m *home) SlotsChanged(grid.Assignment) {}

// Cleared implements grid.Listener.
func (m *home) Cleared() {
	m.dirty = true
}

func (m *home) Init() tea.Cmd {
	return m.waitForStoreChange()
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideStatusMsg:
		if msg.seq == m.statusSeq {
			m.status.Clear()
		}
		return m, nil
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case storeChangedMsg:
		m.reloadPending = true
		m.reloadFromStore()
		return m, m.waitForStoreChange()
	case frameMsg:
		m.frameScheduled = false
		m.flushFrame()
		return m, nil
	case tea.WindowSizeMsg:
		return m, m.handleWindowSize(msg)
	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		m.reloadFromStore()
		return m, cmd
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

// handleWindowSize applies the first size at once so the first frame is
// laid out. Later sizes wait for the next frame.
func (m *home) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	if !m.sized {
		m.sized = true
		m.width, m.height = msg.Width, msg.Height
		m.recompute()
		return nil
	}
	m.pendingWidth, m.pendingHeight = msg.Width, msg.Height
	m.hasPending = true
	return m.requestFrame()
}

// requestFrame schedules one frameMsg. Requests made while one is pending
// are folded into it.
func (m *home) requestFrame() tea.Cmd {
	if m.frameScheduled {
		return nil
	}
	m.frameScheduled = true
	return tea.Tick(m.appConfig.FrameInterval(), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// flushFrame applies the pending size and layout changes.
func (m *home) flushFrame() {
	if m.hasPending {
		m.width, m.height = m.pendingWidth, m.pendingHeight
		m.hasPending = false
		m.dirty = true
	}
	if m.dirty {
		m.recompute()
	}
}

func (m *home) recompute() {
	m.dirty = false
	m.geometry = layout.Compute(m.board.Layout(), m.width, m.height, m.metrics)
	c := m.geometry.Constraints
	m.menu.SetSize(m.width, c.MenuHeight)
	overlayWidth := min(60, max(m.width-4, 20))
	if m.textOverlay != nil {
		m.textOverlay.SetWidth(overlayWidth)
	}
	if m.confirmationOverlay != nil {
		m.confirmationOverlay.SetWidth(min(50, overlayWidth))
	}
	log.LayoutTrace("%dx%d mode=%s root=%.2f content=%+v", m.width, m.height, c.Mode, m.geometry.RootScale, c.Content)
}

func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state != stateDefault {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.handlePress(msg.X, msg.Y)
	case tea.MouseActionMotion:
		return m.handleMotion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return m.handleRelease(msg.X, msg.Y)
	}
	return nil
}

// pointPx converts a cell position to pixels.
func (m *home) pointPx(x, y int) grid.Point {
	px, py := m.metrics.Px(x, y)
	return grid.Point{X: px, Y: py}
}

// extentPx converts the splitter's container length to pixels.
func (m *home) extentPx(sp layout.Splitter) float64 {
	if sp.Orientation() == grid.Vertical {
		return float64(sp.Extent) * m.metrics.CellWidthPx
	}
	return float64(sp.Extent) * m.metrics.CellHeightPx
}

func (m *home) handlePress(x, y int) tea.Cmd {
	// A press while a gesture is open means its release was lost.
	if m.resize != nil || m.dragging {
		log.InputTrace("press at %d,%d ends a stale gesture", x, y)
		m.endGesture()
	}
	if m.board.Locked() {
		return nil
	}

	if sp, ok := m.geometry.SplitterAt(x, y); ok {
		s, err := m.board.BeginResize(sp.Vector, sp.Index, m.pointPx(x, y), m.extentPx(sp))
		if err != nil {
			if !errors.Is(err, grid.ErrLocked) && !errors.Is(err, grid.ErrGestureActive) {
				log.WarningLog.Printf("could not start resize: %v", err)
			}
			return nil
		}
		m.resize = s
		m.activeSplitter = &sp
		log.InputTrace("resize %s/%d from %d,%d", sp.Vector, sp.Index, x, y)
		m.syncMenu()
		return nil
	}

	if slot, ok := m.geometry.HandleAt(x, y); ok {
		token, ok := m.board.BeginDrag(slot)
		if !ok {
			return nil
		}
		m.drag = token
		m.dragging = true
		m.hasTarget = false
		log.InputTrace("drag %s from %d,%d", slot, x, y)
		m.syncMenu()
	}
	return nil
}

func (m *home) handleMotion(x, y int) tea.Cmd {
	switch {
	case m.resize != nil:
		x, y = m.geometry.ClampToContent(x, y)
		m.resize.Move(m.pointPx(x, y))
		return m.requestFrame()
	case m.dragging:
		slot, ok := m.geometry.SlotAt(x, y)
		m.dropTarget = slot
		m.hasTarget = ok && slot != m.drag.From
	}
	return nil
}

func (m *home) handleRelease(x, y int) tea.Cmd {
	switch {
	case m.resize != nil:
		cx, cy := m.geometry.ClampToContent(x, y)
		v := m.resize.Move(m.pointPx(cx, cy))
		id := m.activeSplitter.Vector
		m.endGesture()
		return m.showMessage(fmt.Sprintf("%s %s", id, formatVector(v)))
	case m.dragging:
		token := m.drag
		slot, ok := m.geometry.SlotAt(x, y)
		m.clearGesture()
		if !ok {
			m.board.CancelDrag(token)
			return nil
		}
		if !m.board.Drop(token, slot) {
			return nil
		}
		return m.showMessage(fmt.Sprintf("swapped %s and %s", token.From, slot))
	}
	return nil
}

// endGesture closes whatever gesture is open and applies its last frame.
func (m *home) endGesture() {
	if m.resize != nil {
		m.resize.Close()
	}
	if m.dragging {
		m.board.CancelDrag(m.drag)
	}
	m.clearGesture()
	m.flushFrame()
	m.reloadFromStore()
}

// reloadFromStore applies a pending store change once no gesture is open.
// Our own saves come back here too and are no-ops.
func (m *home) reloadFromStore() {
	if !m.reloadPending || m.resize != nil || m.dragging {
		return
	}
	m.reloadPending = false
	log.Debug("store changed on disk, reloading")
	if m.board.Restore(m.adapter.LoadLayout(), m.adapter.LoadSlots()) {
		log.InfoLog.Printf("reloaded board from store")
		m.dirty = true
		m.flushFrame()
	}
}

func (m *home) waitForStoreChange() tea.Cmd {
	ch := m.storeChanges
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			return storeChangedMsg{}
		}
	}
}

func (m *home) clearGesture() {
	m.resize = nil
	m.activeSplitter = nil
	m.dragging = false
	m.hasTarget = false
	m.syncMenu()
}

func (m *home) syncMenu() {
	switch {
	case m.resize != nil || m.dragging:
		m.menu.SetState(ui.StateGesture)
	case m.board.Locked():
		m.menu.SetState(ui.StateLocked)
	default:
		m.menu.SetState(ui.StateEditing)
	}
}

func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.state != stateDefault {
		return nil
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	// Get the menu highlight command - this is batched with the action command later
	highlightCmd := m.handleMenuHighlighting(msg)

	switch m.state {
	case stateHelp:
		if m.textOverlay.HandleKeyPress(msg) {
			m.textOverlay = nil
			m.state = stateDefault
		}
		return m, nil
	case stateConfirm:
		if !m.confirmationOverlay.HandleKeyPress(msg) {
			return m, nil
		}
		confirmed := m.confirmationOverlay.Confirmed
		m.confirmationOverlay = nil
		m.state = stateDefault
		if confirmed {
			return m, m.resetBoard()
		}
		return m, nil
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyEsc:
		m.endGesture()
		return m, highlightCmd
	case keys.KeyLock:
		m.endGesture()
		locked := m.board.ToggleLock()
		m.syncMenu()
		if locked {
			return m, tea.Batch(highlightCmd, m.showMessage("board locked"))
		}
		return m, tea.Batch(highlightCmd, m.showMessage("board unlocked: drag a title to swap, drag a splitter to resize"))
	case keys.KeyReset:
		if m.board.Locked() {
			return m, highlightCmd
		}
		m.endGesture()
		m.state = stateConfirm
		m.confirmationOverlay = overlay.NewConfirmationOverlay("Reset the layout and slot assignment to the defaults?")
		m.confirmationOverlay.SetWidth(min(50, max(m.width-4, 20)))
		return m, highlightCmd
	case keys.KeyCopy:
		data, err := m.adapter.Export()
		if err != nil {
			return m, m.handleError(fmt.Errorf("failed to export layout: %w", err))
		}
		if err := copyToClipboard(string(data)); err != nil {
			return m, m.handleError(fmt.Errorf("failed to copy layout: %w", err))
		}
		return m, tea.Batch(highlightCmd, m.showMessage("copied layout to clipboard"))
	case keys.KeyHelp:
		m.endGesture()
		m.state = stateHelp
		m.textOverlay = overlay.NewTextOverlay("Safety Board", helpLines)
		m.textOverlay.SetWidth(min(60, max(m.width-4, 20)))
		return m, highlightCmd
	}
	return m, nil
}

// resetBoard restores the defaults. The adapter drops the persisted values.
func (m *home) resetBoard() tea.Cmd {
	m.board.Reset()
	m.clearGesture()
	m.flushFrame()
	log.InfoLog.Printf("board reset to defaults")
	return m.showMessage("layout reset")
}

// handleQuit closes any open gesture so its last state is persisted.
func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.endGesture()
	return m, tea.Quit
}

var helpLines = []string{
	"The board starts locked. Press l to unlock it.",
	"",
	"Unlocked:",
	"  drag a panel title onto another slot to swap them",
	"  drag the lines between panels to resize",
	"  r resets the layout and slots",
	"",
	"y copies the saved layout as JSON",
	"esc cancels a drag, q quits",
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideStatusMsg clears the status line if it still shows message seq.
type hideStatusMsg struct {
	seq int
}

// storeChangedMsg is sent when the store file changed on disk.
type storeChangedMsg struct{}

// frameMsg applies coalesced size and layout changes.
type frameMsg struct{}

const statusTimeout = 3 * time.Second

func (m *home) hideStatusAfter() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(statusTimeout):
		}
		return hideStatusMsg{seq: seq}
	}
}

func (m *home) showMessage(text string) tea.Cmd {
	m.status.SetMessage(text)
	return m.hideStatusAfter()
}

// handleError handles all errors which get bubbled up to the app. It logs the
// error, shows it in the status bar and clears it after a few seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.status.SetError(err)
	return m.hideStatusAfter()
}

func (m *home) gridState() ui.GridState {
	return ui.GridState{
		Geometry:       m.geometry,
		Slots:          m.board.Slots(),
		Locked:         m.board.Locked(),
		Dragging:       m.dragging,
		DragFrom:       m.drag.From,
		HasTarget:      m.hasTarget,
		DropTarget:     m.dropTarget,
		ActiveSplitter: m.activeSplitter,
	}
}

func (m *home) View() string {
	start := time.Now()
	defer func() {
		log.GetProfiler().RecordFrame(time.Since(start))
	}()

	if !m.sized {
		return ""
	}

	gs := m.gridState()
	sections := []string{ui.Header(m.width, gs.Locked, m.geometry)}
	if !m.geometry.Constraints.Content.Empty() {
		sections = append(sections, m.grid.Render(gs))
	}
	sections = append(sections, m.status.Render(m.width, gs), m.menu.String())
	mainView := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if inspect.IsEnabled() {
		m.writeInspectSnapshot(gs)
	}

	switch m.state {
	case stateHelp:
		if m.textOverlay == nil {
			log.ErrorLog.Printf("text overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true)
	case stateConfirm:
		if m.confirmationOverlay == nil {
			log.ErrorLog.Printf("confirmation overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.confirmationOverlay.Render(), mainView, true)
	}
	return mainView
}

func (m *home) writeInspectSnapshot(gs ui.GridState) {
	root := inspect.NewNode("Home").
		WithBounds(0, 0, m.width, m.height).
		AddChild(ui.InspectGrid(gs)).
		AddChild(m.status.InspectNode()).
		AddChild(m.menu.InspectNode())

	snap := inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithAppState(inspect.AppStateInfo{
			State:         m.state.String(),
			HasOverlay:    m.state != stateDefault,
			Locked:        gs.Locked,
			Gesture:       m.board.Snapshot().Gesture.String(),
			StatusMessage: m.status.Message(),
		}).
		WithLayout(m.geometry, m.board.Layout(), gs.Slots).
		WithComponents(root).
		WithRegisteredStyles()

	if err := inspect.WriteSnapshot(snap); err != nil && m.inspectErrors.ShouldLog() {
		log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
	}
}

func formatVector(v grid.Vector) string {
	parts := make([]string, len(v))
	for i, p := range v {
		parts[i] = fmt.Sprintf("%.1f", p)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
