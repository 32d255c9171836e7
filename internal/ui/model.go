package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"parkgrip/internal/config"
	"parkgrip/internal/directory"
	"parkgrip/internal/domain"
	"parkgrip/internal/ui/input"
	"parkgrip/internal/ui/input/types"
	"parkgrip/internal/ui/views"
)

// Model is the bubbletea model. It owns no park data itself: every view
// is rendered from the directory, and every filter key becomes a
// directory call.
type Model struct {
	ctx    context.Context
	dir    *directory.Directory
	config *config.Config
	logger *zap.Logger

	width  int
	height int

	help         help.Model
	spinner      spinner.Model
	renderer     *views.Renderer
	inputHandler *input.Handler

	focus         types.Pane
	parkCursor    int
	parkOffset    int
	amenityCursor int
	amenityOffset int

	showHelp      bool
	detail        string
	statusMessage string
}

// NewModel creates a new UI model. The directory is loaded by Init.
func NewModel(ctx context.Context, dir *directory.Directory, cfg *config.Config, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		ctx:          ctx,
		dir:          dir,
		config:       cfg,
		logger:       logger.Named("ui"),
		help:         help.New(),
		spinner:      sp,
		renderer:     views.NewRenderer(cfg.UISettings.ShowAmenities),
		inputHandler: input.New(types.DefaultKeyMap()),
		focus:        types.PaneParks,
	}
}

// Init starts the one-time dataset load and the loading spinner
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadParks(m.ctx, m.dir))
}

// loadParks runs the directory load off the event loop
func loadParks(ctx context.Context, dir *directory.Directory) tea.Cmd {
	return func() tea.Msg {
		err := dir.Load(ctx)
		if errors.Is(err, directory.ErrAlreadyLoaded) {
			err = nil
		}
		return parksLoadedMsg{err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampCursors()
		return m, nil

	case parksLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("showing empty directory after load failure", zap.Error(msg.err))
		} else {
			m.logger.Info("directory ready", zap.Int("parks", len(m.dir.AllParks())))
		}
		m.clampCursors()
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
			m.statusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		m.statusMessage = ""

		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// processAction executes one input action against the directory or the view state
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.QuitAction:
		return tea.Quit

	case types.NavigateAction:
		m.navigate(a.Direction)

	case types.CyclePaneAction:
		if m.focus == types.PaneParks {
			m.focus = types.PaneAmenities
		} else {
			m.focus = types.PaneParks
		}

	case types.UpdateTextAction:
		m.dir.SetSearchTerm(a.Text)
		m.resetParkCursor()

	case types.SubmitTextAction:
		if a.Mode == types.ModeSearch {
			m.dir.SetSearchTerm(a.Text)
			m.clampCursors()
		}

	case types.CancelTextAction:
		m.dir.SetSearchTerm(a.Restore)
		m.clampCursors()

	case types.ToggleAmenityAction:
		m.dir.ToggleAmenity(a.Amenity)
		m.resetParkCursor()

	case types.OnlyAmenityAction:
		selected := m.dir.SelectedAmenities()
		if len(selected) == 1 && selected[0] == a.Amenity {
			m.dir.FilterByAmenity("")
		} else {
			m.dir.FilterByAmenity(a.Amenity)
		}
		m.resetParkCursor()

	case types.ClearFiltersAction:
		m.dir.ClearFilters()
		m.resetParkCursor()

	case types.OpenDetailAction:
		for _, p := range m.dir.VisibleParks() {
			if p.Name == a.ParkName {
				m.detail = renderDetail(p, m.dir.SelectedAmenities(), m.width)
				break
			}
		}

	case types.ClosePopupAction:
		m.detail = ""
		m.showHelp = false

	case types.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case types.OpenPagerAction:
		parks := m.dir.VisibleParks()
		if len(parks) == 0 {
			m.statusMessage = "Nothing to show in the pager"
			return nil
		}
		return openPager(m.title(), parks)
	}
	return nil
}

func (m *Model) navigate(direction string) {
	rows := views.ListHeight(m.height)

	cursor, n := &m.parkCursor, len(m.dir.VisibleParks())
	if m.focus == types.PaneAmenities {
		cursor, n = &m.amenityCursor, len(m.dir.Amenities())
	}
	if n == 0 {
		*cursor = 0
		return
	}

	switch direction {
	case "up":
		*cursor--
	case "down":
		*cursor++
	case "pageup":
		*cursor -= rows
	case "pagedown":
		*cursor += rows
	case "home":
		*cursor = 0
	case "end":
		*cursor = n - 1
	}
	m.clampCursors()
}

func (m *Model) resetParkCursor() {
	m.parkCursor = 0
	m.parkOffset = 0
	m.clampCursors()
}

// clampCursors keeps both cursors inside their lists and scrolls to them
func (m *Model) clampCursors() {
	rows := views.ListHeight(m.height)
	m.parkCursor, m.parkOffset = follow(m.parkCursor, m.parkOffset, len(m.dir.VisibleParks()), rows)
	m.amenityCursor, m.amenityOffset = follow(m.amenityCursor, m.amenityOffset, len(m.dir.Amenities()), rows)
	if len(m.dir.Amenities()) == 0 {
		m.focus = types.PaneParks
	}
}

func follow(cursor, offset, n, rows int) (int, int) {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+rows {
		offset = cursor - rows + 1
	}
	if offset < 0 {
		offset = 0
	}
	return cursor, offset
}

func (m *Model) loading() bool {
	s := m.dir.Status()
	return s == domain.StatusNotLoaded || s == domain.StatusLoading
}

func (m *Model) title() string {
	if m.config.UISettings.Title != "" {
		return m.config.UISettings.Title
	}
	return "parkgrip"
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:             m.width,
		Height:            m.height,
		Title:             m.title(),
		City:              m.config.UISettings.City,
		Status:            m.dir.Status(),
		Spinner:           m.spinner.View(),
		Parks:             m.dir.VisibleParks(),
		TotalParks:        len(m.dir.AllParks()),
		Amenities:         m.dir.Amenities(),
		SelectedAmenities: m.dir.SelectedAmenities(),
		SearchTerm:        m.dir.SearchTerm(),
		Focus:             m.focus,
		ParkCursor:        m.parkCursor,
		ParkOffset:        m.parkOffset,
		AmenityCursor:     m.amenityCursor,
		AmenityOffset:     m.amenityOffset,
		StatusMessage:     m.statusMessage,
		HelpView:          m.help.ShortHelpView(m.inputHandler.Keys().ShortHelp()),
	}
	state.ShowAmenityPane = len(state.Amenities) > 0
	if err := m.dir.LoadErr(); err != nil {
		state.LoadError = err.Error()
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.Searching = true
		state.SearchInput = ti.View()
	}

	switch {
	case m.detail != "":
		state.Popup = m.detail
	case m.showHelp:
		state.Popup = m.helpContent()
	}

	return m.renderer.Render(state)
}

func (m *Model) helpContent() string {
	styles := m.renderer.Styles()
	full := m.help
	full.ShowAll = true
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(m.title()+" help"),
		"",
		full.FullHelpView(m.inputHandler.Keys().FullHelp()),
		"",
		styles.Dim.Render("Amenity filters combine: a park must offer every checked amenity."),
		styles.Dim.Render("o narrows to a single amenity; press it again to clear."),
		"",
		styles.Dim.Render("esc to close"),
	)
}
