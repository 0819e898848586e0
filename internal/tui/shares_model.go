package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/sharesout/internal/view"
)

// LoadFunc runs one load into vm and reports whether it ended in content.
type LoadFunc func(ctx context.Context, vm *view.ViewModel) error

// sharesLoadedMsg carries the view produced by a finished load.
type sharesLoadedMsg struct {
	vm  *view.ViewModel
	err error
}

// SharesModel is the Bubble Tea model for the shares outstanding view.
type SharesModel struct {
	ctx    context.Context
	locale string
	load   LoadFunc

	vm      *view.ViewModel
	loading *LoadingState
	err     error

	width    int
	height   int
	quitting bool
}

// NewSharesModel returns a model that starts in the loading state and runs load on Init.
func NewSharesModel(ctx context.Context, locale string, load LoadFunc) *SharesModel {
	return &SharesModel{
		ctx:     ctx,
		locale:  locale,
		load:    load,
		vm:      view.New(locale),
		loading: NewLoadingState(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// SetCaption changes the text shown next to the spinner while loading.
func (m *SharesModel) SetCaption(caption string) {
	m.loading.SetMessage(caption)
}

// Init starts the spinner and the first load.
func (m *SharesModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.startLoad())
}

// startLoad resets the view to loading and returns the command performing the load.
// The load writes into its own ViewModel so the running program never shares one.
func (m *SharesModel) startLoad() tea.Cmd {
	m.vm.ShowLoading()
	m.err = nil

	ctx, locale, load := m.ctx, m.locale, m.load
	return func() tea.Msg {
		vm := view.New(locale)
		err := load(ctx, vm)
		return sharesLoadedMsg{vm: vm, err: err}
	}
}

// Update handles messages and updates the model state.
//
//nolint:exhaustive // Only a few key types are bound.
func (m *SharesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sharesLoadedMsg:
		m.vm = msg.vm
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch string(msg.Runes) {
			case "q":
				m.quitting = true
				return m, tea.Quit
			case "r":
				if m.vm.LoaderVisible() {
					return m, nil
				}
				return m, tea.Batch(m.loading.Init(), m.startLoad())
			}
		}
		return m, nil
	}

	if m.vm.LoaderVisible() {
		return m, m.loading.Update(msg)
	}
	return m, nil
}

// View renders the current view.
func (m *SharesModel) View() string {
	if m.quitting {
		return ""
	}
	if m.vm.LoaderVisible() {
		return RenderLoading(m.loading)
	}
	return RenderShares(m.vm, m.width) + "\n" + RenderHelp() + "\n"
}

// ViewModel returns the model's current view state.
func (m *SharesModel) ViewModel() *view.ViewModel {
	return m.vm
}

// Err returns the error of the last finished load, if any.
func (m *SharesModel) Err() error {
	return m.err
}
