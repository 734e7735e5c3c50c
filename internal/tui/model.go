package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pawshelter/donorlog/internal/common"
	"github.com/pawshelter/donorlog/internal/export"
	"github.com/pawshelter/donorlog/internal/model"
	"github.com/pawshelter/donorlog/internal/query"
	"github.com/pawshelter/donorlog/internal/store"
	"github.com/pawshelter/donorlog/internal/tui/themes"
)

// State represents the current state of the TUI.
type State int

// States.
const (
	StateList State = iota
	StateForm
	StateFilter
	StateSearch
	StateConfirmDelete
	StateHelp
)

// exportResultMsg reports the outcome of a CSV export.
type exportResultMsg struct {
	err  error
	path string
}

// Model holds the main TUI state. The store is authoritative; visible is the
// derived view recomputed from store + criteria after every change.
type Model struct {
	now         func() time.Time
	store       *store.DonationStore
	theme       themes.Theme
	keymap      KeyMap
	criteria    query.Criteria
	visible     []model.Donation
	table       table.Model
	searchInput textinput.Model
	form        FormModel
	filters     FilterModel
	status      string
	statusIsErr bool
	deleteID    int64
	width       int
	height      int
	state       State
	quitting    bool
}

// Config holds the TUI configuration.
type Config struct {
	Now         func() time.Time
	Store       *store.DonationStore
	Theme       themes.Theme
	SeedSamples bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Store == nil {
		cfg.Store = store.New()
	}
	if cfg.SeedSamples && cfg.Store.Len() == 0 {
		cfg.Store.Seed(model.SampleDonations())
	}

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Donor", Width: 24},
		{Title: "Type", Width: 22},
		{Title: "Amount", Width: 14},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cfg.Theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = cfg.Theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search donors and types..."
	searchInput.CharLimit = 50

	m := Model{
		now:         cfg.Now,
		store:       cfg.Store,
		theme:       cfg.Theme,
		keymap:      DefaultKeyMap(),
		criteria:    query.DefaultCriteria(),
		table:       t,
		searchInput: searchInput,
		form:        NewFormModel(cfg.Theme, cfg.Now),
		filters:     NewFilterModel(cfg.Theme),
		state:       StateList,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// refresh recomputes the derived view from the store and criteria. Called
// after every store mutation or criteria change; the derived list is never
// cached across changes.
func (m *Model) refresh() {
	m.visible = query.Derive(m.store.List(), m.criteria)

	rows := make([]table.Row, len(m.visible))
	for i, d := range m.visible {
		info := model.InfoFor(d.Type)
		rows[i] = table.Row{
			d.Date,
			d.DonorName,
			fmt.Sprintf("%s %s", info.Icon, info.Label),
			export.DisplayAmount(d),
		}
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// selected returns the donation under the cursor.
func (m Model) selected() (model.Donation, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return model.Donation{}, false
	}
	return m.visible[i], true
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(4, m.height-14))
		return m, nil

	case exportResultMsg:
		if msg.err != nil {
			common.LogError(msg.err, "CSV export failed", common.Fields{"path": msg.path})
			m.setStatus(fmt.Sprintf("Export failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Exported %d donations to %s", len(m.visible), msg.path), false)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateList:
			return m.updateList(msg)
		case StateForm:
			return m.updateForm(msg)
		case StateFilter:
			return m.updateFilter(msg)
		case StateSearch:
			return m.updateSearch(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		case StateHelp:
			m.state = StateList
			return m, nil
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keymap
	switch {
	case key.Matches(msg, km.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, km.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, km.Add):
		m.form.Reset()
		m.state = StateForm
		return m, nil

	case key.Matches(msg, km.Edit):
		if d, ok := m.selected(); ok {
			m.form.Load(d)
			m.state = StateForm
		}
		return m, nil

	case key.Matches(msg, km.Delete):
		if d, ok := m.selected(); ok {
			m.deleteID = d.ID
			m.state = StateConfirmDelete
		}
		return m, nil

	case key.Matches(msg, km.Search):
		m.searchInput.SetValue(m.criteria.SearchTerm)
		m.searchInput.Focus()
		m.state = StateSearch
		return m, nil

	case key.Matches(msg, km.CycleType):
		m.criteria = m.criteria.Merge(query.Patch{TypeFilter: nextTypeFilter(m.criteria.TypeFilter)})
		m.refresh()
		return m, nil

	case key.Matches(msg, km.CycleSort):
		field := nextSortField(m.criteria.SortBy)
		order := query.SortAsc
		m.criteria = m.criteria.Merge(query.Patch{SortBy: &field, SortOrder: &order})
		m.refresh()
		return m, nil

	case key.Matches(msg, km.ToggleOrder):
		order := query.SortAsc
		if m.criteria.SortOrder == query.SortAsc {
			order = query.SortDesc
		}
		m.criteria = m.criteria.Merge(query.Patch{SortOrder: &order})
		m.refresh()
		return m, nil

	case key.Matches(msg, km.ToggleFilter):
		m.filters.LoadFrom(m.criteria)
		m.state = StateFilter
		return m, nil

	case key.Matches(msg, km.ClearFilters):
		m.criteria = m.criteria.ClearAdvanced()
		m.refresh()
		m.setStatus("Advanced filters cleared", false)
		return m, nil

	case key.Matches(msg, km.Export):
		return m, m.exportCSV()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateList
		return m, nil

	case "enter":
		candidate, ok := m.form.Submit()
		if !ok {
			return m, nil
		}
		if m.form.Editing() {
			if err := m.store.Update(m.form.EditingID(), candidate); err != nil {
				m.setStatus(fmt.Sprintf("Update failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("Updated donation from %s", candidate.DonorName), false)
			}
		} else {
			d := m.store.Insert(candidate)
			m.setStatus(fmt.Sprintf("Recorded donation #%d from %s", d.ID, d.DonorName), false)
		}
		m.state = StateList
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateList
		return m, nil

	case "enter":
		m.criteria = m.criteria.Merge(m.filters.Patch())
		m.refresh()
		m.state = StateList
		return m, nil

	case "ctrl+r":
		m.filters.Clear()
		return m, nil
	}

	var cmd tea.Cmd
	m.filters, cmd = m.filters.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Abandon the edit, keep the previous term.
		m.searchInput.Blur()
		m.state = StateList
		return m, nil

	case "enter":
		term := m.searchInput.Value()
		m.criteria = m.criteria.Merge(query.Patch{SearchTerm: &term})
		m.searchInput.Blur()
		m.refresh()
		m.state = StateList
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.store.Delete(m.deleteID); err != nil {
			m.setStatus(fmt.Sprintf("Delete failed: %v", err), true)
		} else {
			m.setStatus(fmt.Sprintf("Deleted donation #%d", m.deleteID), false)
		}
		m.deleteID = 0
		m.state = StateList
		m.refresh()
		return m, nil

	case "n", "N", "esc":
		m.deleteID = 0
		m.state = StateList
		return m, nil
	}
	return m, nil
}

// exportCSV writes the current derived view to a dated CSV file in the
// working directory. The projection itself is pure; only this command
// touches the filesystem.
func (m Model) exportCSV() tea.Cmd {
	donations := make([]model.Donation, len(m.visible))
	copy(donations, m.visible)
	path := export.DefaultFilename(m.now())

	return func() tea.Msg {
		content := export.Render(donations) + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return exportResultMsg{err: err, path: path}
		}
		return exportResultMsg{path: path}
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// nextTypeFilter cycles all -> money -> food -> ... -> other -> all.
func nextTypeFilter(current model.DonationType) *model.DonationType {
	order := append([]model.DonationType{query.TypeAll}, model.DonationTypes()...)
	next := order[0]
	for i, t := range order {
		if t == current {
			next = order[(i+1)%len(order)]
			break
		}
	}
	return &next
}

// nextSortField cycles date -> amount -> donor -> type -> date.
func nextSortField(current query.SortField) query.SortField {
	order := []query.SortField{query.SortByDate, query.SortByAmount, query.SortByDonor, query.SortByType}
	for i, f := range order {
		if f == current {
			return order[(i+1)%len(order)]
		}
	}
	return query.SortByDate
}
