package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pawshelter/donorlog/internal/export"
	"github.com/pawshelter/donorlog/internal/model"
	"github.com/pawshelter/donorlog/internal/query"
)

// View renders the application.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateForm:
		return m.theme.Box.Render(m.form.View())
	case StateFilter:
		return m.theme.Box.Render(m.filters.View())
	case StateHelp:
		return m.theme.Box.Render(m.renderHelp())
	default:
	}

	sections := []string{
		m.renderHeader(),
		m.renderStats(),
		m.renderCriteriaLine(),
		m.table.View(),
		m.renderSummaryLine(),
		m.renderStatusBar(),
	}

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, nonEmpty...))
}

func (m Model) renderHeader() string {
	return m.theme.Title.Render("🐾 Paws & Hearts — Donation Log")
}

// renderStats shows the dashboard numbers computed over the whole store, not
// the filtered view.
func (m Model) renderStats() string {
	stats := query.ComputeStats(m.store.List(), m.now())

	cards := []string{
		fmt.Sprintf("%s %s", m.theme.StatusSuccess.Render("Total raised:"),
			m.theme.Bold.Render(export.FormatCurrency(stats.TotalMoneyDonated))),
		fmt.Sprintf("%s %s", m.theme.StatusInfo.Render("Donations:"),
			m.theme.Bold.Render(fmt.Sprintf("%d", stats.TotalDonations))),
		fmt.Sprintf("%s %s", m.theme.StatusWarning.Render("This month:"),
			m.theme.Bold.Render(fmt.Sprintf("%d", stats.MonthlyDonations))),
	}
	return strings.Join(cards, m.theme.Faint.Render("  │  "))
}

// renderCriteriaLine summarizes the active criteria so the user can tell why
// records are hidden.
func (m Model) renderCriteriaLine() string {
	parts := []string{
		fmt.Sprintf("Type: %s", typeFilterLabel(m.criteria.TypeFilter)),
		fmt.Sprintf("Sort: %s %s", sortFieldLabel(m.criteria.SortBy), orderArrow(m.criteria.SortOrder)),
	}

	if m.state == StateSearch {
		parts = append(parts, fmt.Sprintf("Search: %s", m.searchInput.View()))
	} else if m.criteria.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", m.criteria.SearchTerm))
	}

	if m.criteria.HasAdvancedFilters() {
		parts = append(parts, m.theme.StatusInfo.Render("advanced filters active"))
	}

	return m.theme.Subtitle.Render(strings.Join(parts, "  •  "))
}

// renderSummaryLine shows the single-type summary when one type is selected.
// Counts come from the whole store, not the filtered view.
func (m Model) renderSummaryLine() string {
	t := m.criteria.TypeFilter
	if t == query.TypeAll || t == "" {
		return m.theme.Faint.Render(fmt.Sprintf("%d of %d donations shown", len(m.visible), m.store.Len()))
	}

	summary := query.SummarizeType(m.store.List(), t)
	info := model.InfoFor(t)

	var total string
	if t == model.TypeMoney {
		total = export.FormatCurrency(summary.Total)
	} else {
		total = fmt.Sprintf("%s items", trimFloat(summary.Total))
	}
	return m.theme.Faint.Render(fmt.Sprintf("%s %s: %d donations, %s total", info.Icon, info.Label, summary.Count, total))
}

func (m Model) renderStatusBar() string {
	hints := "a add • e edit • d delete • / search • t type • s sort • o order • f filters • x export • ? help • q quit"

	if m.status == "" {
		return m.theme.Faint.Render(hints)
	}

	style := m.theme.StatusSuccess
	if m.statusIsErr {
		style = m.theme.StatusError
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status), m.theme.Faint.Render(hints))
}

func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"↑/k, ↓/j", "move the cursor"},
		{"a", "add a donation"},
		{"e / enter", "edit the selected donation"},
		{"d", "delete the selected donation"},
		{"/", "search donors and types"},
		{"t", "cycle the type filter"},
		{"s", "cycle the sort field (starts ascending)"},
		{"o", "flip the sort order"},
		{"f", "open the advanced filter panel"},
		{"c", "clear date and amount filters"},
		{"x", "export the current view as CSV"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keys"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n", m.theme.Bold.Render(fmt.Sprintf("%-10s", r.key)), m.theme.Normal.Render(r.desc)))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("press any key to close"))
	return m.theme.RoundedBox.Render(b.String())
}

func typeFilterLabel(t model.DonationType) string {
	if t == query.TypeAll || t == "" {
		return "All"
	}
	info := model.InfoFor(t)
	return fmt.Sprintf("%s %s", info.Icon, info.Label)
}

func sortFieldLabel(f query.SortField) string {
	switch f {
	case query.SortByAmount:
		return "Amount"
	case query.SortByDonor:
		return "Donor"
	case query.SortByType:
		return "Type"
	default:
		return "Date"
	}
}

func orderArrow(o query.SortOrder) string {
	if o == query.SortAsc {
		return "↑"
	}
	return "↓"
}

// trimFloat renders item counts without a trailing ".00" when whole.
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
