package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawshelter/donorlog/internal/model"
	"github.com/pawshelter/donorlog/internal/query"
	"github.com/pawshelter/donorlog/internal/tui/themes"
)

type filterField int

const (
	filterDateFrom filterField = iota
	filterDateTo
	filterAmountMin
	filterAmountMax
	filterFieldCount
)

// FilterModel is the advanced filter panel: date range and amount range
// bounds, all optional. Applying the panel produces a criteria patch.
type FilterModel struct {
	theme     themes.Theme
	dateFrom  textinput.Model
	dateTo    textinput.Model
	amountMin textinput.Model
	amountMax textinput.Model
	focus     filterField
}

// NewFilterModel creates the advanced filter panel.
func NewFilterModel(theme themes.Theme) FilterModel {
	mk := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		return in
	}

	f := FilterModel{
		theme:     theme,
		dateFrom:  mk(model.DateLayout, 10),
		dateTo:    mk(model.DateLayout, 10),
		amountMin: mk("0", 20),
		amountMax: mk("10000", 20),
	}
	f.setFocus(filterDateFrom)
	return f
}

// LoadFrom pre-fills the panel from the current criteria.
func (f *FilterModel) LoadFrom(c query.Criteria) {
	f.dateFrom.SetValue(c.DateFrom)
	f.dateTo.SetValue(c.DateTo)
	f.amountMin.SetValue(c.AmountMin)
	f.amountMax.SetValue(c.AmountMax)
	f.setFocus(filterDateFrom)
}

// Patch returns the criteria patch the panel currently describes. Every bound
// is included; blank inputs clear the corresponding bound.
func (f FilterModel) Patch() query.Patch {
	dateFrom := strings.TrimSpace(f.dateFrom.Value())
	dateTo := strings.TrimSpace(f.dateTo.Value())
	amountMin := strings.TrimSpace(f.amountMin.Value())
	amountMax := strings.TrimSpace(f.amountMax.Value())
	return query.Patch{
		DateFrom:  &dateFrom,
		DateTo:    &dateTo,
		AmountMin: &amountMin,
		AmountMax: &amountMax,
	}
}

// Clear blanks every bound.
func (f *FilterModel) Clear() {
	f.dateFrom.SetValue("")
	f.dateTo.SetValue("")
	f.amountMin.SetValue("")
	f.amountMax.SetValue("")
}

// Update handles key input for the panel.
func (f FilterModel) Update(msg tea.Msg) (FilterModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % filterFieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + filterFieldCount - 1) % filterFieldCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case filterDateFrom:
		f.dateFrom, cmd = f.dateFrom.Update(msg)
	case filterDateTo:
		f.dateTo, cmd = f.dateTo.Update(msg)
	case filterAmountMin:
		f.amountMin, cmd = f.amountMin.Update(msg)
	case filterAmountMax:
		f.amountMax, cmd = f.amountMax.Update(msg)
	}
	return f, cmd
}

func (f *FilterModel) setFocus(field filterField) {
	f.focus = field
	f.dateFrom.Blur()
	f.dateTo.Blur()
	f.amountMin.Blur()
	f.amountMax.Blur()
	switch field {
	case filterDateFrom:
		f.dateFrom.Focus()
	case filterDateTo:
		f.dateTo.Focus()
	case filterAmountMin:
		f.amountMin.Focus()
	case filterAmountMax:
		f.amountMax.Focus()
	}
}

// View renders the panel.
func (f FilterModel) View() string {
	var b strings.Builder
	b.WriteString(f.theme.Title.Render("Advanced Filters"))
	b.WriteString("\n")

	rows := []struct {
		field   filterField
		label   string
		control string
	}{
		{filterDateFrom, "From", f.dateFrom.View()},
		{filterDateTo, "To", f.dateTo.View()},
		{filterAmountMin, "Min amt", f.amountMin.View()},
		{filterAmountMax, "Max amt", f.amountMax.View()},
	}
	for _, row := range rows {
		style := f.theme.Subtitle
		if f.focus == row.field {
			style = f.theme.Bold
		}
		b.WriteString(fmt.Sprintf("%s %s\n", style.Render(fmt.Sprintf("%-8s", row.label)), row.control))
	}

	b.WriteString("\n")
	b.WriteString(f.theme.Faint.Render("tab: next field • enter: apply • ctrl+r: clear • esc: close"))

	return f.theme.RoundedBox.Render(b.String())
}
