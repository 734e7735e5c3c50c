package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pawshelter/donorlog/internal/model"
	"github.com/pawshelter/donorlog/internal/query"
	"github.com/pawshelter/donorlog/internal/tui/themes"
)

type formField int

const (
	fieldDonor formField = iota
	fieldType
	fieldAmount
	fieldDate
	fieldCount
)

// FormModel is the add/edit donation form. The same form serves both flows:
// editing pre-fills every field and remembers the record id.
type FormModel struct {
	today     func() time.Time
	theme     themes.Theme
	donor     textinput.Model
	amount    textinput.Model
	date      textinput.Model
	errors    query.FieldErrors
	editingID int64
	typeIdx   int
	focus     formField
}

// NewFormModel creates a blank donation form.
func NewFormModel(theme themes.Theme, today func() time.Time) FormModel {
	donor := textinput.New()
	donor.Placeholder = "Donor name"
	donor.CharLimit = 80

	amount := textinput.New()
	amount.Placeholder = "Amount or quantity"
	amount.CharLimit = 20

	date := textinput.New()
	date.Placeholder = model.DateLayout
	date.CharLimit = 10

	f := FormModel{
		theme:  theme,
		donor:  donor,
		amount: amount,
		date:   date,
		today:  today,
	}
	f.Reset()
	return f
}

// Reset blanks the form for a new record. The date defaults to today, the
// upper bound the form allows.
func (f *FormModel) Reset() {
	f.editingID = 0
	f.typeIdx = 0
	f.errors = nil
	f.donor.SetValue("")
	f.amount.SetValue("")
	f.date.SetValue(f.today().Format(model.DateLayout))
	f.setFocus(fieldDonor)
}

// Load pre-fills the form with an existing record for editing.
func (f *FormModel) Load(d model.Donation) {
	f.Reset()
	f.editingID = d.ID
	f.donor.SetValue(d.DonorName)
	f.amount.SetValue(d.Amount)
	f.date.SetValue(d.Date)
	for i, dt := range model.DonationTypes() {
		if dt == d.Type {
			f.typeIdx = i
			break
		}
	}
}

// Editing reports whether the form is updating an existing record.
func (f FormModel) Editing() bool {
	return f.editingID != 0
}

// EditingID returns the id of the record being edited, or zero.
func (f FormModel) EditingID() int64 {
	return f.editingID
}

// Form returns the current field values as a candidate form.
func (f FormModel) Form() query.DonationForm {
	return query.DonationForm{
		DonorName: f.donor.Value(),
		Type:      model.DonationTypes()[f.typeIdx],
		Amount:    f.amount.Value(),
		Date:      f.date.Value(),
	}
}

// Submit validates the current fields. On success it returns the candidate
// record (id zero; the caller inserts or updates). On failure it records the
// per-field errors for display and returns false.
//
// The future-date check lives here rather than in query.DonationForm: the
// form is the input widget, and clamping the date to today is its bound.
func (f *FormModel) Submit() (model.Donation, bool) {
	form := f.Form()
	errs := form.Validate()

	if errs["date"] == "" && form.Date != "" {
		if d, err := model.ParseDate(form.Date); err == nil {
			today := f.today()
			limit := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
			if d.After(limit) {
				errs["date"] = "Date cannot be in the future"
			}
		}
	}

	if len(errs) > 0 {
		f.errors = errs
		return model.Donation{}, false
	}

	f.errors = nil
	return form.Donation(), true
}

// Update handles key input for the form.
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return f, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return f, nil
	}

	if f.focus == fieldType {
		switch keyMsg.String() {
		case "left", "h":
			n := len(model.DonationTypes())
			f.typeIdx = (f.typeIdx + n - 1) % n
		case "right", "l", " ":
			f.typeIdx = (f.typeIdx + 1) % len(model.DonationTypes())
		}
		return f, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldDonor:
		f.donor, cmd = f.donor.Update(msg)
	case fieldAmount:
		f.amount, cmd = f.amount.Update(msg)
	case fieldDate:
		f.date, cmd = f.date.Update(msg)
	}
	return f, cmd
}

func (f *FormModel) setFocus(field formField) {
	f.focus = field
	f.donor.Blur()
	f.amount.Blur()
	f.date.Blur()
	switch field {
	case fieldDonor:
		f.donor.Focus()
	case fieldAmount:
		f.amount.Focus()
	case fieldDate:
		f.date.Focus()
	}
}

// View renders the form.
func (f FormModel) View() string {
	title := "Add Donation"
	if f.Editing() {
		title = fmt.Sprintf("Edit Donation #%d", f.editingID)
	}

	var b strings.Builder
	b.WriteString(f.theme.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(f.renderField(fieldDonor, "Donor", f.donor.View(), "donorName"))
	b.WriteString(f.renderField(fieldType, "Type", f.renderTypePicker(), "donationType"))
	b.WriteString(f.renderField(fieldAmount, "Amount", f.amount.View(), "amount"))
	b.WriteString(f.renderField(fieldDate, "Date", f.date.View(), "date"))

	b.WriteString("\n")
	b.WriteString(f.theme.Faint.Render("tab: next field • enter: save • esc: cancel"))

	return f.theme.RoundedBox.Render(b.String())
}

func (f FormModel) renderField(field formField, label, control, errKey string) string {
	style := f.theme.Subtitle
	if f.focus == field {
		style = f.theme.Bold
	}

	line := fmt.Sprintf("%s %s\n", style.Render(fmt.Sprintf("%-8s", label)), control)
	if msg, ok := f.errors[errKey]; ok {
		line += f.theme.StatusError.Render("  "+msg) + "\n"
	}
	return line
}

func (f FormModel) renderTypePicker() string {
	parts := make([]string, 0, len(model.DonationTypes()))
	for i, dt := range model.DonationTypes() {
		info := model.InfoFor(dt)
		text := fmt.Sprintf("%s %s", info.Icon, info.Label)
		if i == f.typeIdx {
			parts = append(parts, f.theme.Selected.Render(" "+text+" "))
		} else {
			parts = append(parts, f.theme.Faint.Render(text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}
