package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/controller"
	"todo/internal/domain"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldPriority
	fieldOK
	fieldCancel
	fieldCount
)

type formResult int

const (
	formPending formResult = iota
	formSubmit
	formCancel
)

// formModel is the modal used by both Add Task and Edit Task.
type formModel struct {
	heading     string
	edit        bool
	title       textinput.Model
	description textinput.Model
	priority    int
	focus       formField
}

func newFormModel(heading string, edit bool, initial controller.Form) formModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.SetValue(initial.Title)

	description := textinput.New()
	description.Placeholder = "Description"
	description.Prompt = ""
	description.SetValue(initial.Description)

	f := formModel{
		heading:     heading,
		edit:        edit,
		title:       title,
		description: description,
		priority:    domain.ClampPriority(initial.Priority),
	}
	f.setFocus(fieldTitle)
	return f
}

func (f *formModel) setFocus(field formField) {
	f.title.Blur()
	f.description.Blur()
	f.focus = field

	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.description.Focus()
	}
}

// value returns the entered fields. Titles are validated by the store.
func (f formModel) value() controller.Form {
	return controller.Form{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Priority:    f.priority,
	}
}

func (f formModel) update(msg tea.KeyMsg) (formModel, formResult, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return f, formCancel, nil
	case "tab":
		f.setFocus((f.focus + 1) % fieldCount)
		return f, formPending, nil
	case "shift+tab":
		f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
		return f, formPending, nil
	case "enter":
		if f.focus == fieldCancel {
			return f, formCancel, nil
		}
		return f, formSubmit, nil
	}

	if f.focus == fieldPriority {
		form := f.value()
		switch msg.String() {
		case "+", "=", "up", "right":
			form.IncPriority()
		case "-", "down", "left":
			form.DecPriority()
		}
		f.priority = form.Priority
		return f, formPending, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return f, formPending, cmd
}

func (f formModel) view() string {
	field := func(label string, focused bool, body string) string {
		l := labelStyle.Render(label)
		if focused {
			l = selectedStyle.Inherit(labelStyle).Render(label)
		}
		return l + body
	}

	priority := fmt.Sprintf("< %d >", f.priority)
	if f.focus == fieldPriority {
		priority = selectedStyle.Render(priority) + gray(fmt.Sprintf("  (%d-%d)", domain.MinPriority, domain.MaxPriority))
	}

	rows := []string{
		headerStyle.Render(f.heading),
		"",
		field("Title:", f.focus == fieldTitle, f.title.View()),
		field("Description:", f.focus == fieldDescription, f.description.View()),
		field("Priority:", f.focus == fieldPriority, priority),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			button("OK", f.focus == fieldOK),
			" ",
			button("Cancel", f.focus == fieldCancel),
		),
		"",
		gray("tab: next field • enter: confirm • esc: cancel"),
	}
	return modalStyle.Render(strings.Join(rows, "\n"))
}

func button(label string, focused bool) string {
	if focused {
		return focusedButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
