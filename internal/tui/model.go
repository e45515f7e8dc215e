package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"todo/internal/config"
	"todo/internal/controller"
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeDialog
)

type focusArea int

const (
	focusList focusArea = iota
	focusControls
)

type control int

const (
	controlAdd control = iota
	controlEdit
	controlDelete
	controlComplete
	controlCount
)

var controlLabels = [controlCount]string{
	controlAdd:      "Add Task",
	controlEdit:     "Edit Task",
	controlDelete:   "Delete Task",
	controlComplete: "Mark Complete",
}

// Model is the bubbletea model for the task window
type Model struct {
	ctx  context.Context
	ctrl *controller.Controller
	cfg  config.DisplayConfig
	log  logrus.FieldLogger

	mode    mode
	focus   focusArea
	control control

	tasks  list.Model
	detail string
	form   formModel
	dialog *controller.Dialog

	width  int
	height int
}

// New builds the window model and loads the current rows
func New(ctx context.Context, ctrl *controller.Controller, cfg config.DisplayConfig, log logrus.FieldLogger) Model {
	tasks := list.New(nil, taskDelegate{selected: ctrl.SelectedID}, 0, 0)
	tasks.SetShowTitle(false)
	tasks.SetShowStatusBar(false)
	tasks.SetFilteringEnabled(false)
	tasks.SetShowHelp(false)
	tasks.KeyMap.Quit.SetEnabled(false)
	tasks.Styles.NoItems = mutedStyle

	m := Model{
		ctx:   ctx,
		ctrl:  ctrl,
		cfg:   cfg,
		log:   log,
		tasks: tasks,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.cfg.WindowTitle)
}

// refresh reloads rows and the detail pane from the controller
func (m *Model) refresh() {
	rows, err := m.ctrl.Rows(m.ctx)
	if err != nil {
		m.log.WithError(err).Error("failed to load tasks")
		m.showDialog(controller.ErrorDialog("Could not load tasks."))
		return
	}

	cursor := m.tasks.Index()
	m.tasks.SetItems(toItems(rows))
	if id, ok := m.ctrl.SelectedID(); ok {
		for i, r := range rows {
			if r.ID == id {
				cursor = i
				break
			}
		}
	}
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor >= 0 {
		m.tasks.Select(cursor)
	}

	m.detail = m.ctrl.Detail(m.ctx)
}

func (m *Model) showDialog(d *controller.Dialog) {
	if d == nil {
		m.mode = modeBrowse
		return
	}
	m.dialog = d
	m.mode = modeDialog
}

// selectCursor makes the task under the list cursor the selection
func (m *Model) selectCursor() {
	item, ok := m.tasks.SelectedItem().(taskItem)
	if !ok {
		return
	}
	if err := m.ctrl.Select(m.ctx, item.ID); err != nil {
		m.log.WithError(err).WithField("task_id", item.ID).Debug("selection failed")
	}
	m.refresh()
}

func (m *Model) setSizes() {
	listWidth := m.listWidth()
	paneHeight := m.height - 8
	if paneHeight < 3 {
		paneHeight = 3
	}
	m.tasks.SetSize(listWidth-4, paneHeight)
}

func (m Model) listWidth() int {
	if m.cfg.ListWidth > 0 {
		return m.cfg.ListWidth
	}
	if m.width > 0 {
		return m.width / 2
	}
	return 40
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setSizes()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.mode {
		case modeDialog:
			return m.updateDialog(msg)
		case modeForm:
			return m.updateForm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "shift+tab":
		if m.focus == focusList {
			m.focus = focusControls
		} else {
			m.focus = focusList
		}
		return m, nil
	}

	if m.focus == focusList {
		switch msg.String() {
		case "up":
			if _, ok := m.ctrl.SelectedID(); ok {
				m.tasks.CursorUp()
			}
			m.selectCursor()
		case "down":
			if _, ok := m.ctrl.SelectedID(); ok {
				m.tasks.CursorDown()
			}
			m.selectCursor()
		case "enter", " ":
			m.selectCursor()
		}
		return m, nil
	}

	switch msg.String() {
	case "left":
		m.control = (m.control - 1 + controlCount) % controlCount
	case "right":
		m.control = (m.control + 1) % controlCount
	case "enter", " ":
		return m.press(m.control)
	}
	return m, nil
}

// press runs the control as if it had been clicked
func (m Model) press(c control) (tea.Model, tea.Cmd) {
	m.log.WithField("control", controlLabels[c]).Debug("control pressed")

	switch c {
	case controlAdd:
		m.form = newFormModel(controlLabels[controlAdd], false, m.ctrl.NewAddForm())
		m.mode = modeForm
	case controlEdit:
		form, dialog := m.ctrl.NewEditForm(m.ctx)
		if dialog != nil {
			m.showDialog(dialog)
			m.refresh()
			return m, nil
		}
		m.form = newFormModel(controlLabels[controlEdit], true, form)
		m.mode = modeForm
	case controlDelete:
		m.showDialog(m.ctrl.DeleteTask(m.ctx))
		m.refresh()
	case controlComplete:
		m.showDialog(m.ctrl.MarkComplete(m.ctx))
		m.refresh()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, result, cmd := m.form.update(msg)
	m.form = form

	switch result {
	case formCancel:
		m.mode = modeBrowse
		return m, nil
	case formSubmit:
		var dialog *controller.Dialog
		if m.form.edit {
			dialog = m.ctrl.EditTask(m.ctx, m.form.value())
		} else {
			dialog = m.ctrl.AddTask(m.ctx, m.form.value())
		}
		m.showDialog(dialog)
		m.refresh()
		return m, nil
	}
	return m, cmd
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.dialog = nil
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.center(m.form.view())
	case modeDialog:
		return m.center(m.dialogView())
	default:
		return m.browseView()
	}
}

func (m Model) center(s string) string {
	if m.width == 0 || m.height == 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m Model) browseView() string {
	listWidth := m.listWidth()
	detailWidth := 40
	if m.width > 0 {
		detailWidth = m.width - listWidth - 2
	}
	paneHeight := m.height - 8
	if paneHeight < 3 {
		paneHeight = 3
	}

	listPane := paneStyle
	if m.focus == focusList {
		listPane = focusedPaneStyle
	}
	left := listPane.Width(listWidth - 2).Height(paneHeight).Render(m.tasks.View())
	right := paneStyle.Width(detailWidth - 2).Height(paneHeight).Render(m.detail)

	buttons := make([]string, 0, controlCount)
	for c := control(0); c < controlCount; c++ {
		buttons = append(buttons, button(controlLabels[c], m.focus == focusControls && m.control == c), " ")
	}

	return strings.Join([]string{
		headerStyle.Render(m.cfg.WindowTitle),
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		gray("tab: switch focus • ↑/↓: select • ←/→: choose action • enter: press • esc: quit"),
	}, "\n")
}

func (m Model) dialogView() string {
	if m.dialog == nil {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(colorError)
	if m.dialog.Kind == controller.DialogSuccess {
		title = title.Foreground(colorSuccess)
	}

	return modalStyle.Render(strings.Join([]string{
		title.Render(m.dialog.Title),
		"",
		m.dialog.Message,
		"",
		button("OK", true),
	}, "\n"))
}
