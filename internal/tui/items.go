package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"todo/internal/controller"
)

type taskItem struct {
	controller.Row
}

func (t taskItem) FilterValue() string { return t.Label }

func toItems(rows []controller.Row) []list.Item {
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, taskItem{Row: r})
	}
	return items
}

// taskDelegate draws one line per task. The cursor gets a marker, the
// selected task is highlighted and completed tasks are muted.
type taskDelegate struct {
	selected func() (uuid.UUID, bool)
}

func (d taskDelegate) Height() int                             { return 1 }
func (d taskDelegate) Spacing() int                            { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	task, ok := item.(taskItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	label := task.Label
	switch id, ok := d.selected(); {
	case ok && id == task.ID:
		label = selectedStyle.Render(label)
	case task.Completed:
		label = mutedStyle.Render(label)
	}

	fmt.Fprint(w, cursor+label)
}
