package controller

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/repository/sqlite"
	"todo/internal/services"
)

func setupController(t *testing.T) (*Controller, services.TaskStore) {
	t.Helper()
	repo, err := sqlite.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	store := services.NewTaskStore(repo, logging.Discard())
	return New(store, config.NewConfig(), logging.Discard()), store
}

func addAndSelect(t *testing.T, c *Controller, form Form) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	require.Nil(t, c.AddTask(ctx, form))

	rows, err := c.Rows(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	id := rows[len(rows)-1].ID
	require.NoError(t, c.Select(ctx, id))
	return id
}

func TestController_Scenarios(t *testing.T) {
	c, store := setupController(t)
	ctx := context.Background()

	// 1. add
	dialog := c.AddTask(ctx, Form{Title: "Buy milk", Description: "2%, from store", Priority: 3})
	require.Nil(t, dialog)

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "2%, from store", tasks[0].Description)
	assert.Equal(t, 3, tasks[0].Priority)
	assert.False(t, tasks[0].Completed)

	// 2. edit the selected task
	require.NoError(t, c.Select(ctx, tasks[0].ID))
	form, dialog := c.NewEditForm(ctx)
	require.Nil(t, dialog)
	assert.Equal(t, Form{Title: "Buy milk", Description: "2%, from store", Priority: 3}, form)

	form.Title = "Buy oat milk"
	form.Priority = 4
	require.Nil(t, c.EditTask(ctx, form))

	tasks, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy oat milk", tasks[0].Title)
	assert.Equal(t, 4, tasks[0].Priority)
	assert.False(t, tasks[0].Completed)

	// 3. mark complete
	dialog = c.MarkComplete(ctx)
	require.NotNil(t, dialog)
	assert.Equal(t, DialogSuccess, dialog.Kind)
	assert.Equal(t, "Success", dialog.Title)
	assert.Equal(t, "Task marked as complete!", dialog.Message)

	rows, err := c.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "✓ Buy oat milk (Priority: 4)", rows[0].Label)
	assert.True(t, rows[0].Completed)
	assert.Contains(t, c.Detail(ctx), "Status: Completed")

	// 4. delete
	require.Nil(t, c.DeleteTask(ctx))
	rows, err = c.Rows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, c.Detail(ctx))
	_, selected := c.SelectedID()
	assert.False(t, selected)
}

func TestController_AddTask_EmptyTitle(t *testing.T) {
	c, store := setupController(t)
	ctx := context.Background()

	for _, title := range []string{"", "   "} {
		dialog := c.AddTask(ctx, Form{Title: title, Priority: 1})
		require.NotNil(t, dialog)
		assert.Equal(t, DialogError, dialog.Kind)
		assert.Equal(t, "Error", dialog.Title)
		assert.Equal(t, "Title cannot be empty!", dialog.Message)
	}

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestController_AddTask_AppendsLast(t *testing.T) {
	c, _ := setupController(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		require.Nil(t, c.AddTask(ctx, Form{Title: title, Priority: 2}))
	}

	rows, err := c.Rows(ctx)
	require.NoError(t, err)
	labels := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"a (Priority: 2)", "b (Priority: 2)", "c (Priority: 2)"}, labels)
}

func TestController_NoSelection(t *testing.T) {
	operations := []struct {
		name string
		run  func(c *Controller) *Dialog
	}{
		{"edit", func(c *Controller) *Dialog {
			return c.EditTask(context.Background(), Form{Title: "Changed", Priority: 5})
		}},
		{"edit form", func(c *Controller) *Dialog {
			_, d := c.NewEditForm(context.Background())
			return d
		}},
		{"delete", func(c *Controller) *Dialog { return c.DeleteTask(context.Background()) }},
		{"mark complete", func(c *Controller) *Dialog { return c.MarkComplete(context.Background()) }},
	}

	for _, op := range operations {
		t.Run(op.name, func(t *testing.T) {
			c, store := setupController(t)
			ctx := context.Background()
			require.Nil(t, c.AddTask(ctx, Form{Title: "Keep me", Priority: 2}))
			before, err := store.List(ctx)
			require.NoError(t, err)

			dialog := op.run(c)
			require.NotNil(t, dialog)
			assert.True(t, dialog.IsError())
			assert.Equal(t, "No task selected!", dialog.Message)

			after, err := store.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestController_EditTask_LeavesOthersAlone(t *testing.T) {
	c, store := setupController(t)
	ctx := context.Background()

	require.Nil(t, c.AddTask(ctx, Form{Title: "First", Description: "one", Priority: 1}))
	id := addAndSelect(t, c, Form{Title: "Second", Description: "two", Priority: 2})
	require.False(t, c.MarkComplete(ctx).IsError())

	require.Nil(t, c.EditTask(ctx, Form{Title: "Second v2", Description: "", Priority: 5}))

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Title)
	assert.Equal(t, "one", tasks[0].Description)
	assert.Equal(t, id, tasks[1].ID)
	assert.Equal(t, "Second v2", tasks[1].Title)
	assert.Empty(t, tasks[1].Description)
	assert.Equal(t, 5, tasks[1].Priority)
	assert.True(t, tasks[1].Completed)
}

func TestController_EditTask_EmptyTitle(t *testing.T) {
	c, store := setupController(t)
	ctx := context.Background()
	id := addAndSelect(t, c, Form{Title: "Original", Priority: 3})

	dialog := c.EditTask(ctx, Form{Title: "", Description: "new", Priority: 4})
	require.NotNil(t, dialog)
	assert.Equal(t, "Title cannot be empty!", dialog.Message)

	task, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Original", task.Title)
	assert.Equal(t, 3, task.Priority)

	selected, ok := c.SelectedID()
	assert.True(t, ok)
	assert.Equal(t, id, selected)
}

func TestController_DeleteTask_ByIdentity(t *testing.T) {
	c, store := setupController(t)
	ctx := context.Background()

	twin := Form{Title: "Twin", Priority: 2}
	first := addAndSelect(t, c, twin)
	second := addAndSelect(t, c, twin)
	require.NoError(t, c.Select(ctx, first))

	require.Nil(t, c.DeleteTask(ctx))

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, second, tasks[0].ID)
	assert.Empty(t, c.Detail(ctx))
}

func TestController_MarkComplete_Idempotent(t *testing.T) {
	c, store := setupController(t)
	ctx := context.Background()
	id := addAndSelect(t, c, Form{Title: "Once", Priority: 1})

	assert.Equal(t, SuccessDialog(MsgMarkedComplete), c.MarkComplete(ctx))
	once, err := store.Get(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, SuccessDialog(MsgMarkedComplete), c.MarkComplete(ctx))
	twice, err := store.Get(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestController_StaleSelection(t *testing.T) {
	c, store := setupController(t)
	ctx := context.Background()
	id := addAndSelect(t, c, Form{Title: "Gone soon", Priority: 1})

	// Removed behind the controller's back.
	require.NoError(t, store.Remove(ctx, id))

	assert.Empty(t, c.Detail(ctx))
	_, ok := c.SelectedID()
	assert.False(t, ok)

	dialog := c.MarkComplete(ctx)
	require.NotNil(t, dialog)
	assert.Equal(t, "No task selected!", dialog.Message)
}

func TestController_StaleSelection_DuringOperation(t *testing.T) {
	c, store := setupController(t)
	ctx := context.Background()
	id := addAndSelect(t, c, Form{Title: "Gone soon", Priority: 1})
	require.NoError(t, store.Remove(ctx, id))

	dialog := c.DeleteTask(ctx)
	require.NotNil(t, dialog)
	assert.Equal(t, "No task selected!", dialog.Message)
	_, ok := c.SelectedID()
	assert.False(t, ok)
}

func TestController_Select(t *testing.T) {
	c, _ := setupController(t)
	ctx := context.Background()
	id := addAndSelect(t, c, Form{Title: "Pick me", Description: "desc", Priority: 2})

	assert.Equal(t, "Title: Pick me\n\nDescription: desc\n\nPriority: 2\n\nStatus: Incomplete", c.Detail(ctx))

	err := c.Select(ctx, uuid.New())
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	_, ok := c.SelectedID()
	assert.False(t, ok)

	require.NoError(t, c.Select(ctx, id))
	c.ClearSelection()
	assert.Empty(t, c.Detail(ctx))
}

func TestController_Select_NilID(t *testing.T) {
	c, _ := setupController(t)
	ctx := context.Background()
	addAndSelect(t, c, Form{Title: "Pick me", Priority: 1})

	err := c.Select(ctx, uuid.Nil)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	_, ok := c.SelectedID()
	assert.False(t, ok)
}

func TestController_ExpiredContext(t *testing.T) {
	c, store := setupController(t)
	id := addAndSelect(t, c, Form{Title: "Keep me", Priority: 2})

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	dialog := c.AddTask(expired, Form{Title: "Late", Priority: 1})
	require.NotNil(t, dialog)
	assert.Equal(t, DialogError, dialog.Kind)
	assert.Equal(t, "The operation timed out. Please try again.", dialog.Message)

	dialog = c.MarkComplete(expired)
	require.NotNil(t, dialog)
	assert.Equal(t, "The operation timed out. Please try again.", dialog.Message)

	// the selection survives a timeout and the store is untouched
	selected, ok := c.SelectedID()
	require.True(t, ok)
	assert.Equal(t, id, selected)

	tasks, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Keep me", tasks[0].Title)
	assert.False(t, tasks[0].Completed)
}

func TestController_CustomCheckmark(t *testing.T) {
	repo, err := sqlite.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	cfg := config.NewConfig()
	cfg.Display.Checkmark = "[x] "
	c := New(services.NewTaskStore(repo, logging.Discard()), cfg, logging.Discard())
	ctx := context.Background()

	addAndSelect(t, c, Form{Title: "Done", Priority: 1})
	c.MarkComplete(ctx)

	rows, err := c.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "[x] Done (Priority: 1)", rows[0].Label)
}

func TestController_NewAddForm(t *testing.T) {
	c, _ := setupController(t)
	assert.Equal(t, Form{Priority: 1}, c.NewAddForm())
}

func TestForm_Priority(t *testing.T) {
	f := Form{Priority: 4}
	f.IncPriority()
	f.IncPriority()
	assert.Equal(t, 5, f.Priority)

	f = Form{Priority: 2}
	f.DecPriority()
	f.DecPriority()
	assert.Equal(t, 1, f.Priority)
}
