package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptions(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Description())
	}
	return out
}

func mustTask(t *testing.T, b *TaskBuilder) *Task {
	t.Helper()
	task, err := b.Build()
	require.NoError(t, err)
	return task
}

func TestCollection_Add_AssignsIDAndSavesState(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("a")))
	require.NoError(t, c.Add(NewNote("b", "content")))

	items := c.View(FilterAll)
	require.Len(t, items, 2)
	assert.Equal(t, "task-1", items[0].ID())
	assert.Equal(t, "note-2", items[1].ID())
	assert.Equal(t, 2, c.HistoryLen())
}

func TestCollection_Add_KeepsExistingID(t *testing.T) {
	c := NewCollection()
	task := mustTask(t, NewTaskBuilder("a").WithID("tsk_fixed"))
	require.NoError(t, c.Add(task))
	assert.Equal(t, "tsk_fixed", c.View(FilterAll)[0].ID())
}

func TestCollection_Add_Nil(t *testing.T) {
	c := NewCollection()
	assert.ErrorIs(t, c.Add(nil), ErrNilItem)
	assert.Zero(t, c.HistoryLen())
}

func TestCollection_HistoryStartsEmpty(t *testing.T) {
	c := NewCollection()
	assert.Zero(t, c.HistoryLen())
	assert.Zero(t, c.Len())
}

func TestCollection_HistoryLenEqualsMutations(t *testing.T) {
	c := NewCollection()
	ops := []func() bool{
		func() bool { return c.Add(NewTask("a")) == nil },
		func() bool { return c.Add(NewTask("b")) == nil },
		func() bool { return c.MarkCompleted("a") },
		func() bool { return c.Add(NewNote("c", "x")) == nil },
		func() bool { return c.Delete("b") },
		func() bool { return c.MarkCompleted("a") },
	}
	for i, op := range ops {
		require.True(t, op(), "op %d", i)
		assert.Equal(t, i+1, c.HistoryLen())
	}
}

func TestCollection_MarkCompleted(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("a")))
	require.NoError(t, c.Add(NewTask("b")))

	assert.True(t, c.MarkCompleted("b"))

	items := c.View(FilterAll)
	assert.False(t, items[0].IsCompleted())
	assert.True(t, items[1].IsCompleted())
}

func TestCollection_MarkCompleted_CaseSensitive(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("Buy milk")))

	assert.False(t, c.MarkCompleted("buy milk"))
	assert.False(t, c.MarkCompleted("Buy milk "))
	assert.True(t, c.MarkCompleted("Buy milk"))
}

func TestCollection_MarkCompleted_MissIsNoOp(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("a")))
	before := c.View(FilterAll)

	assert.False(t, c.MarkCompleted("missing"))

	assert.Equal(t, before, c.View(FilterAll))
	assert.Equal(t, 1, c.HistoryLen(), "a miss must not save state")
	assert.False(t, before[0].IsCompleted())
}

func TestCollection_MarkCompleted_FirstMatchWins(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("dup")))
	require.NoError(t, c.Add(NewTask("dup")))

	require.True(t, c.MarkCompleted("dup"))

	items := c.View(FilterAll)
	assert.True(t, items[0].IsCompleted())
	assert.False(t, items[1].IsCompleted())
}

func TestCollection_Delete(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("first")))
	require.NoError(t, c.Add(NewNote("second", "x")))

	assert.True(t, c.Delete("first"))

	assert.Equal(t, []string{"second"}, descriptions(c.View(FilterAll)))
	assert.Equal(t, 3, c.HistoryLen())
}

func TestCollection_Delete_MissIsNoOp(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("a")))

	assert.False(t, c.Delete("b"))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.HistoryLen())
}

func TestCollection_ByID(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("dup")))
	require.NoError(t, c.Add(NewTask("dup")))
	second := c.View(FilterAll)[1].ID()

	require.True(t, c.MarkCompletedByID(second))
	items := c.View(FilterAll)
	assert.False(t, items[0].IsCompleted())
	assert.True(t, items[1].IsCompleted())

	require.True(t, c.DeleteByID(second))
	assert.Equal(t, 1, c.Len())

	assert.False(t, c.DeleteByID("nope"))
	assert.False(t, c.MarkCompletedByID("nope"))
	assert.Equal(t, 4, c.HistoryLen())
}

func TestCollection_View_Filters(t *testing.T) {
	c := NewCollection()
	for _, d := range []string{"a", "b", "c", "d"} {
		require.NoError(t, c.Add(NewTask(d)))
	}
	require.True(t, c.MarkCompleted("b"))
	require.True(t, c.MarkCompleted("d"))

	all := c.View(FilterAll)
	completed := c.View(FilterCompleted)
	pending := c.View(FilterPending)

	assert.Equal(t, []string{"b", "d"}, descriptions(completed))
	assert.Equal(t, []string{"a", "c"}, descriptions(pending))
	assert.ElementsMatch(t, descriptions(all), append(descriptions(completed), descriptions(pending)...))
	for _, it := range completed {
		assert.NotContains(t, pending, it)
	}
}

func TestCollection_View_DoesNotAlias(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("a")))

	view := c.View(FilterAll)
	view[0] = NewTask("hijack")

	assert.Equal(t, []string{"a"}, descriptions(c.View(FilterAll)))
}

func TestCollection_ViewsReturnClones(t *testing.T) {
	tests := []struct {
		name  string
		items func(c *Collection) []Item
	}{
		{name: "view", items: func(c *Collection) []Item { return c.View(FilterAll) }},
		{name: "sort by priority", items: (*Collection).SortByPriority},
		{name: "sort by due date", items: (*Collection).SortByDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollection()
			require.NoError(t, c.Add(NewTask("a")))
			require.NoError(t, c.Add(NewTask("b")))

			got := tt.items(c)[0]
			got.SetPriority(9)
			require.NoError(t, got.SetDueDate("2024-01-15 05:30 PM"))
			got.MarkCompleted()

			live := c.View(FilterAll)[0]
			assert.Zero(t, live.Priority())
			assert.False(t, live.IsCompleted())
			_, hasDue := live.DueDate()
			assert.False(t, hasDue)

			require.True(t, c.Undo())
			assert.Zero(t, c.View(FilterAll)[0].Priority(), "history keeps the original item")
		})
	}
}

func TestCollection_SortByPriority(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustTask(t, NewTaskBuilder("Buy milk").SetPriority(2).SetDueDate("2024-01-10 09:00 AM"))))
	require.NoError(t, c.Add(mustTask(t, NewTaskBuilder("Call bank").SetPriority(1))))

	assert.Equal(t, []string{"Call bank", "Buy milk"}, descriptions(c.SortByPriority()))
	// Live order is untouched and nothing is recorded.
	assert.Equal(t, []string{"Buy milk", "Call bank"}, descriptions(c.View(FilterAll)))
	assert.Equal(t, 2, c.HistoryLen())
}

func TestCollection_SortByPriority_Stable(t *testing.T) {
	c := NewCollection()
	for _, in := range []struct {
		d string
		p int
	}{{"x1", 3}, {"y1", 1}, {"x2", 3}, {"y2", 1}, {"z", -1}, {"x3", 3}} {
		require.NoError(t, c.Add(mustTask(t, NewTaskBuilder(in.d).SetPriority(in.p))))
	}

	assert.Equal(t, []string{"z", "y1", "y2", "x1", "x2", "x3"}, descriptions(c.SortByPriority()))
}

func TestCollection_SortByDueDate_UndatedLast(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewNote("undated note", "x")))
	require.NoError(t, c.Add(mustTask(t, NewTaskBuilder("late").SetDueDate("2024-05-01 10:00 AM"))))
	require.NoError(t, c.Add(NewTask("undated task")))
	require.NoError(t, c.Add(mustTask(t, NewTaskBuilder("early").SetDueDate("2024-01-01 10:00 PM"))))
	require.NoError(t, c.Add(mustTask(t, NewTaskBuilder("early twin").SetDueDate("2024-01-01 10:00 PM"))))

	assert.Equal(t,
		[]string{"early", "early twin", "late", "undated note", "undated task"},
		descriptions(c.SortByDueDate()))
}

func TestCollection_Sorted(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustTask(t, NewTaskBuilder("b").SetPriority(2))))
	require.NoError(t, c.Add(mustTask(t, NewTaskBuilder("a").SetPriority(1))))

	got, err := c.Sorted(SortNone)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, descriptions(got))

	got, err = c.Sorted(SortPriority)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, descriptions(got))

	_, err = c.Sorted(SortKey("title"))
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestCollection_Undo_Empty(t *testing.T) {
	c := NewCollection()
	assert.False(t, c.Undo())
	assert.Zero(t, c.Len())
	assert.Zero(t, c.HistoryLen())
}

func TestCollection_Undo_WalksBackToEmpty(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("a")))
	require.NoError(t, c.Add(NewTask("b")))
	require.True(t, c.MarkCompleted("a"))
	require.True(t, c.Delete("b"))
	n := c.HistoryLen()
	require.Equal(t, 4, n)

	// Undo delete.
	require.True(t, c.Undo())
	assert.Equal(t, []string{"a", "b"}, descriptions(c.View(FilterAll)))

	// Undo completion restores the pending item.
	require.True(t, c.Undo())
	items := c.View(FilterAll)
	require.Len(t, items, 2)
	assert.False(t, items[0].IsCompleted())

	require.True(t, c.Undo())
	assert.Equal(t, []string{"a"}, descriptions(c.View(FilterAll)))

	require.True(t, c.Undo())
	assert.Zero(t, c.Len())
	assert.Zero(t, c.HistoryLen())

	// Further undos are no-ops.
	assert.False(t, c.Undo())
	assert.False(t, c.Undo())
	assert.Zero(t, c.Len())
}

func TestCollection_Undo_DoesNotRecord(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(NewTask("a")))
	require.NoError(t, c.Add(NewTask("b")))

	require.True(t, c.Undo())
	assert.Equal(t, 1, c.HistoryLen())

	// New mutations after undo continue from the restored state.
	require.NoError(t, c.Add(NewTask("c")))
	assert.Equal(t, []string{"a", "c"}, descriptions(c.View(FilterAll)))
	assert.Equal(t, 2, c.HistoryLen())
}

func TestCollection_Undo_WithHistoryLimit(t *testing.T) {
	c := NewCollection(WithHistoryLimit(2))
	for _, d := range []string{"a", "b", "c", "d"} {
		require.NoError(t, c.Add(NewTask(d)))
	}
	assert.Equal(t, 2, c.HistoryLen())

	require.True(t, c.Undo())
	assert.Equal(t, []string{"a", "b", "c"}, descriptions(c.View(FilterAll)))
	require.True(t, c.Undo())
	assert.Equal(t, []string{"a", "b"}, descriptions(c.View(FilterAll)), "oldest retained state is the floor")
	assert.False(t, c.Undo())
	assert.Equal(t, []string{"a", "b"}, descriptions(c.View(FilterAll)))
}

type fixedIDs struct{ n int }

func (f *fixedIDs) NewID(kind Kind) string {
	f.n++
	return string(kind) + "_fixed"
}

func TestCollection_WithIDGenerator(t *testing.T) {
	gen := &fixedIDs{}
	c := NewCollection(WithIDGenerator(gen))
	require.NoError(t, c.Add(NewNote("n", "")))

	assert.Equal(t, "note_fixed", c.View(FilterAll)[0].ID())
	assert.Equal(t, 1, gen.n)
}
