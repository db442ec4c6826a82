package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndo_Execute(t *testing.T) {
	items := newTestCollection(t, "A", "B")
	require.True(t, items.MarkCompleted("A"))
	logger := &testutil.MockLogger{}
	uc := usecase.NewUndo(items, logger)

	// Undo the completion
	out, err := uc.Execute(context.Background(), usecase.UndoInput{})
	require.NoError(t, err)
	assert.True(t, out.Undone)
	assert.Equal(t, 2, out.Remaining)
	assert.Empty(t, items.View(domain.FilterCompleted))

	// Undo both adds
	for want := 1; want >= 0; want-- {
		out, err = uc.Execute(context.Background(), usecase.UndoInput{})
		require.NoError(t, err)
		assert.True(t, out.Undone)
		assert.Equal(t, want, out.Remaining)
	}

	// Nothing left
	out, err = uc.Execute(context.Background(), usecase.UndoInput{})
	require.NoError(t, err)
	assert.False(t, out.Undone)
	assert.Equal(t, 0, out.Remaining)
	assert.True(t, logger.HasEntry("DEBUG", "nothing to undo"))
}
