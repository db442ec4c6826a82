package ids

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_NewID_Prefix(t *testing.T) {
	g := New(domain.RealClock{})

	taskID := g.NewID(domain.KindTask)
	noteID := g.NewID(domain.KindNote)

	assert.True(t, strings.HasPrefix(taskID, TaskPrefix), taskID)
	assert.True(t, strings.HasPrefix(noteID, NotePrefix), noteID)
	assert.Len(t, taskID, len(TaskPrefix)+ulid.EncodedSize)
}

func TestGenerator_NewID_EncodesClock(t *testing.T) {
	now := time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC)
	g := New(&testutil.MockClock{NowTime: now})

	id, err := ulid.Parse(strings.TrimPrefix(g.NewID(domain.KindTask), TaskPrefix))
	require.NoError(t, err)
	assert.True(t, now.Equal(ulid.Time(id.Time())))
}

func TestGenerator_NewID_MonotonicWithinMillisecond(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}
	g := New(clock)

	prev := g.NewID(domain.KindTask)
	for range 100 {
		next := g.NewID(domain.KindTask)
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestGenerator_NewID_DeterministicEntropy(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}
	a := NewWithEntropy(clock, bytes.NewReader(make([]byte, 64)))
	b := NewWithEntropy(clock, bytes.NewReader(make([]byte, 64)))

	assert.Equal(t, a.NewID(domain.KindNote), b.NewID(domain.KindNote))
}

func TestGenerator_WithCollection(t *testing.T) {
	c := domain.NewCollection(domain.WithIDGenerator(New(domain.RealClock{})))
	require.NoError(t, c.Add(domain.NewTask("Buy milk")))
	require.NoError(t, c.Add(domain.NewNote("Idea", "")))

	items := c.View(domain.FilterAll)
	require.Len(t, items, 2)
	assert.True(t, strings.HasPrefix(items[0].ID(), TaskPrefix))
	assert.True(t, strings.HasPrefix(items[1].ID(), NotePrefix))
	assert.True(t, c.DeleteByID(items[0].ID()))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, TaskPrefix, Prefix(domain.KindTask))
	assert.Equal(t, NotePrefix, Prefix(domain.KindNote))
	assert.Equal(t, TaskPrefix, Prefix(""))
}
