package store

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/runoshun/tasks/internal/domain"
	"github.com/runoshun/tasks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, tasks ...domain.Task) (*Store, *testutil.MockStorage, *testutil.MockClock) {
	t.Helper()
	storage := testutil.NewMockStorage(tasks...)
	clock := &testutil.MockClock{NowTime: baseTime}
	return New(storage, WithClock(clock)), storage, clock
}

func texts(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Text)
	}
	return out
}

func TestNew_LoadsPersistedList(t *testing.T) {
	s, storage, _ := newTestStore(t,
		domain.Task{ID: 2, Text: "b"},
		domain.Task{ID: 1, Text: "a"},
	)

	assert.Equal(t, 1, storage.LoadCalls)
	assert.Equal(t, []string{"b", "a"}, texts(s.Tasks()))
	assert.Len(t, s.Tasks(), 2)
}

func TestNew_EmptyStorage(t *testing.T) {
	s, _, _ := newTestStore(t)
	assert.Empty(t, s.Tasks())
	assert.NotNil(t, s.Tasks())
}

func TestNew_ReassignsDuplicateIDs(t *testing.T) {
	s, storage, _ := newTestStore(t,
		domain.Task{ID: 7, Text: "first"},
		domain.Task{ID: 7, Text: "second"},
	)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(7), tasks[0].ID, "first occurrence keeps its ID")
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
	assert.Equal(t, 1, storage.SaveCalls, "repaired list is saved once")
	assert.Equal(t, tasks, storage.Saved)

	found, err := s.Toggle(tasks[1].ID)
	require.NoError(t, err)
	require.True(t, found)
	got := s.Tasks()
	assert.False(t, got[0].Completed)
	assert.True(t, got[1].Completed)

	found, err = s.Delete(tasks[1].ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"first"}, texts(s.Tasks()))
}

func TestNew_ReassignsInvalidIDs(t *testing.T) {
	s, storage, _ := newTestStore(t,
		domain.Task{ID: math.MaxInt64, Text: "huge"},
		domain.Task{ID: 0, Text: "zero"},
		domain.Task{ID: 3, Text: "fine"},
	)

	tasks := s.Tasks()
	for _, task := range tasks {
		assert.True(t, domain.ValidID(task.ID), "id %d", task.ID)
	}
	assert.Equal(t, int64(3), tasks[2].ID)
	assert.Equal(t, 1, storage.SaveCalls)

	added, err := s.Add("next")
	require.NoError(t, err)
	assert.True(t, domain.ValidID(added.ID))
}

func TestNew_ValidListIsNotResaved(t *testing.T) {
	_, storage, _ := newTestStore(t, domain.Task{ID: 2, Text: "b"}, domain.Task{ID: 1, Text: "a"})
	assert.Zero(t, storage.SaveCalls)
}

func TestStore_Add(t *testing.T) {
	s, storage, _ := newTestStore(t)

	task, err := s.Add("  Buy milk  ")
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, baseTime.UnixMilli(), task.ID)
	assert.Equal(t, "2024-01-01T12:00:00.000Z", task.CreatedAt)

	assert.Equal(t, []domain.Task{task}, s.Tasks())
	assert.Equal(t, []domain.Task{task}, storage.Saved)
	assert.Equal(t, 1, storage.SaveCalls)
}

func TestStore_AddPrependsNewestFirst(t *testing.T) {
	s, storage, clock := newTestStore(t)

	_, err := s.Add("Buy milk")
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = s.Add("Walk dog")
	require.NoError(t, err)

	assert.Equal(t, []string{"Walk dog", "Buy milk"}, texts(s.Tasks()))
	assert.Equal(t, []string{"Walk dog", "Buy milk"}, texts(storage.Saved))
}

func TestStore_AddBlankIsNoop(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n", "   \r\n  "} {
		s, storage, _ := newTestStore(t, domain.Task{ID: 1, Text: "keep"})

		_, err := s.Add(text)
		assert.ErrorIs(t, err, domain.ErrEmptyText)
		assert.Equal(t, []string{"keep"}, texts(s.Tasks()))
		assert.Zero(t, storage.SaveCalls, "blank text must not persist")
	}
}

func TestStore_AddSameTickGetsDistinctIDs(t *testing.T) {
	s, _, _ := newTestStore(t)

	a, err := s.Add("a")
	require.NoError(t, err)
	b, err := s.Add("b")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Greater(t, b.ID, a.ID)
}

func TestStore_AddNeverReusesLoadedID(t *testing.T) {
	future := baseTime.Add(time.Hour).UnixMilli()
	s, _, _ := newTestStore(t, domain.Task{ID: future, Text: "from the future"})

	task, err := s.Add("now")
	require.NoError(t, err)
	assert.Equal(t, future+1, task.ID)
}

func TestStore_AddAllowsDuplicateText(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Add("same")
	require.NoError(t, err)
	_, err = s.Add("same")
	require.NoError(t, err)

	assert.Equal(t, []string{"same", "same"}, texts(s.Tasks()))
}

func TestStore_Toggle(t *testing.T) {
	s, storage, _ := newTestStore(t,
		domain.Task{ID: 2, Text: "Walk dog", CreatedAt: "t2"},
		domain.Task{ID: 1, Text: "Buy milk", CreatedAt: "t1"},
	)

	found, err := s.Toggle(1)
	require.NoError(t, err)
	assert.True(t, found)

	want := []domain.Task{
		{ID: 2, Text: "Walk dog", CreatedAt: "t2"},
		{ID: 1, Text: "Buy milk", CreatedAt: "t1", Completed: true},
	}
	assert.Equal(t, want, s.Tasks())
	assert.Equal(t, want, storage.Saved)

	found, err = s.Toggle(1)
	require.NoError(t, err)
	assert.True(t, found)
	got, _ := s.Get(1)
	assert.False(t, got.Completed)
}

func TestStore_ToggleUnknownIsNoop(t *testing.T) {
	s, storage, _ := newTestStore(t, domain.Task{ID: 1, Text: "a"})

	found, err := s.Toggle(99)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []domain.Task{{ID: 1, Text: "a"}}, s.Tasks())
	assert.Zero(t, storage.SaveCalls)
}

func TestStore_Delete(t *testing.T) {
	s, storage, _ := newTestStore(t,
		domain.Task{ID: 3, Text: "c"},
		domain.Task{ID: 2, Text: "b"},
		domain.Task{ID: 1, Text: "a"},
	)

	found, err := s.Delete(2)
	require.NoError(t, err)
	assert.True(t, found)

	assert.Equal(t, []string{"c", "a"}, texts(s.Tasks()))
	assert.Equal(t, []string{"c", "a"}, texts(storage.Saved))
	_, ok := s.Get(2)
	assert.False(t, ok)
}

func TestStore_DeleteUnknownIsNoop(t *testing.T) {
	s, storage, _ := newTestStore(t, domain.Task{ID: 1, Text: "a"})

	found, err := s.Delete(42)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, s.Tasks(), 1)
	assert.Zero(t, storage.SaveCalls)
}

func TestStore_TasksReturnsCopy(t *testing.T) {
	s, _, _ := newTestStore(t, domain.Task{ID: 1, Text: "a"})

	tasks := s.Tasks()
	tasks[0].Text = "mutated"

	got, _ := s.Get(1)
	assert.Equal(t, "a", got.Text)
}

func TestStore_PendingRemoval(t *testing.T) {
	s, storage, _ := newTestStore(t,
		domain.Task{ID: 2, Text: "Walk dog"},
		domain.Task{ID: 1, Text: "Buy milk"},
	)

	assert.Equal(t, domain.PhaseActive, s.Phase(2))
	assert.True(t, s.MarkPendingRemoval(2))
	assert.Equal(t, domain.PhasePendingRemoval, s.Phase(2))

	// Still listed and not yet persisted as removed
	assert.Len(t, s.Tasks(), 2)
	assert.Zero(t, storage.SaveCalls)

	// Marking twice is rejected
	assert.False(t, s.MarkPendingRemoval(2))

	// Other tasks can still be toggled during the window
	_, err := s.Toggle(1)
	require.NoError(t, err)
	assert.Len(t, s.Tasks(), 2)

	found, err := s.Delete(2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.PhaseActive, s.Phase(2))
	assert.Equal(t, []string{"Buy milk"}, texts(s.Tasks()))
}

func TestStore_MarkPendingRemovalUnknown(t *testing.T) {
	s, _, _ := newTestStore(t)
	assert.False(t, s.MarkPendingRemoval(1))
	assert.Equal(t, domain.PhaseActive, s.Phase(1))
}

func TestStore_SaveErrorPropagates(t *testing.T) {
	s, storage, _ := newTestStore(t, domain.Task{ID: 1, Text: "a"})
	diskFull := errors.New("quota exceeded")
	storage.SaveErr = diskFull

	_, err := s.Add("b")
	assert.ErrorIs(t, err, diskFull)

	_, err = s.Toggle(1)
	assert.ErrorIs(t, err, diskFull)

	_, err = s.Delete(1)
	assert.ErrorIs(t, err, diskFull)
}

func TestStore_SaveErrorLeavesListUnchanged(t *testing.T) {
	seed := domain.Task{ID: 1, Text: "a"}
	s, storage, _ := newTestStore(t, seed)
	storage.SaveErr = errors.New("quota exceeded")

	task, err := s.Add("b")
	require.Error(t, err)
	assert.Zero(t, task)
	assert.Equal(t, []domain.Task{seed}, s.Tasks(), "failed add is rolled back")

	_, err = s.Toggle(1)
	require.Error(t, err)
	assert.Equal(t, []domain.Task{seed}, s.Tasks(), "failed toggle is reverted")

	require.True(t, s.MarkPendingRemoval(1))
	_, err = s.Delete(1)
	require.Error(t, err)
	assert.Equal(t, []domain.Task{seed}, s.Tasks(), "failed delete keeps the task")
	assert.Equal(t, domain.PhaseActive, s.Phase(1))

	storage.SaveErr = nil
	_, err = s.Add("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, texts(s.Tasks()), "retry does not duplicate")
}

func TestStore_Scenario(t *testing.T) {
	s, storage, clock := newTestStore(t)

	milk, err := s.Add("Buy milk")
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{{ID: milk.ID, Text: "Buy milk", CreatedAt: milk.CreatedAt}}, s.Tasks())

	clock.Advance(time.Millisecond)
	dog, err := s.Add("Walk dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"Walk dog", "Buy milk"}, texts(s.Tasks()))

	_, err = s.Toggle(milk.ID)
	require.NoError(t, err)
	gotMilk, _ := s.Get(milk.ID)
	gotDog, _ := s.Get(dog.ID)
	assert.True(t, gotMilk.Completed)
	assert.False(t, gotDog.Completed)

	require.True(t, s.MarkPendingRemoval(dog.ID))
	assert.Len(t, s.Tasks(), 2)
	_, err = s.Delete(dog.ID)
	require.NoError(t, err)

	want := []domain.Task{{ID: milk.ID, Text: "Buy milk", Completed: true, CreatedAt: milk.CreatedAt}}
	assert.Equal(t, want, s.Tasks())
	assert.Equal(t, want, storage.Saved)

	_, err = s.Add("")
	assert.ErrorIs(t, err, domain.ErrEmptyText)
	assert.Equal(t, want, s.Tasks())
}

func TestStore_Logs(t *testing.T) {
	logger := &testutil.MockLogger{}
	storage := testutil.NewMockStorage()
	s := New(storage, WithClock(&testutil.MockClock{NowTime: baseTime}), WithLogger(logger))

	task, err := s.Add("a")
	require.NoError(t, err)

	var added bool
	for _, e := range logger.Entries {
		if e.Level == "INFO" && e.TaskID == task.ID && e.Category == "task" {
			added = true
		}
	}
	assert.True(t, added, "expected info log for added task")
}

type fixedIDs struct{ next int64 }

func (f *fixedIDs) NextID() int64 { f.next++; return f.next }
func (f *fixedIDs) Observe(int64) {}

func TestStore_WithIDGenerator(t *testing.T) {
	s := New(testutil.NewMockStorage(), WithIDGenerator(&fixedIDs{next: 10}))

	task, err := s.Add("x")
	require.NoError(t, err)
	assert.Equal(t, int64(11), task.ID)
}
