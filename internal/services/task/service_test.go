package task

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thenoetrevino/tareas/internal/models"
	"github.com/thenoetrevino/tareas/internal/seed"
	"github.com/thenoetrevino/tareas/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedNow = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

// sequentialIDs returns an id generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// countingSource records how often it was asked for items
type countingSource struct {
	items []string
	err   error
	calls int
}

func (c *countingSource) Fetch(context.Context) ([]string, error) {
	c.calls++
	return c.items, c.err
}

func newTestStore(t *testing.T, src seed.Source) (*Store, *testutil.FailingKV) {
	t.Helper()
	kv := &testutil.FailingKV{KeyValueStore: testutil.SetupKV(t)}
	store := NewStore(kv, src,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	)
	return store, kv
}

func numberedItems(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Seed item %d", i+1)
	}
	return out
}

// ============================================================================
// LOAD / SEED
// ============================================================================

func TestLoad_SeedsAtMostTenTodos(t *testing.T) {
	src := &countingSource{items: numberedItems(15)}
	store, kv := newTestStore(t, src)

	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(tasks) != 10 {
		t.Fatalf("expected 10 seeded tasks, got %d", len(tasks))
	}

	seen := make(map[string]bool)
	for i, task := range tasks {
		if task.Stage != models.StageTodo {
			t.Errorf("task %d stage = %q, want todo", i, task.Stage)
		}
		if seen[task.ID] {
			t.Errorf("duplicate id %q", task.ID)
		}
		seen[task.ID] = true
		if task.Text != fmt.Sprintf("Seed item %d", i+1) {
			t.Errorf("task %d text = %q, want seed order preserved", i, task.Text)
		}
		if !task.Modified.Equal(fixedNow) {
			t.Errorf("task %d modified = %v, want %v", i, task.Modified, fixedNow)
		}
	}

	if stored := testutil.ReadTasks(t, kv); len(stored) != 10 {
		t.Errorf("expected seeded tasks to be persisted, found %d", len(stored))
	}
}

func TestLoad_UniqueIDsWithDefaultGenerator(t *testing.T) {
	kv := testutil.SetupKV(t)
	store := NewStore(kv, seed.Static(numberedItems(15)))

	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, task := range tasks {
		if task.ID == "" || seen[task.ID] {
			t.Fatalf("id %q is empty or duplicated", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestLoad_SkipsBlankSeedItems(t *testing.T) {
	store, _ := newTestStore(t, seed.Static{"  ", "Walk the dog", "", " Water plants "})

	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[1].Text != "Water plants" {
		t.Errorf("seed text should be trimmed, got %q", tasks[1].Text)
	}
}

func TestLoad_PrefersStoredTasks(t *testing.T) {
	src := &countingSource{items: numberedItems(3)}
	store, kv := newTestStore(t, src)

	existing := models.Task{ID: "abc123", Text: "Existing", Stage: models.StageCompleted, Modified: fixedNow}
	testutil.StoreTasks(t, kv, existing)

	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if src.calls != 0 {
		t.Errorf("seed source should not be called when tasks exist, called %d times", src.calls)
	}
	if !reflect.DeepEqual(tasks, []models.Task{existing}) {
		t.Errorf("Load() = %+v, want stored task", tasks)
	}
}

func TestLoad_StoredEmptyListSeeds(t *testing.T) {
	src := &countingSource{items: numberedItems(2)}
	store, kv := newTestStore(t, src)
	testutil.StoreTasks(t, kv)

	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(tasks) != 2 || src.calls != 1 {
		t.Errorf("expected empty stored list to be seeded once, got %d tasks after %d calls", len(tasks), src.calls)
	}
}

func TestLoad_SeedFailureLeavesEmpty(t *testing.T) {
	src := &countingSource{err: errors.New("fetch failed: 503")}
	store, kv := newTestStore(t, src)

	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("seed failure should not surface as an error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(tasks))
	}

	// No retry within the same session
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("seed source called %d times, want 1", src.calls)
	}
	if stored := testutil.ReadTasks(t, kv); stored != nil {
		t.Errorf("nothing should be persisted after a failed seed, got %+v", stored)
	}
}

func TestLoad_NilSourceDisablesSeeding(t *testing.T) {
	store, _ := newTestStore(t, nil)

	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil collection, got %#v", tasks)
	}
}

func TestLoad_CorruptStorage(t *testing.T) {
	store, kv := newTestStore(t, nil)
	if err := kv.Set(context.Background(), "tasks", "{not json"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	_, err := store.Load(context.Background())
	if !errors.Is(err, ErrCorruptTasks) {
		t.Fatalf("Load() error = %v, want ErrCorruptTasks", err)
	}
}

func TestLoad_SeedLimitOption(t *testing.T) {
	kv := testutil.SetupKV(t)
	store := NewStore(kv, seed.Static(numberedItems(8)), WithSeedLimit(3))

	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Errorf("expected 3 tasks with WithSeedLimit(3), got %d", len(tasks))
	}
}

// ============================================================================
// ADD
// ============================================================================

func TestAdd_BlankIsNoOp(t *testing.T) {
	store, _ := newTestStore(t, seed.Static{"Existing"})
	ctx := context.Background()

	before, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	for _, text := range []string{"", "   ", "\t\n"} {
		after, err := store.Add(ctx, text)
		if err != nil {
			t.Fatalf("Add(%q) failed: %v", text, err)
		}
		if len(after) != len(before) {
			t.Errorf("Add(%q) changed size from %d to %d", text, len(before), len(after))
		}
	}
}

func TestAdd_AppendsTodo(t *testing.T) {
	store, kv := newTestStore(t, seed.Static{"Existing"})
	ctx := context.Background()

	before, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	after, err := store.Add(ctx, "  Buy milk ")
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if len(after) != len(before)+1 {
		t.Fatalf("expected size %d, got %d", len(before)+1, len(after))
	}

	added := after[len(after)-1]
	if added.Text != "Buy milk" {
		t.Errorf("text = %q, want Buy milk", added.Text)
	}
	if added.Stage != models.StageTodo {
		t.Errorf("stage = %q, want todo", added.Stage)
	}
	for _, task := range before {
		if task.ID == added.ID {
			t.Errorf("new id %q collides with an existing task", added.ID)
		}
	}

	stored := testutil.ReadTasks(t, kv)
	if !reflect.DeepEqual(stored, after) {
		t.Errorf("stored tasks %+v do not match returned %+v", stored, after)
	}
}

func TestAdd_StorageFailureKeepsMemory(t *testing.T) {
	store, kv := newTestStore(t, nil)
	ctx := context.Background()

	if _, err := store.Load(ctx); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	kv.Fail = true
	if _, err := store.Add(ctx, "Buy milk"); !errors.Is(err, testutil.ErrStorage) {
		t.Fatalf("Add() error = %v, want wrapped storage error", err)
	}
	if len(store.Tasks()) != 0 {
		t.Errorf("in-memory collection changed despite failed write: %+v", store.Tasks())
	}
}

// ============================================================================
// CHANGE STAGE
// ============================================================================

func TestChangeStage_OnlyTargetChanges(t *testing.T) {
	store, kv := newTestStore(t, nil)
	ctx := context.Background()

	earlier := fixedNow.Add(-time.Hour)
	testutil.StoreTasks(t, kv,
		models.Task{ID: "abc123", Text: "Target", Stage: models.StageTodo, Modified: earlier},
		models.Task{ID: "other", Text: "Other", Stage: models.StageTodo, Modified: earlier},
	)

	before, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	after, err := store.ChangeStage(ctx, "abc123", models.StageArchived)
	if err != nil {
		t.Fatalf("ChangeStage() failed: %v", err)
	}

	if len(after) != len(before) {
		t.Fatalf("size changed from %d to %d", len(before), len(after))
	}
	if after[0].Stage != models.StageArchived || !after[0].Modified.Equal(fixedNow) {
		t.Errorf("target = %+v, want archived with refreshed modified", after[0])
	}
	if !reflect.DeepEqual(after[1], before[1]) {
		t.Errorf("other task changed: %+v -> %+v", before[1], after[1])
	}

	stored := testutil.ReadTasks(t, kv)
	if stored[0].Stage != models.StageArchived {
		t.Errorf("stage change not persisted: %+v", stored[0])
	}
}

func TestChangeStage_UnknownIDIsNoOp(t *testing.T) {
	store, kv := newTestStore(t, nil)
	ctx := context.Background()
	testutil.StoreTasks(t, kv, models.Task{ID: "abc123", Text: "Task", Stage: models.StageTodo, Modified: fixedNow})

	before, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	after, err := store.ChangeStage(ctx, "missing", models.StageCompleted)
	if err != nil {
		t.Fatalf("ChangeStage() failed: %v", err)
	}
	if !reflect.DeepEqual(after, before) {
		t.Errorf("collection changed: %+v -> %+v", before, after)
	}
}

func TestChangeStage_InvalidStage(t *testing.T) {
	store, kv := newTestStore(t, nil)
	testutil.StoreTasks(t, kv, models.Task{ID: "abc123", Text: "Task", Stage: models.StageTodo, Modified: fixedNow})

	_, err := store.ChangeStage(context.Background(), "abc123", models.Stage("done"))
	if !errors.Is(err, models.ErrInvalidStage) {
		t.Fatalf("ChangeStage() error = %v, want ErrInvalidStage", err)
	}

	if got := testutil.ReadTasks(t, kv)[0].Stage; got != models.StageTodo {
		t.Errorf("stage changed to %q despite invalid input", got)
	}
}

func TestChangeStage_EveryTransition(t *testing.T) {
	ctx := context.Background()
	for from, actions := range models.Transitions {
		for _, action := range actions {
			t.Run(fmt.Sprintf("%s->%s", from, action.Target), func(t *testing.T) {
				store, kv := newTestStore(t, nil)
				testutil.StoreTasks(t, kv, models.Task{ID: "x", Text: "Task", Stage: from, Modified: fixedNow})

				tasks, err := store.ChangeStage(ctx, "x", action.Target)
				if err != nil {
					t.Fatalf("ChangeStage() failed: %v", err)
				}
				if tasks[0].Stage != action.Target {
					t.Errorf("stage = %q, want %q", tasks[0].Stage, action.Target)
				}
			})
		}
	}
}

// ============================================================================
// PERSIST / ROUND TRIP
// ============================================================================

func TestPersist_RoundTrip(t *testing.T) {
	kv := testutil.SetupKV(t)
	ctx := context.Background()

	tasks := []models.Task{
		{ID: "a", Text: "One", Stage: models.StageTodo, Modified: fixedNow},
		{ID: "b", Text: "Two", Stage: models.StageCompleted, Modified: fixedNow.Add(time.Minute)},
		{ID: "c", Text: "Three", Stage: models.StageArchived, Modified: fixedNow.Add(2 * time.Minute)},
	}

	writer := NewStore(kv, nil)
	if err := writer.Persist(ctx, tasks); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}

	reader := NewStore(kv, nil)
	loaded, err := reader.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !reflect.DeepEqual(loaded, tasks) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, tasks)
	}
}

func TestPersist_CallerSliceIsCopied(t *testing.T) {
	store, _ := newTestStore(t, nil)
	tasks := []models.Task{{ID: "a", Text: "One", Stage: models.StageTodo, Modified: fixedNow}}

	if err := store.Persist(context.Background(), tasks); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}
	tasks[0].Text = "mutated"

	if store.Tasks()[0].Text != "One" {
		t.Error("store shares memory with the caller's slice")
	}
}

// ============================================================================
// GET / RESET
// ============================================================================

func TestGet(t *testing.T) {
	store, kv := newTestStore(t, nil)
	testutil.StoreTasks(t, kv, models.Task{ID: "abc123", Text: "Task", Stage: models.StageTodo, Modified: fixedNow})

	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	task, err := store.Get("abc123")
	if err != nil || task.Text != "Task" {
		t.Errorf("Get(abc123) = %+v, %v", task, err)
	}
	if _, err := store.Get("missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrTaskNotFound", err)
	}
}

func TestReset_ReloadsFromStorage(t *testing.T) {
	store, kv := newTestStore(t, &countingSource{items: []string{"Seeded"}})
	ctx := context.Background()

	if _, err := store.Load(ctx); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if err := kv.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	store.Reset()

	if got := store.Tasks(); len(got) != 0 {
		t.Errorf("Tasks() after Reset = %+v, want empty", got)
	}

	tasks, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() after Reset failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected store to seed again after reset, got %d tasks", len(tasks))
	}
}

// ============================================================================
// SEED FETCH CONCURRENCY
// ============================================================================

// gatedSource blocks Fetch until release is closed
type gatedSource struct {
	items   []string
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func newGatedSource(items ...string) *gatedSource {
	return &gatedSource{
		items:   items,
		started: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
}

func (g *gatedSource) Fetch(ctx context.Context) ([]string, error) {
	g.calls.Add(1)
	g.started <- struct{}{}
	select {
	case <-g.release:
		return g.items, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type loadResult struct {
	tasks []models.Task
	err   error
}

func loadAsync(store *Store) <-chan loadResult {
	out := make(chan loadResult, 1)
	go func() {
		tasks, err := store.Load(context.Background())
		out <- loadResult{tasks, err}
	}()
	return out
}

func waitFor[T any](t *testing.T, ch <-chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
		var zero T
		return zero
	}
}

func TestLoad_ReadersDoNotWaitOnSeedFetch(t *testing.T) {
	src := newGatedSource("Slow seed")
	store, _ := newTestStore(t, src)

	result := loadAsync(store)
	waitFor(t, src.started, "seed fetch to start")

	got := make(chan []models.Task, 1)
	go func() { got <- store.Tasks() }()
	if tasks := waitFor(t, got, "Tasks() during the seed fetch"); len(tasks) != 0 {
		t.Errorf("Tasks() during fetch = %+v, want empty", tasks)
	}

	close(src.release)
	res := waitFor(t, result, "Load() to return")
	if res.err != nil {
		t.Fatalf("Load() failed: %v", res.err)
	}
	if len(res.tasks) != 1 || res.tasks[0].Text != "Slow seed" {
		t.Errorf("Load() = %+v, want the seeded task", res.tasks)
	}
}

func TestLoad_ResetDuringSeedDropsWrite(t *testing.T) {
	src := newGatedSource("Late seed")
	store, kv := newTestStore(t, src)
	ctx := context.Background()

	result := loadAsync(store)
	waitFor(t, src.started, "seed fetch to start")

	// What sign-out does while the fetch is pending
	store.Reset()
	if err := kv.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	close(src.release)
	res := waitFor(t, result, "Load() to return")
	if !errors.Is(res.err, ErrLoadInterrupted) {
		t.Fatalf("Load() error = %v, want ErrLoadInterrupted", res.err)
	}
	if stored := testutil.ReadTasks(t, kv); stored != nil {
		t.Errorf("tasks key after reset = %+v, want nothing", stored)
	}
	if got := store.Tasks(); len(got) != 0 {
		t.Errorf("Tasks() after reset = %+v, want empty", got)
	}
}

func TestLoad_ConcurrentLoadsFetchOnce(t *testing.T) {
	src := newGatedSource("Only once")
	store, _ := newTestStore(t, src)

	first := loadAsync(store)
	waitFor(t, src.started, "seed fetch to start")
	second := loadAsync(store)

	close(src.release)
	for _, ch := range []<-chan loadResult{first, second} {
		res := waitFor(t, ch, "Load() to return")
		if res.err != nil {
			t.Fatalf("Load() failed: %v", res.err)
		}
		if len(res.tasks) != 1 {
			t.Errorf("Load() returned %d tasks, want 1", len(res.tasks))
		}
	}
	if n := src.calls.Load(); n != 1 {
		t.Errorf("seed source called %d times, want 1", n)
	}
}
