package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/tareas/internal/database"
	"github.com/thenoetrevino/tareas/internal/models"
	"github.com/thenoetrevino/tareas/internal/seed"
)

// DefaultSeedLimit caps how many seed descriptions become tasks
const DefaultSeedLimit = 10

// Service defines all task-related business operations
type Service interface {
	// Read operations
	Load(ctx context.Context) ([]models.Task, error)
	Tasks() []models.Task
	Get(id string) (models.Task, error)

	// Write operations
	Add(ctx context.Context, text string) ([]models.Task, error)
	ChangeStage(ctx context.Context, id string, stage models.Stage) ([]models.Task, error)
	Persist(ctx context.Context, tasks []models.Task) error

	// Reset drops the in-memory collection so the next Load reads storage again
	Reset()
}

// Store owns the task collection and is the only writer of the tasks key.
type Store struct {
	mu sync.Mutex

	kv        database.KeyValueStore
	source    seed.Source
	seedLimit int
	now       func() time.Time
	newID     func() string

	tasks  []models.Task
	loaded bool

	// gen is bumped by Reset; a seed fetched under an older gen is dropped
	gen uint64
	// seeding is closed when the in-flight seed fetch returns
	seeding chan struct{}
}

// Option configures a Store
type Option func(*Store)

// WithSeedLimit caps the number of seeded tasks
func WithSeedLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.seedLimit = n
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid generator
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore creates a task store. A nil source disables seeding.
func NewStore(kv database.KeyValueStore, source seed.Source, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		source:    source,
		seedLimit: DefaultSeedLimit,
		now:       func() time.Time { return time.Now().Round(0) },
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Service = (*Store)(nil)

// Load returns the stored collection, seeding it once when storage is empty.
// A seed failure is logged and leaves the collection empty.
func (s *Store) Load(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return models.CloneTasks(s.tasks), nil
}

// Tasks returns a copy of the in-memory collection
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneTasks(s.tasks)
}

// Get returns a copy of the task with id
func (s *Store) Get(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], nil
	}
	return models.Task{}, ErrTaskNotFound
}

// Add appends a todo task. Blank text is a no-op.
func (s *Store) Add(ctx context.Context, text string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return models.CloneTasks(s.tasks), nil
	}

	next := append(models.CloneTasks(s.tasks), models.Task{
		ID:       s.newID(),
		Text:     text,
		Stage:    models.StageTodo,
		Modified: s.now(),
	})

	if err := s.persistLocked(ctx, next); err != nil {
		return nil, err
	}
	slog.Info("task added", "id", next[len(next)-1].ID)
	return models.CloneTasks(s.tasks), nil
}

// ChangeStage moves the task with id to stage. An unknown id is a no-op.
func (s *Store) ChangeStage(ctx context.Context, id string, stage models.Stage) ([]models.Task, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStage, string(stage))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return models.CloneTasks(s.tasks), nil
	}

	next := models.CloneTasks(s.tasks)
	next[i].Stage = stage
	next[i].Modified = s.now()

	if err := s.persistLocked(ctx, next); err != nil {
		return nil, err
	}
	slog.Info("task stage changed", "id", id, "stage", stage)
	return models.CloneTasks(s.tasks), nil
}

// Persist writes tasks under the tasks key and makes them the current collection.
func (s *Store) Persist(ctx context.Context, tasks []models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx, models.CloneTasks(tasks))
}

// Reset forgets the in-memory collection. A seed fetch still in flight
// is discarded when it returns.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
	s.loaded = false
	s.gen++
}

// ensureLoaded fills the collection from storage or the seed source.
// Caller holds mu; it is released while the seed source is fetched, so
// readers such as Tasks never wait on the network.
func (s *Store) ensureLoaded(ctx context.Context) error {
	for !s.loaded {
		if wait := s.seeding; wait != nil {
			s.mu.Unlock()
			select {
			case <-wait:
			case <-ctx.Done():
				s.mu.Lock()
				return ctx.Err()
			}
			s.mu.Lock()
			continue
		}

		stored, err := s.readStored(ctx)
		if err != nil {
			return err
		}
		if len(stored) > 0 {
			s.tasks = stored
			s.loaded = true
			return nil
		}
		if s.source == nil {
			s.tasks = []models.Task{}
			s.loaded = true
			return nil
		}
		return s.seed(ctx)
	}
	return nil
}

// seed runs the seed fetch with mu released and persists the result unless
// the store was reset or storage was filled in the meantime. Caller holds mu.
func (s *Store) seed(ctx context.Context) error {
	gen := s.gen
	done := make(chan struct{})
	s.seeding = done

	s.mu.Unlock()
	seeded := s.fetchSeed(ctx)
	s.mu.Lock()

	s.seeding = nil
	close(done)

	if s.gen != gen {
		slog.Info("discarding seed fetched before reset", "count", len(seeded))
		return ErrLoadInterrupted
	}

	stored, err := s.readStored(ctx)
	if err != nil {
		return err
	}
	switch {
	case len(stored) > 0:
		s.tasks = stored
		s.loaded = true
	case len(seeded) == 0:
		s.tasks = []models.Task{}
		s.loaded = true
	default:
		if err := s.persistLocked(ctx, seeded); err != nil {
			return err
		}
		slog.Info("seeded tasks", "count", len(seeded))
	}
	return nil
}

// readStored decodes the tasks key; a missing key reads as no tasks
func (s *Store) readStored(ctx context.Context) ([]models.Task, error) {
	raw, ok, err := s.kv.Get(ctx, database.KeyTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var stored []models.Task
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTasks, err)
	}
	return stored, nil
}

// fetchSeed turns at most seedLimit non-blank descriptions into todo tasks
func (s *Store) fetchSeed(ctx context.Context) []models.Task {
	if s.source == nil {
		return nil
	}

	items, err := s.source.Fetch(ctx)
	if err != nil {
		slog.Warn("failed to fetch seed tasks", "error", err)
		return nil
	}

	now := s.now()
	out := make([]models.Task, 0, s.seedLimit)
	for _, item := range items {
		if len(out) == s.seedLimit {
			break
		}
		text := strings.TrimSpace(item)
		if text == "" {
			continue
		}
		out = append(out, models.Task{
			ID:       s.newID(),
			Text:     text,
			Stage:    models.StageTodo,
			Modified: now,
		})
	}
	return out
}

// persistLocked writes next and only then swaps it in. Caller holds mu.
func (s *Store) persistLocked(ctx context.Context, next []models.Task) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := s.kv.Set(ctx, database.KeyTasks, string(data)); err != nil {
		return fmt.Errorf("failed to persist tasks: %w", err)
	}
	s.tasks = next
	s.loaded = true
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
