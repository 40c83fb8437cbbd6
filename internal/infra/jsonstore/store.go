// Package jsonstore provides a JSON file-based implementation of TaskRepository.
//
// The whole store is a single snapshot file: the ordered task list plus the
// next-ID counter. Every mutation rewrites the snapshot via a temp file and
// an atomic rename, so an interrupted process never leaves a torn file
// behind; a reader always sees either the old snapshot or the new one.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/tasker-dev/tasker/internal/domain"
)

// snapshot represents the JSON file structure.
type snapshot struct {
	Meta  meta           `json:"meta"`
	Tasks []*domain.Task `json:"tasks"`
}

// meta contains store metadata.
type meta struct {
	// NextID is a monotonic counter persisted alongside the tasks.
	// Deriving it from max(id)+1 would reuse IDs after the highest
	// task is deleted, so it lives in the snapshot instead.
	NextID int `json:"nextID"`
}

// Store implements domain.TaskRepository using a JSON snapshot file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it is created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *Store) Get(id int) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *snapshot) error {
		task = findTask(data, id)
		return nil
	})
	return task, err
}

// List retrieves tasks matching the filter, preserving insertion order.
func (s *Store) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *snapshot) error {
		for _, t := range data.Tasks {
			if filter.Matches(t) {
				tasks = append(tasks, t)
			}
		}
		return nil
	})
	return tasks, err
}

// Create assigns the next ID to the task and appends it to the snapshot.
// The counter increment and the append are committed in one atomic write.
func (s *Store) Create(task *domain.Task) error {
	return s.withLockWrite(func(data *snapshot) error {
		task.ID = data.Meta.NextID
		data.Meta.NextID++
		data.Tasks = append(data.Tasks, task)
		return nil
	})
}

// Update replaces the stored task with the same ID.
func (s *Store) Update(task *domain.Task) error {
	return s.withLockWrite(func(data *snapshot) error {
		for i, t := range data.Tasks {
			if t.ID == task.ID {
				data.Tasks[i] = task
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
}

// Delete removes a task by ID. The ID counter is left untouched so the
// ID is never reassigned.
func (s *Store) Delete(id int) error {
	return s.withLockWrite(func(data *snapshot) error {
		for i, t := range data.Tasks {
			if t.ID == id {
				data.Tasks = append(data.Tasks[:i], data.Tasks[i+1:]...)
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
}

// findTask returns the task with the given ID, or nil.
func findTask(data *snapshot, id int) *domain.Task {
	for _, t := range data.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// withLock executes fn on the loaded snapshot under a shared (read) lock.
func (s *Store) withLock(fn func(*snapshot) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn under an exclusive lock and persists the result.
// If fn fails, nothing is written and the committed snapshot is untouched.
func (s *Store) withLockWrite(fn func(*snapshot) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", errors.Join(domain.ErrStoreIO, err))
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", errors.Join(domain.ErrStoreIO, err))
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", errors.Join(domain.ErrStoreIO, err))
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the snapshot. A missing file yields a fresh empty store with
// NextID = 1; an unparseable or inconsistent file is a corrupt store.
func (s *Store) read() (*snapshot, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &snapshot{Meta: meta{NextID: 1}}, nil
		}
		return nil, fmt.Errorf("read store file: %w", errors.Join(domain.ErrStoreIO, err))
	}

	var data snapshot
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
	}

	if err := validate(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptStore, err)
	}

	return &data, nil
}

// validate checks the snapshot invariants: a sane counter, unique IDs
// below the counter, and internally consistent tasks.
func validate(data *snapshot) error {
	if data.Meta.NextID < 1 {
		return fmt.Errorf("nextID %d out of range", data.Meta.NextID)
	}
	seen := make(map[int]bool, len(data.Tasks))
	for _, t := range data.Tasks {
		if t == nil {
			return errors.New("null task entry")
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %d: %w", t.ID, err)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate task ID %d", t.ID)
		}
		seen[t.ID] = true
		if t.ID >= data.Meta.NextID {
			return fmt.Errorf("task ID %d not below nextID %d", t.ID, data.Meta.NextID)
		}
	}
	return nil
}

// write persists the snapshot atomically: the content goes to a temp file
// which is then renamed onto the store path, so a crash mid-write leaves
// the previously committed snapshot intact.
func (s *Store) write(data *snapshot) error {
	if data.Tasks == nil {
		data.Tasks = []*domain.Task{}
	}
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}
	content = append(content, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", errors.Join(domain.ErrStoreIO, err))
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", errors.Join(domain.ErrStoreIO, err))
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", errors.Join(domain.ErrStoreIO, err))
	}

	return nil
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
