// Package taskstore provides the in-memory task list shared by the demo
// services. Nothing persists across process restarts.
package taskstore

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/erraggy/casetools/caseconv"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates no task exists with the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrEmptyTitle indicates a create or update with a blank title.
	ErrEmptyTitle = errors.New("task title must not be empty")
)

// Task is a single entry in the task list. Slug is derived from Title with
// the kebab-case converter and recomputed on every title change.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is an in-memory task collection safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// New creates an empty Store.
func New() *Store {
	return &Store{tasks: make(map[string]Task)}
}

// Create adds a task with the given title and returns it.
// The title must contain at least one non-whitespace character.
func (s *Store) Create(title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	slug, err := caseconv.ToKebabCase(title)
	if err != nil {
		return Task{}, err
	}

	now := time.Now().UTC()
	task := Task{
		ID:        uuid.NewString(),
		Title:     title,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()

	return task, nil
}

// Get returns the task with the given ID, or ErrNotFound.
func (s *Store) Get(id string) (Task, error) {
	s.mu.RLock()
	task, ok := s.tasks[id]
	s.mu.RUnlock()
	if !ok {
		return Task{}, ErrNotFound
	}
	return task, nil
}

// List returns all tasks ordered by creation time, oldest first.
func (s *Store) List() []Task {
	s.mu.RLock()
	tasks := make([]Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	s.mu.RUnlock()

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks
}

// Update replaces the title and/or done flag of an existing task.
// A nil field leaves the current value unchanged. Returns the updated task,
// or ErrNotFound if no task exists with the given ID.
func (s *Store) Update(id string, title *string, done *bool) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return Task{}, ErrEmptyTitle
		}
		slug, err := caseconv.ToKebabCase(trimmed)
		if err != nil {
			return Task{}, err
		}
		task.Title = trimmed
		task.Slug = slug
	}
	if done != nil {
		task.Done = *done
	}
	task.UpdatedAt = time.Now().UTC()

	s.tasks[id] = task
	return task, nil
}

// Delete removes the task with the given ID, or returns ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
