package memory

import (
	"context"
	"time"

	"study-group-service/internal/domain"
)

// TaskRepository in-memory реализация domain.TaskRepository.
type TaskRepository struct {
	store *Store
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; exists {
		return domain.ErrTaskAlreadyExists
	}
	s.tasks[task.ID] = copyTask(task)
	return nil
}

func (r *TaskRepository) GetByID(_ context.Context, taskID string) (*domain.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return copyTask(t), nil
}

func (r *TaskRepository) ExistsTask(_ context.Context, taskID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tasks[taskID]
	return ok, nil
}

func (r *TaskRepository) UpdateStatus(_ context.Context, taskID string, from, to domain.TaskStatus, completedAt *time.Time) (*domain.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if t.Status != from {
		return nil, domain.ErrTaskStatusConflicts
	}

	t.Status = to
	if completedAt != nil {
		c := *completedAt
		t.CompletedAt = &c
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = time.Now().UTC()
	return copyTask(t), nil
}
