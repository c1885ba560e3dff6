package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// TaskStatus состояние задачи.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
	TaskCancelled  TaskStatus = "CANCELLED"
)

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskTodo:       {TaskInProgress, TaskCancelled},
	TaskInProgress: {TaskReview, TaskDone, TaskTodo, TaskCancelled},
	TaskReview:     {TaskDone, TaskInProgress, TaskTodo},
	TaskDone:       {TaskTodo},
	TaskCancelled:  {TaskTodo},
}

// Valid сообщает, является ли статус одним из известных.
func (s TaskStatus) Valid() bool {
	_, ok := taskTransitions[s]
	return ok
}

// AllowedTransitions возвращает статусы, в которые можно перейти из s.
func (s TaskStatus) AllowedTransitions() []TaskStatus {
	allowed := taskTransitions[s]
	out := make([]TaskStatus, len(allowed))
	copy(out, allowed)
	return out
}

// ValidateTransition проверяет переход. Переход в тот же статус разрешен и ничего не меняет.
func (s TaskStatus) ValidateTransition(to TaskStatus) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if s == to {
		return nil
	}
	for _, allowed := range taskTransitions[s] {
		if allowed == to {
			return nil
		}
	}

	names := make([]string, 0, len(taskTransitions[s]))
	for _, allowed := range taskTransitions[s] {
		names = append(names, string(allowed))
	}
	return WithMetadata(
		KindInvalidTransition,
		fmt.Sprintf("cannot change task status from %s to %s", s, to),
		map[string]string{
			"from":    string(s),
			"to":      string(to),
			"allowed": strings.Join(names, ","),
		},
	)
}

// Task рабочий элемент группы.
type Task struct {
	ID          string
	GroupID     string
	OwnerID     string
	CreatorID   string
	Title       string
	Assignees   []string
	Status      TaskStatus
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAssignee проверяет, назначен ли пользователь на задачу.
func (t *Task) IsAssignee(userID string) bool {
	for _, id := range t.Assignees {
		if id == userID {
			return true
		}
	}
	return false
}

// CompletionFor вычисляет отметку завершения после перехода в status:
// выставляется при входе в DONE, сохраняется при DONE -> DONE и сбрасывается в остальных случаях.
func (t *Task) CompletionFor(status TaskStatus, now time.Time) *time.Time {
	if status != TaskDone {
		return nil
	}
	if t.Status == TaskDone && t.CompletedAt != nil {
		return t.CompletedAt
	}
	return &now
}

// TaskRepository определяет контракт для работы с хранилищем задач.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, taskID string) (*Task, error)
	ExistsTask(ctx context.Context, taskID string) (bool, error)
	// UpdateStatus записывает статус и отметку завершения одним условным обновлением,
	// только если текущий статус равен from.
	UpdateStatus(ctx context.Context, taskID string, from, to TaskStatus, completedAt *time.Time) (*Task, error)
}
