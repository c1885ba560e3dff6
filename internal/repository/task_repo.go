package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"study-group-service/internal/database"
	"study-group-service/internal/domain"
)

// TaskRepository реализует взаимодействие с задачами в PostgreSQL.
type TaskRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewTaskRepository создает новый экземпляр TaskRepository.
func NewTaskRepository(db *sql.DB, queries *database.Queries) domain.TaskRepository {
	return &TaskRepository{
		db:      db,
		queries: queries,
	}
}

// Create сохраняет задачу вместе с исполнителями.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	return withTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		err := q.CreateTask(ctx, database.CreateTaskParams{
			TaskID:      task.ID,
			GroupID:     task.GroupID,
			OwnerID:     task.OwnerID,
			CreatorID:   task.CreatorID,
			Title:       task.Title,
			Status:      string(task.Status),
			CompletedAt: nullTime(task.CompletedAt),
			CreatedAt:   task.CreatedAt,
			UpdatedAt:   task.UpdatedAt,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrTaskAlreadyExists
			}
			return fmt.Errorf("failed to create task: %w", err)
		}

		for _, userID := range task.Assignees {
			if err := q.AddTaskAssignee(ctx, database.AddTaskAssigneeParams{
				TaskID: task.ID,
				UserID: userID,
			}); err != nil {
				return fmt.Errorf("failed to add assignee %s: %w", userID, err)
			}
		}

		return nil
	})
}

// GetByID возвращает задачу с исполнителями.
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	row, err := r.queries.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return r.withAssignees(ctx, row)
}

// ExistsTask проверяет существование задачи.
func (r *TaskRepository) ExistsTask(ctx context.Context, taskID string) (bool, error) {
	count, err := r.queries.TaskExists(ctx, taskID)
	if err != nil {
		return false, fmt.Errorf("failed to check task existence: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus пишет новый статус и отметку завершения одним условным UPDATE.
// Если статус успел измениться, возвращается ErrTaskStatusConflicts.
func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID string, from, to domain.TaskStatus, completedAt *time.Time) (*domain.Task, error) {
	row, err := r.queries.UpdateTaskStatus(ctx, database.UpdateTaskStatusParams{
		TaskID:      taskID,
		Status:      string(from),
		Status_2:    string(to),
		CompletedAt: nullTime(completedAt),
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to update task status: %w", err)
		}
		exists, existsErr := r.ExistsTask(ctx, taskID)
		if existsErr != nil {
			return nil, existsErr
		}
		if !exists {
			return nil, domain.ErrTaskNotFound
		}
		return nil, domain.ErrTaskStatusConflicts
	}

	return r.withAssignees(ctx, row)
}

func (r *TaskRepository) withAssignees(ctx context.Context, row database.Task) (*domain.Task, error) {
	assignees, err := r.queries.GetTaskAssignees(ctx, row.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task assignees: %w", err)
	}
	return toDomainTask(row, assignees), nil
}
