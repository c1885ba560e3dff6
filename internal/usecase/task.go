package usecase

import (
	"context"
	"errors"
	"time"

	"study-group-service/internal/domain"
)

// TaskUseCase реализует переходы статусов задач.
type TaskUseCase struct {
	taskRepo   domain.TaskRepository
	memberRepo domain.MembershipRepository
	now        func() time.Time
}

// NewTaskUseCase создает новый экземпляр TaskUseCase.
func NewTaskUseCase(taskRepo domain.TaskRepository, memberRepo domain.MembershipRepository) domain.TaskUseCase {
	return &TaskUseCase{
		taskRepo:   taskRepo,
		memberRepo: memberRepo,
		now:        time.Now,
	}
}

// CreateTask создает задачу в статусе TODO. Создатель и исполнители должны быть
// активными участниками группы.
func (uc *TaskUseCase) CreateTask(ctx context.Context, actor domain.Actor, task *domain.Task) (*domain.Task, error) {
	// Валидация входных данных
	if task.ID == "" {
		return nil, domain.ErrInvalidTaskID
	}
	if task.GroupID == "" {
		return nil, domain.ErrInvalidGroupID
	}
	if task.Title == "" {
		return nil, domain.ErrInvalidTitle
	}
	if actor.UserID == "" {
		return nil, domain.ErrInvalidUserID
	}

	membership, err := uc.membershipOf(ctx, actor, task.GroupID)
	if err != nil {
		return nil, err
	}
	if !membership.IsActive() {
		return nil, domain.ErrNotActiveMember
	}

	exists, err := uc.taskRepo.ExistsTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrTaskAlreadyExists
	}

	assignees := make([]string, 0, len(task.Assignees))
	seen := make(map[string]struct{}, len(task.Assignees))
	for _, userID := range task.Assignees {
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}

		m, err := uc.memberRepo.GetByKey(ctx, task.GroupID, userID)
		if err != nil {
			if errors.Is(err, domain.ErrMembershipNotFound) {
				return nil, domain.ErrAssigneeNotMember
			}
			return nil, err
		}
		if !m.IsActive() {
			return nil, domain.ErrAssigneeNotMember
		}
		assignees = append(assignees, userID)
	}

	now := uc.now().UTC()
	task.Assignees = assignees
	task.CreatorID = actor.UserID
	if task.OwnerID == "" {
		task.OwnerID = actor.UserID
	}
	task.Status = domain.TaskTodo
	task.CompletedAt = nil
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// GetTask возвращает задачу по ID. Задачу видят только активные участники ее группы.
func (uc *TaskUseCase) GetTask(ctx context.Context, actor domain.Actor, taskID string) (*domain.Task, error) {
	if taskID == "" {
		return nil, domain.ErrInvalidTaskID
	}
	if actor.UserID == "" {
		return nil, domain.ErrInvalidUserID
	}

	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	membership, err := uc.membershipOf(ctx, actor, task.GroupID)
	if err != nil {
		return nil, err
	}
	if !membership.IsActive() {
		return nil, domain.ErrNotActiveMember
	}

	return task, nil
}

// ChangeStatus переводит задачу в новый статус. Разрешено исполнителю, создателю
// или участнику группы с ролью не ниже ADMIN.
func (uc *TaskUseCase) ChangeStatus(ctx context.Context, actor domain.Actor, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if taskID == "" {
		return nil, domain.ErrInvalidTaskID
	}
	if actor.UserID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	// 1. Получаем задачу
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// 2. Проверяем права
	if err := uc.authorize(ctx, actor, task); err != nil {
		return nil, err
	}

	// 3. Проверяем переход по таблице
	if err := task.Status.ValidateTransition(status); err != nil {
		return nil, err
	}
	if task.Status == status {
		return task, nil
	}

	// 4. Статус и отметка завершения пишутся одним обновлением
	completedAt := task.CompletionFor(status, uc.now().UTC())
	return uc.taskRepo.UpdateStatus(ctx, taskID, task.Status, status, completedAt)
}

func (uc *TaskUseCase) authorize(ctx context.Context, actor domain.Actor, task *domain.Task) error {
	if task.IsAssignee(actor.UserID) || task.CreatorID == actor.UserID {
		return nil
	}

	membership, err := uc.membershipOf(ctx, actor, task.GroupID)
	if err != nil {
		return err
	}
	role, ok := domain.Actor{UserID: actor.UserID, Membership: membership}.ActiveRole()
	if !ok {
		return domain.ErrTaskForbidden
	}

	decision := domain.Authorize(domain.PolicyRequest{ActorRole: role, Action: domain.ActionChangeTaskStatus})
	if !decision.Allowed {
		return domain.ErrTaskForbidden
	}
	return nil
}

// membershipOf возвращает членство актора в группе задачи или nil.
func (uc *TaskUseCase) membershipOf(ctx context.Context, actor domain.Actor, groupID string) (*domain.Membership, error) {
	if actor.Membership != nil && actor.Membership.GroupID == groupID && actor.Membership.UserID == actor.UserID {
		return actor.Membership, nil
	}

	m, err := uc.memberRepo.GetByKey(ctx, groupID, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}
