package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"study-group-service/internal/domain"
)

// GroupUseCase реализует бизнес-логику для работы с группами.
type GroupUseCase struct {
	groupRepo  domain.GroupRepository
	memberRepo domain.MembershipRepository
	now        func() time.Time
}

// NewGroupUseCase создает новый экземпляр GroupUseCase.
func NewGroupUseCase(groupRepo domain.GroupRepository, memberRepo domain.MembershipRepository) domain.GroupUseCase {
	return &GroupUseCase{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		now:        time.Now,
	}
}

// CreateGroup создает группу, владельцем которой становится ownerID.
func (uc *GroupUseCase) CreateGroup(ctx context.Context, ownerID string, group *domain.Group) (*domain.Group, error) {
	// Валидация
	if group.ID == "" {
		return nil, domain.ErrInvalidGroupID
	}
	if ownerID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if group.Capacity <= 0 || group.Capacity > math.MaxInt32 {
		return nil, domain.ErrInvalidCapacity
	}

	exists, err := uc.groupRepo.ExistsGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrGroupAlreadyExists
	}

	now := uc.now().UTC()
	group.OwnerID = ownerID
	group.CreatedAt = now

	owner := &domain.Membership{
		GroupID:     group.ID,
		UserID:      ownerID,
		Role:        domain.RoleOwner,
		Status:      domain.StatusActive,
		RequestedAt: now,
		ApprovedAt:  &now,
	}

	if err := uc.groupRepo.CreateWithOwner(ctx, group, owner); err != nil {
		return nil, err
	}

	group.Members = []*domain.Membership{owner}
	return group, nil
}

// GetGroup возвращает группу вместе с членствами. Состав видят только активные участники.
func (uc *GroupUseCase) GetGroup(ctx context.Context, actor domain.Actor, groupID string) (*domain.Group, error) {
	if groupID == "" {
		return nil, domain.ErrInvalidGroupID
	}

	group, err := uc.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if _, ok := roleIn(actor, groupID); !ok {
		return nil, domain.ErrNotActiveMember
	}

	members, err := uc.memberRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return group, nil
}

// ResolveActor загружает членство пользователя в группе. Отсутствие членства не ошибка.
func (uc *GroupUseCase) ResolveActor(ctx context.Context, userID, groupID string) (domain.Actor, error) {
	actor := domain.Actor{UserID: userID}
	if userID == "" {
		return actor, domain.ErrInvalidUserID
	}

	m, err := uc.memberRepo.GetByKey(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return actor, nil
		}
		return actor, err
	}
	actor.Membership = m

	return actor, nil
}
