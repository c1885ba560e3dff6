package usecase

import (
	"context"
	"time"

	"study-group-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// OwnershipUseCase реализует передачу владения группой.
type OwnershipUseCase struct {
	groupRepo  domain.GroupRepository
	memberRepo domain.MembershipRepository
	notifier   domain.Notifier
	logger     *logrus.Logger
	now        func() time.Time
}

// NewOwnershipUseCase создает новый экземпляр OwnershipUseCase.
func NewOwnershipUseCase(
	groupRepo domain.GroupRepository,
	memberRepo domain.MembershipRepository,
	notifier domain.Notifier,
	logger *logrus.Logger,
) domain.OwnershipUseCase {
	return &OwnershipUseCase{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// TransferOwnership передает владение активному админу группы.
// Смена двух ролей и владельца группы фиксируется одной транзакцией.
func (uc *OwnershipUseCase) TransferOwnership(ctx context.Context, actor domain.Actor, groupID, toUserID string) (*domain.Group, error) {
	if err := validateKey(groupID, toUserID); err != nil {
		return nil, err
	}

	group, err := uc.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	// 1. Владение уже у этого пользователя
	if toUserID == group.OwnerID {
		return nil, domain.ErrTransferToSelf
	}

	// 2. Передать владение может только действующий владелец
	role, ok := roleIn(actor, groupID)
	if !ok || role != domain.RoleOwner || actor.UserID != group.OwnerID {
		return nil, domain.ErrNotOwner
	}

	// 3. Получатель должен быть активным админом
	target, err := uc.memberRepo.GetByKey(ctx, groupID, toUserID)
	if err != nil {
		return nil, err
	}
	if !target.IsActive() {
		return nil, domain.ErrNotActive
	}
	if target.Role != domain.RoleAdmin {
		return nil, domain.ErrTransferTargetRole
	}

	// 4. Атомарная смена ролей и владельца
	if err := uc.memberRepo.TransferOwnership(ctx, groupID, actor.UserID, toUserID); err != nil {
		return nil, err
	}

	group.OwnerID = toUserID

	emit(ctx, uc.logger, uc.notifier, domain.Event{
		Type:     domain.EventOwnershipTransferred,
		GroupID:  groupID,
		ActorID:  actor.UserID,
		TargetID: toUserID,
		At:       uc.now().UTC(),
	})

	return group, nil
}
