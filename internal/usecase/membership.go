package usecase

import (
	"context"
	"errors"
	"time"

	"study-group-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// MembershipUseCase реализует конечный автомат членства.
type MembershipUseCase struct {
	groupRepo  domain.GroupRepository
	memberRepo domain.MembershipRepository
	admission  *AdmissionController
	notifier   domain.Notifier
	logger     *logrus.Logger
	now        func() time.Time
}

// NewMembershipUseCase создает новый экземпляр MembershipUseCase.
func NewMembershipUseCase(
	groupRepo domain.GroupRepository,
	memberRepo domain.MembershipRepository,
	notifier domain.Notifier,
	logger *logrus.Logger,
) domain.MembershipUseCase {
	return &MembershipUseCase{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		admission:  NewAdmissionController(memberRepo),
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// RequestJoin создает заявку на вступление. В открытую группу пользователь
// вступает сразу, занимая место.
func (uc *MembershipUseCase) RequestJoin(ctx context.Context, actor domain.Actor, groupID string) (*domain.Membership, error) {
	if groupID == "" {
		return nil, domain.ErrInvalidGroupID
	}
	if actor.UserID == "" {
		return nil, domain.ErrInvalidUserID
	}

	group, err := uc.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.Recruiting {
		return nil, domain.ErrGroupNotRecruiting
	}

	current, err := uc.lookup(ctx, actor, groupID)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	m := &domain.Membership{
		GroupID:     groupID,
		UserID:      actor.UserID,
		Role:        domain.RoleMember,
		RequestedAt: now,
	}

	if group.Open() {
		m.Status = domain.StatusActive
	} else {
		m.Status = domain.StatusPending
	}

	var from domain.MembershipStatus
	if current != nil {
		from = current.Status
	}
	if !from.CanTransition(m.Status) {
		return nil, domain.ErrAlreadyMember
	}

	if m.Status == domain.StatusPending {
		if err := uc.memberRepo.Request(ctx, m); err != nil {
			return nil, err
		}
		return m, nil
	}

	// Открытая группа: ранний отказ, окончательная проверка в транзакции репозитория
	ok, err := uc.admission.HasCapacity(ctx, group)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrGroupFull
	}

	m.ApprovedAt = &now
	if err := uc.memberRepo.JoinActive(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Approve одобряет заявку, если в группе есть место на момент фиксации.
func (uc *MembershipUseCase) Approve(ctx context.Context, actor domain.Actor, groupID, userID string) (*domain.Membership, error) {
	if err := validateKey(groupID, userID); err != nil {
		return nil, err
	}

	role, ok := roleIn(actor, groupID)
	if !ok {
		return nil, domain.ErrNotActiveMember
	}
	if err := domain.Authorize(domain.PolicyRequest{ActorRole: role, Action: domain.ActionApprove}).Err(); err != nil {
		return nil, err
	}

	target, err := uc.memberRepo.GetByKey(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if target.Status != domain.StatusPending {
		return nil, domain.ErrNotPending
	}

	group, err := uc.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	hasRoom, err := uc.admission.HasCapacity(ctx, group)
	if err != nil {
		return nil, err
	}
	if !hasRoom {
		return nil, domain.ErrGroupFull
	}

	approved, err := uc.memberRepo.Approve(ctx, groupID, userID, uc.now().UTC())
	if err != nil {
		return nil, err
	}

	emit(ctx, uc.logger, uc.notifier, domain.Event{
		Type:     domain.EventJoinApproved,
		GroupID:  groupID,
		ActorID:  actor.UserID,
		TargetID: userID,
		At:       *approved.ApprovedAt,
	})

	return approved, nil
}

// Reject удаляет заявку или завершенную запись. ACTIVE членство отклонить нельзя.
func (uc *MembershipUseCase) Reject(ctx context.Context, actor domain.Actor, groupID, userID string) error {
	if err := validateKey(groupID, userID); err != nil {
		return err
	}

	role, ok := roleIn(actor, groupID)
	if !ok {
		return domain.ErrNotActiveMember
	}
	if err := domain.Authorize(domain.PolicyRequest{ActorRole: role, Action: domain.ActionReject}).Err(); err != nil {
		return err
	}

	target, err := uc.memberRepo.GetByKey(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if target.Status == domain.StatusActive {
		return domain.ErrMembershipActive
	}

	return uc.memberRepo.Delete(ctx, groupID, userID)
}

// Kick исключает участника из группы.
func (uc *MembershipUseCase) Kick(ctx context.Context, actor domain.Actor, groupID, userID string) (*domain.Membership, error) {
	if err := validateKey(groupID, userID); err != nil {
		return nil, err
	}

	// Нельзя исключить самого себя вне зависимости от роли
	if actor.UserID == userID {
		return nil, domain.Authorize(domain.PolicyRequest{Action: domain.ActionKick, SelfTarget: true}).Err()
	}

	role, ok := roleIn(actor, groupID)
	if !ok {
		return nil, domain.ErrNotActiveMember
	}

	target, err := uc.memberRepo.GetByKey(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	decision := domain.Authorize(domain.PolicyRequest{
		ActorRole:  role,
		TargetRole: target.Role,
		Action:     domain.ActionKick,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if !target.Status.CanTransition(domain.StatusKicked) {
		return nil, domain.ErrNotActive
	}

	kicked, err := uc.memberRepo.Terminate(ctx, groupID, userID, domain.StatusKicked, uc.now().UTC())
	if err != nil {
		return nil, err
	}

	emit(ctx, uc.logger, uc.notifier, domain.Event{
		Type:     domain.EventMemberKicked,
		GroupID:  groupID,
		ActorID:  actor.UserID,
		TargetID: userID,
		At:       *kicked.LeftAt,
	})

	return kicked, nil
}

// Leave выводит актора из группы. Владелец может уйти только при наличии другого
// активного админа, которому переходит владение.
func (uc *MembershipUseCase) Leave(ctx context.Context, actor domain.Actor, groupID string) (*domain.Membership, error) {
	if err := validateKey(groupID, actor.UserID); err != nil {
		return nil, err
	}

	current, err := uc.lookup(ctx, actor, groupID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrMembershipNotFound
	}
	if !current.Status.CanTransition(domain.StatusLeft) {
		return nil, domain.ErrNotActive
	}

	now := uc.now().UTC()

	if current.Role != domain.RoleOwner {
		left, err := uc.memberRepo.Terminate(ctx, groupID, actor.UserID, domain.StatusLeft, now)
		if err != nil {
			return nil, err
		}
		uc.emitLeft(ctx, actor.UserID, groupID, now)
		return left, nil
	}

	admins, err := uc.memberRepo.CountActiveAdmins(ctx, groupID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if admins == 0 {
		return nil, domain.ErrOwnerWithoutAdmin
	}

	successor, err := uc.memberRepo.LeaveAsOwner(ctx, groupID, actor.UserID, now)
	if err != nil {
		return nil, err
	}

	left := *current
	left.Role = domain.RoleAdmin
	left.Status = domain.StatusLeft
	left.LeftAt = &now

	uc.emitLeft(ctx, actor.UserID, groupID, now)
	emit(ctx, uc.logger, uc.notifier, domain.Event{
		Type:     domain.EventOwnershipTransferred,
		GroupID:  groupID,
		ActorID:  actor.UserID,
		TargetID: successor.UserID,
		At:       now,
	})

	return &left, nil
}

// ChangeRole переводит участника между ролями ADMIN и MEMBER. Доступно только владельцу.
func (uc *MembershipUseCase) ChangeRole(ctx context.Context, actor domain.Actor, groupID, userID string, role domain.Role) (*domain.Membership, error) {
	if err := validateKey(groupID, userID); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	actorRole, ok := roleIn(actor, groupID)
	if !ok {
		return nil, domain.ErrNotActiveMember
	}

	target, err := uc.memberRepo.GetByKey(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	decision := domain.Authorize(domain.PolicyRequest{
		ActorRole:     actorRole,
		TargetRole:    target.Role,
		Action:        domain.ActionChangeRole,
		SelfTarget:    actor.UserID == userID,
		RequestedRole: role,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if !target.IsActive() {
		return nil, domain.ErrNotActive
	}

	// Повторная запись той же роли не выполняется
	if target.Role == role {
		return target, nil
	}

	return uc.memberRepo.UpdateRole(ctx, groupID, userID, target.Role, role)
}

func (uc *MembershipUseCase) emitLeft(ctx context.Context, userID, groupID string, at time.Time) {
	emit(ctx, uc.logger, uc.notifier, domain.Event{
		Type:     domain.EventMemberLeft,
		GroupID:  groupID,
		ActorID:  userID,
		TargetID: userID,
		At:       at,
	})
}

// lookup возвращает членство актора в группе или nil, если его нет.
func (uc *MembershipUseCase) lookup(ctx context.Context, actor domain.Actor, groupID string) (*domain.Membership, error) {
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

func validateKey(groupID, userID string) error {
	if groupID == "" {
		return domain.ErrInvalidGroupID
	}
	if userID == "" {
		return domain.ErrInvalidUserID
	}
	return nil
}
