package mocks

import (
	"context"

	"study-group-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type GroupUseCase struct {
	mock.Mock
}

func (m *GroupUseCase) CreateGroup(ctx context.Context, ownerID string, group *domain.Group) (*domain.Group, error) {
	args := m.Called(ctx, ownerID, group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *GroupUseCase) GetGroup(ctx context.Context, actor domain.Actor, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, actor, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *GroupUseCase) ResolveActor(ctx context.Context, userID, groupID string) (domain.Actor, error) {
	args := m.Called(ctx, userID, groupID)
	return args.Get(0).(domain.Actor), args.Error(1)
}

type MembershipUseCase struct {
	mock.Mock
}

func (m *MembershipUseCase) RequestJoin(ctx context.Context, actor domain.Actor, groupID string) (*domain.Membership, error) {
	args := m.Called(ctx, actor, groupID)
	return membershipOrNil(args)
}

func (m *MembershipUseCase) Approve(ctx context.Context, actor domain.Actor, groupID, userID string) (*domain.Membership, error) {
	args := m.Called(ctx, actor, groupID, userID)
	return membershipOrNil(args)
}

func (m *MembershipUseCase) Reject(ctx context.Context, actor domain.Actor, groupID, userID string) error {
	args := m.Called(ctx, actor, groupID, userID)
	return args.Error(0)
}

func (m *MembershipUseCase) Kick(ctx context.Context, actor domain.Actor, groupID, userID string) (*domain.Membership, error) {
	args := m.Called(ctx, actor, groupID, userID)
	return membershipOrNil(args)
}

func (m *MembershipUseCase) Leave(ctx context.Context, actor domain.Actor, groupID string) (*domain.Membership, error) {
	args := m.Called(ctx, actor, groupID)
	return membershipOrNil(args)
}

func (m *MembershipUseCase) ChangeRole(ctx context.Context, actor domain.Actor, groupID, userID string, role domain.Role) (*domain.Membership, error) {
	args := m.Called(ctx, actor, groupID, userID, role)
	return membershipOrNil(args)
}

type OwnershipUseCase struct {
	mock.Mock
}

func (m *OwnershipUseCase) TransferOwnership(ctx context.Context, actor domain.Actor, groupID, toUserID string) (*domain.Group, error) {
	args := m.Called(ctx, actor, groupID, toUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

type TaskUseCase struct {
	mock.Mock
}

func (m *TaskUseCase) CreateTask(ctx context.Context, actor domain.Actor, task *domain.Task) (*domain.Task, error) {
	args := m.Called(ctx, actor, task)
	return taskOrNil(args)
}

func (m *TaskUseCase) GetTask(ctx context.Context, actor domain.Actor, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, actor, taskID)
	return taskOrNil(args)
}

func (m *TaskUseCase) ChangeStatus(ctx context.Context, actor domain.Actor, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	args := m.Called(ctx, actor, taskID, status)
	return taskOrNil(args)
}

type StatsUseCase struct {
	mock.Mock
}

func (m *StatsUseCase) GetGroupStats(ctx context.Context, actor domain.Actor, groupID string) (*domain.GroupStats, error) {
	args := m.Called(ctx, actor, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupStats), args.Error(1)
}
