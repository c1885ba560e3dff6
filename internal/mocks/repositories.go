// Package mocks testify-моки интерфейсов domain для unit-тестов.
package mocks

import (
	"context"
	"time"

	"study-group-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type GroupRepository struct {
	mock.Mock
}

func (m *GroupRepository) CreateWithOwner(ctx context.Context, group *domain.Group, owner *domain.Membership) error {
	args := m.Called(ctx, group, owner)
	return args.Error(0)
}

func (m *GroupRepository) GetByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *GroupRepository) ExistsGroup(ctx context.Context, groupID string) (bool, error) {
	args := m.Called(ctx, groupID)
	return args.Bool(0), args.Error(1)
}

type MembershipRepository struct {
	mock.Mock
}

func (m *MembershipRepository) GetByKey(ctx context.Context, groupID, userID string) (*domain.Membership, error) {
	args := m.Called(ctx, groupID, userID)
	return membershipOrNil(args)
}

func (m *MembershipRepository) ListByGroup(ctx context.Context, groupID string) ([]*domain.Membership, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Membership), args.Error(1)
}

func (m *MembershipRepository) CountActive(ctx context.Context, groupID string) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MembershipRepository) CountActiveAdmins(ctx context.Context, groupID, excludeUserID string) (int, error) {
	args := m.Called(ctx, groupID, excludeUserID)
	return args.Int(0), args.Error(1)
}

func (m *MembershipRepository) Request(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MembershipRepository) JoinActive(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MembershipRepository) Approve(ctx context.Context, groupID, userID string, at time.Time) (*domain.Membership, error) {
	args := m.Called(ctx, groupID, userID, at)
	return membershipOrNil(args)
}

func (m *MembershipRepository) Delete(ctx context.Context, groupID, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MembershipRepository) Terminate(ctx context.Context, groupID, userID string, status domain.MembershipStatus, at time.Time) (*domain.Membership, error) {
	args := m.Called(ctx, groupID, userID, status, at)
	return membershipOrNil(args)
}

func (m *MembershipRepository) UpdateRole(ctx context.Context, groupID, userID string, from, to domain.Role) (*domain.Membership, error) {
	args := m.Called(ctx, groupID, userID, from, to)
	return membershipOrNil(args)
}

func (m *MembershipRepository) LeaveAsOwner(ctx context.Context, groupID, ownerID string, at time.Time) (*domain.Membership, error) {
	args := m.Called(ctx, groupID, ownerID, at)
	return membershipOrNil(args)
}

func (m *MembershipRepository) TransferOwnership(ctx context.Context, groupID, fromUserID, toUserID string) error {
	args := m.Called(ctx, groupID, fromUserID, toUserID)
	return args.Error(0)
}

type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	return taskOrNil(args)
}

func (m *TaskRepository) ExistsTask(ctx context.Context, taskID string) (bool, error) {
	args := m.Called(ctx, taskID)
	return args.Bool(0), args.Error(1)
}

func (m *TaskRepository) UpdateStatus(ctx context.Context, taskID string, from, to domain.TaskStatus, completedAt *time.Time) (*domain.Task, error) {
	args := m.Called(ctx, taskID, from, to, completedAt)
	return taskOrNil(args)
}

type Notifier struct {
	mock.Mock
}

func (m *Notifier) Notify(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func membershipOrNil(args mock.Arguments) (*domain.Membership, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func taskOrNil(args mock.Arguments) (*domain.Task, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) GetMembershipStats(ctx context.Context, groupID string) ([]*domain.StatusCount, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StatusCount), args.Error(1)
}

func (m *StatsRepository) GetTaskStats(ctx context.Context, groupID string) ([]*domain.StatusCount, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StatusCount), args.Error(1)
}
