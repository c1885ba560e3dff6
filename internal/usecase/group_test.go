package usecase_test

import (
	"context"
	"math"
	"testing"

	"study-group-service/internal/domain"
	"study-group-service/internal/mocks"
	"study-group-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGroupUseCase_CreateGroup_Success(t *testing.T) {
	ctx := context.Background()
	groupRepo := &mocks.GroupRepository{}
	memberRepo := &mocks.MembershipRepository{}
	uc := usecase.NewGroupUseCase(groupRepo, memberRepo)

	groupRepo.On("ExistsGroup", ctx, "g1").Return(false, nil)
	groupRepo.On("CreateWithOwner", ctx, mock.AnythingOfType("*domain.Group"), mock.MatchedBy(func(m *domain.Membership) bool {
		return m.UserID == "u1" && m.IsActiveOwner() && m.ApprovedAt != nil
	})).Return(nil)

	group, err := uc.CreateGroup(ctx, "u1", &domain.Group{ID: "g1", Capacity: 10, Recruiting: true})

	require.NoError(t, err)
	assert.Equal(t, "u1", group.OwnerID)
	require.Len(t, group.Members, 1)
	assert.Equal(t, domain.RoleOwner, group.Members[0].Role)
	groupRepo.AssertExpectations(t)
}

func TestGroupUseCase_CreateGroup_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewGroupUseCase(&mocks.GroupRepository{}, &mocks.MembershipRepository{})

	testCases := []struct {
		name     string
		ownerID  string
		group    *domain.Group
		expected error
	}{
		{"Empty group ID", "u1", &domain.Group{Capacity: 3}, domain.ErrInvalidGroupID},
		{"Empty owner", "", &domain.Group{ID: "g1", Capacity: 3}, domain.ErrInvalidUserID},
		{"Zero capacity", "u1", &domain.Group{ID: "g1"}, domain.ErrInvalidCapacity},
		{"Negative capacity", "u1", &domain.Group{ID: "g1", Capacity: -1}, domain.ErrInvalidCapacity},
		{"Capacity above int32", "u1", &domain.Group{ID: "g1", Capacity: math.MaxInt32 + 1}, domain.ErrInvalidCapacity},
		{"Capacity wraps to one in int32", "u1", &domain.Group{ID: "g1", Capacity: 1<<32 + 1}, domain.ErrInvalidCapacity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			group, err := uc.CreateGroup(ctx, tc.ownerID, tc.group)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, group)
		})
	}
}

func TestGroupUseCase_CreateGroup_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	groupRepo := &mocks.GroupRepository{}
	uc := usecase.NewGroupUseCase(groupRepo, &mocks.MembershipRepository{})

	groupRepo.On("ExistsGroup", ctx, "g1").Return(true, nil)

	_, err := uc.CreateGroup(ctx, "u1", &domain.Group{ID: "g1", Capacity: 3})
	assert.ErrorIs(t, err, domain.ErrGroupAlreadyExists)
}

func TestGroupUseCase_GetGroup(t *testing.T) {
	ctx := context.Background()
	groupRepo := &mocks.GroupRepository{}
	memberRepo := &mocks.MembershipRepository{}
	uc := usecase.NewGroupUseCase(groupRepo, memberRepo)

	owner := member("g1", "owner", domain.RoleOwner, domain.StatusActive)
	members := []*domain.Membership{owner}
	groupRepo.On("GetByID", ctx, "g1").Return(&domain.Group{ID: "g1", OwnerID: "owner", Capacity: 3}, nil)
	memberRepo.On("ListByGroup", ctx, "g1").Return(members, nil)

	group, err := uc.GetGroup(ctx, actorWith(owner), "g1")

	require.NoError(t, err)
	assert.Equal(t, members, group.Members)
}

func TestGroupUseCase_GetGroup_OnlyActiveMembers(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name  string
		actor domain.Actor
	}{
		{"Stranger", domain.Actor{UserID: "stranger"}},
		{"Pending requester", actorWith(member("g1", "u1", domain.RoleMember, domain.StatusPending))},
		{"Kicked member", actorWith(member("g1", "u1", domain.RoleMember, domain.StatusKicked))},
		{"Member of another group", actorWith(member("g2", "u1", domain.RoleOwner, domain.StatusActive))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			groupRepo := &mocks.GroupRepository{}
			memberRepo := &mocks.MembershipRepository{}
			uc := usecase.NewGroupUseCase(groupRepo, memberRepo)
			groupRepo.On("GetByID", ctx, "g1").Return(&domain.Group{ID: "g1", OwnerID: "owner", Capacity: 3}, nil)

			group, err := uc.GetGroup(ctx, tc.actor, "g1")

			assert.ErrorIs(t, err, domain.ErrNotActiveMember)
			assert.Nil(t, group)
			memberRepo.AssertNotCalled(t, "ListByGroup", mock.Anything, mock.Anything)
		})
	}
}

func TestGroupUseCase_GetGroup_NotFound(t *testing.T) {
	ctx := context.Background()
	groupRepo := &mocks.GroupRepository{}
	uc := usecase.NewGroupUseCase(groupRepo, &mocks.MembershipRepository{})
	groupRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrGroupNotFound)

	_, err := uc.GetGroup(ctx, domain.Actor{UserID: "u1"}, "ghost")
	assert.ErrorIs(t, err, domain.KindNotFound)
}

func TestGroupUseCase_ResolveActor(t *testing.T) {
	ctx := context.Background()
	memberRepo := &mocks.MembershipRepository{}
	uc := usecase.NewGroupUseCase(&mocks.GroupRepository{}, memberRepo)

	memberRepo.On("GetByKey", ctx, "g1", "stranger").Return(nil, domain.ErrMembershipNotFound)
	memberRepo.On("GetByKey", ctx, "g1", "owner").Return(member("g1", "owner", domain.RoleOwner, domain.StatusActive), nil)

	actor, err := uc.ResolveActor(ctx, "stranger", "g1")
	require.NoError(t, err)
	assert.Equal(t, "stranger", actor.UserID)
	assert.Nil(t, actor.Membership)

	actor, err = uc.ResolveActor(ctx, "owner", "g1")
	require.NoError(t, err)
	require.NotNil(t, actor.Membership)
	assert.Equal(t, domain.RoleOwner, actor.Membership.Role)
}
