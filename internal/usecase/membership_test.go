package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-group-service/internal/domain"
	"study-group-service/internal/mocks"
	"study-group-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type membershipDeps struct {
	groupRepo  *mocks.GroupRepository
	memberRepo *mocks.MembershipRepository
	notifier   *mocks.Notifier
	uc         domain.MembershipUseCase
}

func newMembershipDeps() membershipDeps {
	d := membershipDeps{
		groupRepo:  &mocks.GroupRepository{},
		memberRepo: &mocks.MembershipRepository{},
		notifier:   &mocks.Notifier{},
	}
	d.uc = usecase.NewMembershipUseCase(d.groupRepo, d.memberRepo, d.notifier, newTestLogger())
	return d
}

func (d membershipDeps) assertExpectations(t *testing.T) {
	d.groupRepo.AssertExpectations(t)
	d.memberRepo.AssertExpectations(t)
	d.notifier.AssertExpectations(t)
}

func approvalGroup() *domain.Group {
	return &domain.Group{ID: "g1", OwnerID: "owner", Capacity: 3, Recruiting: true, RequiresApproval: true}
}

func openGroup() *domain.Group {
	return &domain.Group{ID: "g1", OwnerID: "owner", Capacity: 3, Recruiting: true}
}

func TestMembershipUseCase_RequestJoin_Pending(t *testing.T) {
	ctx := context.Background()
	d := newMembershipDeps()

	d.groupRepo.On("GetByID", ctx, "g1").Return(approvalGroup(), nil)
	d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(nil, domain.ErrMembershipNotFound)
	d.memberRepo.On("Request", ctx, mock.MatchedBy(func(m *domain.Membership) bool {
		return m.UserID == "u1" && m.Status == domain.StatusPending && m.Role == domain.RoleMember
	})).Return(nil)

	m, err := d.uc.RequestJoin(ctx, domain.Actor{UserID: "u1"}, "g1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, m.Status)
	assert.Nil(t, m.ApprovedAt)
	d.memberRepo.AssertNotCalled(t, "CountActive", mock.Anything, mock.Anything)
	d.assertExpectations(t)
}

func TestMembershipUseCase_RequestJoin_OpenGroup(t *testing.T) {
	ctx := context.Background()
	d := newMembershipDeps()

	d.groupRepo.On("GetByID", ctx, "g1").Return(openGroup(), nil)
	d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(nil, domain.ErrMembershipNotFound)
	d.memberRepo.On("CountActive", ctx, "g1").Return(2, nil)
	d.memberRepo.On("JoinActive", ctx, mock.MatchedBy(func(m *domain.Membership) bool {
		return m.Status == domain.StatusActive && m.ApprovedAt != nil
	})).Return(nil)

	m, err := d.uc.RequestJoin(ctx, domain.Actor{UserID: "u1"}, "g1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, m.Status)
	d.assertExpectations(t)
}

func TestMembershipUseCase_RequestJoin_OpenGroupFull(t *testing.T) {
	ctx := context.Background()
	d := newMembershipDeps()

	d.groupRepo.On("GetByID", ctx, "g1").Return(openGroup(), nil)
	d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(nil, domain.ErrMembershipNotFound)
	d.memberRepo.On("CountActive", ctx, "g1").Return(3, nil)

	m, err := d.uc.RequestJoin(ctx, domain.Actor{UserID: "u1"}, "g1")

	assert.Nil(t, m)
	assert.ErrorIs(t, err, domain.KindCapacityExceeded)
	d.memberRepo.AssertNotCalled(t, "JoinActive", mock.Anything, mock.Anything)
	d.assertExpectations(t)
}

func TestMembershipUseCase_RequestJoin_Rejections(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		group    *domain.Group
		current  *domain.Membership
		expected error
	}{
		{"Already pending", approvalGroup(), member("g1", "u1", domain.RoleMember, domain.StatusPending), domain.ErrAlreadyMember},
		{"Already active", approvalGroup(), member("g1", "u1", domain.RoleMember, domain.StatusActive), domain.ErrAlreadyMember},
		{"Not recruiting", &domain.Group{ID: "g1", Capacity: 3}, nil, domain.ErrGroupNotRecruiting},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newMembershipDeps()
			d.groupRepo.On("GetByID", ctx, "g1").Return(tc.group, nil)

			actor := domain.Actor{UserID: "u1", Membership: tc.current}
			m, err := d.uc.RequestJoin(ctx, actor, "g1")

			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.expected)
			d.memberRepo.AssertNotCalled(t, "Request", mock.Anything, mock.Anything)
		})
	}
}

func TestMembershipUseCase_RequestJoin_AfterKick(t *testing.T) {
	ctx := context.Background()
	d := newMembershipDeps()

	d.groupRepo.On("GetByID", ctx, "g1").Return(approvalGroup(), nil)
	d.memberRepo.On("Request", ctx, mock.AnythingOfType("*domain.Membership")).Return(nil)

	kicked := member("g1", "u1", domain.RoleMember, domain.StatusKicked)
	m, err := d.uc.RequestJoin(ctx, actorWith(kicked), "g1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, m.Status)
	d.assertExpectations(t)
}

func TestMembershipUseCase_Approve_Success(t *testing.T) {
	ctx := context.Background()
	d := newMembershipDeps()
	admin := member("g1", "admin", domain.RoleAdmin, domain.StatusActive)

	approvedAt := time.Now().UTC()
	approved := member("g1", "u1", domain.RoleMember, domain.StatusActive)
	approved.ApprovedAt = &approvedAt

	d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(member("g1", "u1", domain.RoleMember, domain.StatusPending), nil)
	d.groupRepo.On("GetByID", ctx, "g1").Return(approvalGroup(), nil)
	d.memberRepo.On("CountActive", ctx, "g1").Return(2, nil)
	d.memberRepo.On("Approve", ctx, "g1", "u1", mock.AnythingOfType("time.Time")).Return(approved, nil)
	d.notifier.On("Notify", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventJoinApproved && e.TargetID == "u1" && e.ActorID == "admin"
	})).Return(nil)

	m, err := d.uc.Approve(ctx, actorWith(admin), "g1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, m.Status)
	assert.NotNil(t, m.ApprovedAt)
	d.assertExpectations(t)
}

func TestMembershipUseCase_Approve_ByMember(t *testing.T) {
	ctx := context.Background()
	d := newMembershipDeps()
	plain := member("g1", "m1", domain.RoleMember, domain.StatusActive)

	m, err := d.uc.Approve(ctx, actorWith(plain), "g1", "u1")

	assert.Nil(t, m)
	assert.ErrorIs(t, err, domain.KindPermissionDenied)
	d.memberRepo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMembershipUseCase_Approve_NotPending(t *testing.T) {
	ctx := context.Background()
	d := newMembershipDeps()
	owner := member("g1", "owner", domain.RoleOwner, domain.StatusActive)

	d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(member("g1", "u1", domain.RoleMember, domain.StatusActive), nil)

	_, err := d.uc.Approve(ctx, actorWith(owner), "g1", "u1")

	assert.ErrorIs(t, err, domain.ErrNotPending)
	assert.ErrorIs(t, err, domain.KindAlreadyProcessed)
}

func TestMembershipUseCase_Approve_CapacityExhaustedAtCommit(t *testing.T) {
	ctx := context.Background()
	d := newMembershipDeps()
	owner := member("g1", "owner", domain.RoleOwner, domain.StatusActive)

	d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(member("g1", "u1", domain.RoleMember, domain.StatusPending), nil)
	d.groupRepo.On("GetByID", ctx, "g1").Return(approvalGroup(), nil)
	d.memberRepo.On("CountActive", ctx, "g1").Return(2, nil)
	d.memberRepo.On("Approve", ctx, "g1", "u1", mock.AnythingOfType("time.Time")).Return(nil, domain.ErrGroupFull)

	_, err := d.uc.Approve(ctx, actorWith(owner), "g1", "u1")

	assert.ErrorIs(t, err, domain.KindCapacityExceeded)
	d.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestMembershipUseCase_Approve_NotificationFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	d := newMembershipDeps()
	owner := member("g1", "owner", domain.RoleOwner, domain.StatusActive)

	d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(member("g1", "u1", domain.RoleMember, domain.StatusPending), nil)
	d.groupRepo.On("GetByID", ctx, "g1").Return(approvalGroup(), nil)
	d.memberRepo.On("CountActive", ctx, "g1").Return(1, nil)
	d.memberRepo.On("Approve", ctx, "g1", "u1", mock.AnythingOfType("time.Time")).
		Return(member("g1", "u1", domain.RoleMember, domain.StatusActive), nil)
	d.notifier.On("Notify", ctx, mock.AnythingOfType("domain.Event")).Return(errors.New("redis down"))

	m, err := d.uc.Approve(ctx, actorWith(owner), "g1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, m.Status)
	d.assertExpectations(t)
}

func TestMembershipUseCase_Reject(t *testing.T) {
	ctx := context.Background()
	admin := member("g1", "admin", domain.RoleAdmin, domain.StatusActive)

	t.Run("Pending request is deleted", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(member("g1", "u1", domain.RoleMember, domain.StatusPending), nil)
		d.memberRepo.On("Delete", ctx, "g1", "u1").Return(nil)

		assert.NoError(t, d.uc.Reject(ctx, actorWith(admin), "g1", "u1"))
		d.assertExpectations(t)
	})

	for _, status := range []domain.MembershipStatus{domain.StatusKicked, domain.StatusLeft} {
		t.Run(string(status)+" record is deleted", func(t *testing.T) {
			d := newMembershipDeps()
			d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(member("g1", "u1", domain.RoleMember, status), nil)
			d.memberRepo.On("Delete", ctx, "g1", "u1").Return(nil)

			assert.NoError(t, d.uc.Reject(ctx, actorWith(admin), "g1", "u1"))
			d.assertExpectations(t)
		})
	}

	t.Run("Active membership cannot be rejected", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(member("g1", "u1", domain.RoleMember, domain.StatusActive), nil)

		err := d.uc.Reject(ctx, actorWith(admin), "g1", "u1")
		assert.ErrorIs(t, err, domain.KindAlreadyProcessed)
		d.memberRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Member cannot reject", func(t *testing.T) {
		d := newMembershipDeps()
		plain := member("g1", "m1", domain.RoleMember, domain.StatusActive)

		err := d.uc.Reject(ctx, actorWith(plain), "g1", "u1")
		assert.ErrorIs(t, err, domain.KindPermissionDenied)
	})
}

func TestMembershipUseCase_Kick(t *testing.T) {
	ctx := context.Background()
	owner := member("g1", "owner", domain.RoleOwner, domain.StatusActive)
	admin := member("g1", "admin", domain.RoleAdmin, domain.StatusActive)

	t.Run("Self kick denied", func(t *testing.T) {
		d := newMembershipDeps()
		_, err := d.uc.Kick(ctx, actorWith(admin), "g1", "admin")
		assert.ErrorIs(t, err, domain.KindSelfTargetDenied)
		d.memberRepo.AssertNotCalled(t, "GetByKey", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Admin cannot kick admin", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "a2").Return(member("g1", "a2", domain.RoleAdmin, domain.StatusActive), nil)

		_, err := d.uc.Kick(ctx, actorWith(admin), "g1", "a2")
		assert.ErrorIs(t, err, domain.KindPermissionDenied)
	})

	t.Run("Nobody kicks the owner", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "owner").Return(owner, nil)

		_, err := d.uc.Kick(ctx, actorWith(admin), "g1", "owner")
		assert.ErrorIs(t, err, domain.KindPermissionDenied)
	})

	t.Run("Owner kicks admin", func(t *testing.T) {
		d := newMembershipDeps()
		kicked := member("g1", "admin", domain.RoleAdmin, domain.StatusKicked)
		leftAt := time.Now().UTC()
		kicked.LeftAt = &leftAt

		d.memberRepo.On("GetByKey", ctx, "g1", "admin").Return(admin, nil)
		d.memberRepo.On("Terminate", ctx, "g1", "admin", domain.StatusKicked, mock.AnythingOfType("time.Time")).Return(kicked, nil)
		d.notifier.On("Notify", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventMemberKicked && e.TargetID == "admin"
		})).Return(nil)

		m, err := d.uc.Kick(ctx, actorWith(owner), "g1", "admin")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusKicked, m.Status)
		d.assertExpectations(t)
	})

	t.Run("Pending target is not active", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(member("g1", "u1", domain.RoleMember, domain.StatusPending), nil)

		_, err := d.uc.Kick(ctx, actorWith(owner), "g1", "u1")
		assert.ErrorIs(t, err, domain.ErrNotActive)
	})
}

func TestMembershipUseCase_Leave(t *testing.T) {
	ctx := context.Background()

	t.Run("Member leaves", func(t *testing.T) {
		d := newMembershipDeps()
		m1 := member("g1", "m1", domain.RoleMember, domain.StatusActive)
		left := member("g1", "m1", domain.RoleMember, domain.StatusLeft)

		d.memberRepo.On("Terminate", ctx, "g1", "m1", domain.StatusLeft, mock.AnythingOfType("time.Time")).Return(left, nil)
		d.notifier.On("Notify", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventMemberLeft
		})).Return(nil)

		m, err := d.uc.Leave(ctx, actorWith(m1), "g1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusLeft, m.Status)
		d.assertExpectations(t)
	})

	t.Run("Owner without admin", func(t *testing.T) {
		d := newMembershipDeps()
		owner := member("g1", "owner", domain.RoleOwner, domain.StatusActive)
		d.memberRepo.On("CountActiveAdmins", ctx, "g1", "owner").Return(0, nil)

		_, err := d.uc.Leave(ctx, actorWith(owner), "g1")
		assert.ErrorIs(t, err, domain.KindOrphanRisk)
		d.memberRepo.AssertNotCalled(t, "LeaveAsOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Owner hands over to admin", func(t *testing.T) {
		d := newMembershipDeps()
		owner := member("g1", "owner", domain.RoleOwner, domain.StatusActive)
		successor := member("g1", "admin", domain.RoleOwner, domain.StatusActive)

		d.memberRepo.On("CountActiveAdmins", ctx, "g1", "owner").Return(1, nil)
		d.memberRepo.On("LeaveAsOwner", ctx, "g1", "owner", mock.AnythingOfType("time.Time")).Return(successor, nil)
		d.notifier.On("Notify", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventMemberLeft
		})).Return(nil).Once()
		d.notifier.On("Notify", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventOwnershipTransferred && e.TargetID == "admin"
		})).Return(nil).Once()

		m, err := d.uc.Leave(ctx, actorWith(owner), "g1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusLeft, m.Status)
		assert.Equal(t, domain.RoleAdmin, m.Role)
		assert.NotNil(t, m.LeftAt)
		d.assertExpectations(t)
	})

	t.Run("Not a member", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "u1").Return(nil, domain.ErrMembershipNotFound)

		_, err := d.uc.Leave(ctx, domain.Actor{UserID: "u1"}, "g1")
		assert.ErrorIs(t, err, domain.KindNotFound)
	})
}

func TestMembershipUseCase_ChangeRole(t *testing.T) {
	ctx := context.Background()
	owner := member("g1", "owner", domain.RoleOwner, domain.StatusActive)

	t.Run("Owner promotes member", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "m1").Return(member("g1", "m1", domain.RoleMember, domain.StatusActive), nil)
		d.memberRepo.On("UpdateRole", ctx, "g1", "m1", domain.RoleMember, domain.RoleAdmin).
			Return(member("g1", "m1", domain.RoleAdmin, domain.StatusActive), nil)

		m, err := d.uc.ChangeRole(ctx, actorWith(owner), "g1", "m1", domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, m.Role)
		d.assertExpectations(t)
	})

	t.Run("Same role is a no-op", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "a1").Return(member("g1", "a1", domain.RoleAdmin, domain.StatusActive), nil)

		m, err := d.uc.ChangeRole(ctx, actorWith(owner), "g1", "a1", domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, m.Role)
		d.memberRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Ownership is not granted through role change", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "a1").Return(member("g1", "a1", domain.RoleAdmin, domain.StatusActive), nil)

		_, err := d.uc.ChangeRole(ctx, actorWith(owner), "g1", "a1", domain.RoleOwner)
		assert.ErrorIs(t, err, domain.KindPermissionDenied)
	})

	t.Run("Admin cannot change roles", func(t *testing.T) {
		d := newMembershipDeps()
		admin := member("g1", "admin", domain.RoleAdmin, domain.StatusActive)
		d.memberRepo.On("GetByKey", ctx, "g1", "m1").Return(member("g1", "m1", domain.RoleMember, domain.StatusActive), nil)

		_, err := d.uc.ChangeRole(ctx, actorWith(admin), "g1", "m1", domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.KindPermissionDenied)
	})

	t.Run("Inactive target", func(t *testing.T) {
		d := newMembershipDeps()
		d.memberRepo.On("GetByKey", ctx, "g1", "m1").Return(member("g1", "m1", domain.RoleMember, domain.StatusLeft), nil)

		_, err := d.uc.ChangeRole(ctx, actorWith(owner), "g1", "m1", domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrNotActive)
	})
}
