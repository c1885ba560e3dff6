package memory

import (
	"context"
	"sort"
	"time"

	"study-group-service/internal/domain"
)

// MembershipRepository in-memory реализация domain.MembershipRepository.
type MembershipRepository struct {
	store *Store
}

func (r *MembershipRepository) GetByKey(_ context.Context, groupID, userID string) (*domain.Membership, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.memberships[memberKey{groupID, userID}]
	if !ok {
		return nil, domain.ErrMembershipNotFound
	}
	return copyMembership(m), nil
}

func (r *MembershipRepository) ListByGroup(_ context.Context, groupID string) ([]*domain.Membership, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]*domain.Membership, 0)
	for k, m := range s.memberships {
		if k.groupID == groupID {
			members = append(members, copyMembership(m))
		}
	}

	sort.Slice(members, func(i, j int) bool {
		if !members[i].RequestedAt.Equal(members[j].RequestedAt) {
			return members[i].RequestedAt.Before(members[j].RequestedAt)
		}
		return members[i].UserID < members[j].UserID
	})
	return members, nil
}

func (r *MembershipRepository) CountActive(_ context.Context, groupID string) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.countActive(groupID), nil
}

func (r *MembershipRepository) CountActiveAdmins(_ context.Context, groupID, excludeUserID string) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.activeAdmins(groupID, excludeUserID)), nil
}

func (r *MembershipRepository) Request(_ context.Context, m *domain.Membership) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.upsert(m)
}

func (r *MembershipRepository) JoinActive(_ context.Context, m *domain.Membership) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[m.GroupID]
	if !ok {
		return domain.ErrGroupNotFound
	}
	if s.countActive(m.GroupID) >= group.Capacity {
		return domain.ErrGroupFull
	}
	return s.upsert(m)
}

func (r *MembershipRepository) Approve(_ context.Context, groupID, userID string, at time.Time) (*domain.Membership, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[groupID]
	if !ok {
		return nil, domain.ErrGroupNotFound
	}
	m, ok := s.memberships[memberKey{groupID, userID}]
	if !ok {
		return nil, domain.ErrMembershipNotFound
	}
	if m.Status != domain.StatusPending {
		return nil, domain.ErrNotPending
	}
	if s.countActive(groupID) >= group.Capacity {
		return nil, domain.ErrGroupFull
	}

	approvedAt := at
	m.Status = domain.StatusActive
	m.ApprovedAt = &approvedAt
	return copyMembership(m), nil
}

func (r *MembershipRepository) Delete(_ context.Context, groupID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memberKey{groupID, userID}
	m, ok := s.memberships[key]
	if !ok {
		return domain.ErrMembershipNotFound
	}
	if m.Status == domain.StatusActive {
		return domain.ErrMembershipActive
	}
	delete(s.memberships, key)
	return nil
}

func (r *MembershipRepository) Terminate(_ context.Context, groupID, userID string, status domain.MembershipStatus, at time.Time) (*domain.Membership, error) {
	if !status.Terminal() {
		return nil, domain.NewError(domain.KindValidation, "terminal status expected")
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.memberships[memberKey{groupID, userID}]
	if !ok {
		return nil, domain.ErrMembershipNotFound
	}
	if m.Role == domain.RoleOwner {
		return nil, domain.ErrOwnerRemoval
	}
	if m.Status != domain.StatusActive {
		return nil, domain.ErrNotActive
	}

	leftAt := at
	m.Status = status
	m.LeftAt = &leftAt
	return copyMembership(m), nil
}

func (r *MembershipRepository) UpdateRole(_ context.Context, groupID, userID string, from, to domain.Role) (*domain.Membership, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.memberships[memberKey{groupID, userID}]
	if !ok || m.Status != domain.StatusActive || m.Role != from {
		return nil, domain.ErrMembershipChanged
	}
	if to == domain.RoleOwner && s.hasActiveOwner(groupID) {
		return nil, domain.ErrMembershipChanged
	}

	m.Role = to
	return copyMembership(m), nil
}

func (r *MembershipRepository) LeaveAsOwner(_ context.Context, groupID, ownerID string, at time.Time) (*domain.Membership, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[groupID]
	if !ok {
		return nil, domain.ErrGroupNotFound
	}
	if group.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}

	owner, ok := s.memberships[memberKey{groupID, ownerID}]
	if !ok || !owner.IsActiveOwner() {
		return nil, domain.ErrMembershipChanged
	}

	admins := s.activeAdmins(groupID, ownerID)
	if len(admins) == 0 {
		return nil, domain.ErrOwnerWithoutAdmin
	}
	successor := admins[0]

	leftAt := at
	owner.Role = domain.RoleAdmin
	owner.Status = domain.StatusLeft
	owner.LeftAt = &leftAt

	successor.Role = domain.RoleOwner
	group.OwnerID = successor.UserID

	return copyMembership(successor), nil
}

func (r *MembershipRepository) TransferOwnership(_ context.Context, groupID, fromUserID, toUserID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[groupID]
	if !ok {
		return domain.ErrGroupNotFound
	}
	if group.OwnerID == toUserID {
		return domain.ErrTransferToSelf
	}
	if group.OwnerID != fromUserID {
		return domain.ErrNotOwner
	}

	source, ok := s.memberships[memberKey{groupID, fromUserID}]
	if !ok || !source.IsActiveOwner() {
		return domain.ErrMembershipChanged
	}
	target, ok := s.memberships[memberKey{groupID, toUserID}]
	if !ok {
		return domain.ErrMembershipNotFound
	}
	if target.Status != domain.StatusActive {
		return domain.ErrNotActive
	}
	if target.Role != domain.RoleAdmin {
		return domain.ErrTransferTargetRole
	}

	source.Role = domain.RoleAdmin
	target.Role = domain.RoleOwner
	group.OwnerID = toUserID
	return nil
}

// upsert заменяет только отсутствующую или завершенную запись. Вызывается под s.mu.
func (s *Store) upsert(m *domain.Membership) error {
	key := memberKey{m.GroupID, m.UserID}
	if current, ok := s.memberships[key]; ok && !current.Status.Terminal() {
		return domain.ErrAlreadyMember
	}

	c := copyMembership(m)
	c.LeftAt = nil
	s.memberships[key] = c
	return nil
}

func (s *Store) hasActiveOwner(groupID string) bool {
	for k, m := range s.memberships {
		if k.groupID == groupID && m.IsActiveOwner() {
			return true
		}
	}
	return false
}
