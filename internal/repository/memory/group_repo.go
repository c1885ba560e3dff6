package memory

import (
	"context"

	"study-group-service/internal/domain"
)

// GroupRepository in-memory реализация domain.GroupRepository.
type GroupRepository struct {
	store *Store
}

func (r *GroupRepository) CreateWithOwner(_ context.Context, group *domain.Group, owner *domain.Membership) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.groups[group.ID]; exists {
		return domain.ErrGroupAlreadyExists
	}

	s.groups[group.ID] = copyGroup(group)
	s.memberships[memberKey{owner.GroupID, owner.UserID}] = copyMembership(owner)
	return nil
}

func (r *GroupRepository) GetByID(_ context.Context, groupID string) (*domain.Group, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return nil, domain.ErrGroupNotFound
	}
	return copyGroup(g), nil
}

func (r *GroupRepository) ExistsGroup(_ context.Context, groupID string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.groups[groupID]
	return ok, nil
}
