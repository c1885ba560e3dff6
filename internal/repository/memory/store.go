// Package memory хранилище в памяти процесса. Используется при STORAGE=memory
// и в тестах конкурентности. Один мьютекс на хранилище играет роль блокировки
// строки группы: каждая многострочная операция выполняется целиком под ним.
package memory

import (
	"sort"
	"sync"

	"study-group-service/internal/domain"
)

type memberKey struct {
	groupID string
	userID  string
}

// Store общее состояние для всех репозиториев.
type Store struct {
	mu          sync.Mutex
	groups      map[string]*domain.Group
	memberships map[memberKey]*domain.Membership
	tasks       map[string]*domain.Task
}

// NewStore создает пустое хранилище.
func NewStore() *Store {
	return &Store{
		groups:      make(map[string]*domain.Group),
		memberships: make(map[memberKey]*domain.Membership),
		tasks:       make(map[string]*domain.Task),
	}
}

// Repositories возвращает репозитории поверх одного хранилища.
func (s *Store) Repositories() (domain.GroupRepository, domain.MembershipRepository, domain.TaskRepository) {
	return &GroupRepository{store: s}, &MembershipRepository{store: s}, &TaskRepository{store: s}
}

// countActive вызывается под s.mu.
func (s *Store) countActive(groupID string) int {
	n := 0
	for k, m := range s.memberships {
		if k.groupID == groupID && m.Status == domain.StatusActive {
			n++
		}
	}
	return n
}

// activeAdmins возвращает ACTIVE админов группы, старейшие первыми. Вызывается под s.mu.
func (s *Store) activeAdmins(groupID, excludeUserID string) []*domain.Membership {
	var admins []*domain.Membership
	for k, m := range s.memberships {
		if k.groupID != groupID || k.userID == excludeUserID {
			continue
		}
		if m.Status == domain.StatusActive && m.Role == domain.RoleAdmin {
			admins = append(admins, m)
		}
	}

	sort.Slice(admins, func(i, j int) bool {
		a, b := admins[i], admins[j]
		switch {
		case a.ApprovedAt != nil && b.ApprovedAt == nil:
			return true
		case a.ApprovedAt == nil && b.ApprovedAt != nil:
			return false
		case a.ApprovedAt != nil && !a.ApprovedAt.Equal(*b.ApprovedAt):
			return a.ApprovedAt.Before(*b.ApprovedAt)
		case !a.RequestedAt.Equal(b.RequestedAt):
			return a.RequestedAt.Before(b.RequestedAt)
		default:
			return a.UserID < b.UserID
		}
	})
	return admins
}

func copyMembership(m *domain.Membership) *domain.Membership {
	c := *m
	return &c
}

func copyGroup(g *domain.Group) *domain.Group {
	c := *g
	c.Members = nil
	return &c
}

func copyTask(t *domain.Task) *domain.Task {
	c := *t
	c.Assignees = append([]string{}, t.Assignees...)
	return &c
}
