package domain

import (
	"context"
	"time"
)

// MembershipStatus состояние членства пользователя в группе.
type MembershipStatus string

const (
	StatusPending MembershipStatus = "PENDING"
	StatusActive  MembershipStatus = "ACTIVE"
	StatusKicked  MembershipStatus = "KICKED"
	StatusLeft    MembershipStatus = "LEFT"
)

// Terminal сообщает, что запись больше не вернется в ACTIVE сама по себе.
func (s MembershipStatus) Terminal() bool {
	return s == StatusKicked || s == StatusLeft
}

// membershipTransitions таблица переходов. Пустой статус означает отсутствие записи.
var membershipTransitions = map[MembershipStatus][]MembershipStatus{
	"":            {StatusPending, StatusActive},
	StatusKicked:  {StatusPending, StatusActive},
	StatusLeft:    {StatusPending, StatusActive},
	StatusPending: {StatusActive},
	StatusActive:  {StatusKicked, StatusLeft},
}

// CanTransition проверяет переход по таблице состояний членства.
func (s MembershipStatus) CanTransition(to MembershipStatus) bool {
	for _, allowed := range membershipTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Membership связывает пользователя с группой.
type Membership struct {
	GroupID     string
	UserID      string
	Role        Role
	Status      MembershipStatus
	RequestedAt time.Time
	ApprovedAt  *time.Time
	LeftAt      *time.Time
}

// IsActive сообщает, что членство действующее.
func (m *Membership) IsActive() bool {
	return m != nil && m.Status == StatusActive
}

// IsActiveOwner сообщает, что членство принадлежит действующему владельцу.
func (m *Membership) IsActiveOwner() bool {
	return m.IsActive() && m.Role == RoleOwner
}

// Actor пользователь, выполняющий операцию, и его членство в целевой группе (может быть nil).
type Actor struct {
	UserID     string
	Membership *Membership
}

// ActiveRole возвращает роль актора, если его членство действующее.
func (a Actor) ActiveRole() (Role, bool) {
	if !a.Membership.IsActive() {
		return "", false
	}
	return a.Membership.Role, true
}

// MembershipRepository определяет контракт для работы с хранилищем членств.
// Методы, затрагивающие вместимость или владельца, выполняются в одной транзакции
// под блокировкой строки группы.
type MembershipRepository interface {
	GetByKey(ctx context.Context, groupID, userID string) (*Membership, error)
	ListByGroup(ctx context.Context, groupID string) ([]*Membership, error)
	CountActive(ctx context.Context, groupID string) (int, error)
	CountActiveAdmins(ctx context.Context, groupID, excludeUserID string) (int, error)

	// Request создает PENDING заявку или заменяет ею завершенную запись.
	Request(ctx context.Context, m *Membership) error
	// JoinActive создает ACTIVE членство, если в группе есть место.
	JoinActive(ctx context.Context, m *Membership) error
	// Approve переводит PENDING в ACTIVE с повторной проверкой вместимости.
	Approve(ctx context.Context, groupID, userID string, at time.Time) (*Membership, error)
	// Delete удаляет заявку или завершенную запись, но не ACTIVE членство.
	Delete(ctx context.Context, groupID, userID string) error
	// Terminate переводит ACTIVE не-владельца в KICKED или LEFT.
	Terminate(ctx context.Context, groupID, userID string, status MembershipStatus, at time.Time) (*Membership, error)
	// UpdateRole меняет роль ACTIVE членства, если текущая роль равна from.
	UpdateRole(ctx context.Context, groupID, userID string, from, to Role) (*Membership, error)
	// LeaveAsOwner передает владение старейшему ACTIVE админу и переводит владельца в LEFT.
	LeaveAsOwner(ctx context.Context, groupID, ownerID string, at time.Time) (*Membership, error)
	// TransferOwnership меняет роли OWNER/ADMIN и владельца группы одной транзакцией.
	TransferOwnership(ctx context.Context, groupID, fromUserID, toUserID string) error
}
