package domain

import (
	"context"
	"time"
)

// Group учебная группа с ограниченной вместимостью.
type Group struct {
	ID               string
	Name             string
	OwnerID          string
	Capacity         int
	Recruiting       bool
	RequiresApproval bool
	CreatedAt        time.Time
	Members          []*Membership
}

// Open сообщает, вступают ли в группу без одобрения.
func (g *Group) Open() bool {
	return !g.RequiresApproval
}

// GroupRepository определяет контракт для работы с хранилищем групп.
type GroupRepository interface {
	// CreateWithOwner создает группу и ACTIVE членство владельца в одной транзакции.
	CreateWithOwner(ctx context.Context, group *Group, owner *Membership) error
	GetByID(ctx context.Context, groupID string) (*Group, error)
	ExistsGroup(ctx context.Context, groupID string) (bool, error)
}
