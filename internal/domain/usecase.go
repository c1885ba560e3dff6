package domain

import "context"

// GroupUseCase определяет бизнес-логику для работы с группами.
type GroupUseCase interface {
	CreateGroup(ctx context.Context, ownerID string, group *Group) (*Group, error)
	GetGroup(ctx context.Context, actor Actor, groupID string) (*Group, error)
	ResolveActor(ctx context.Context, userID, groupID string) (Actor, error)
}

// MembershipUseCase определяет переходы состояний членства.
type MembershipUseCase interface {
	RequestJoin(ctx context.Context, actor Actor, groupID string) (*Membership, error)
	Approve(ctx context.Context, actor Actor, groupID, userID string) (*Membership, error)
	Reject(ctx context.Context, actor Actor, groupID, userID string) error
	Kick(ctx context.Context, actor Actor, groupID, userID string) (*Membership, error)
	Leave(ctx context.Context, actor Actor, groupID string) (*Membership, error)
	ChangeRole(ctx context.Context, actor Actor, groupID, userID string, role Role) (*Membership, error)
}

// OwnershipUseCase определяет передачу владения группой.
type OwnershipUseCase interface {
	TransferOwnership(ctx context.Context, actor Actor, groupID, toUserID string) (*Group, error)
}

// TaskUseCase определяет бизнес-логику для работы с задачами.
type TaskUseCase interface {
	CreateTask(ctx context.Context, actor Actor, task *Task) (*Task, error)
	GetTask(ctx context.Context, actor Actor, taskID string) (*Task, error)
	ChangeStatus(ctx context.Context, actor Actor, taskID string, status TaskStatus) (*Task, error)
}

// StatsUseCase определяет бизнес-логику для работы со статистикой.
type StatsUseCase interface {
	GetGroupStats(ctx context.Context, actor Actor, groupID string) (*GroupStats, error)
}
