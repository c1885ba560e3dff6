package domain

import (
	"context"
	"time"
)

// EventType тип уведомления о переходе.
type EventType string

const (
	EventJoinApproved         EventType = "membership.approved"
	EventMemberKicked         EventType = "membership.kicked"
	EventMemberLeft           EventType = "membership.left"
	EventOwnershipTransferred EventType = "group.ownership_transferred"
)

// Event уведомление об успешном переходе.
type Event struct {
	Type     EventType
	GroupID  string
	ActorID  string
	TargetID string
	At       time.Time
}

// Notifier побочный канал уведомлений. Ошибка доставки не откатывает переход.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
