package usecase

import (
	"context"

	"study-group-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// emit отправляет уведомление после успешного перехода. Ошибка доставки только логируется.
func emit(ctx context.Context, logger *logrus.Logger, notifier domain.Notifier, event domain.Event) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, event); err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"event":     event.Type,
			"group_id":  event.GroupID,
			"actor_id":  event.ActorID,
			"target_id": event.TargetID,
		}).Warn("Failed to deliver notification")
	}
}

// roleIn возвращает роль актора в группе, если его членство в ней действующее.
func roleIn(actor domain.Actor, groupID string) (domain.Role, bool) {
	if actor.Membership == nil || actor.Membership.GroupID != groupID || actor.Membership.UserID != actor.UserID {
		return "", false
	}
	return actor.ActiveRole()
}
