// Package notify реализации domain.Notifier.
package notify

import (
	"context"

	"study-group-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// LogNotifier пишет события в лог. Используется, когда Redis не настроен.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, event domain.Event) error {
	n.logger.WithFields(logrus.Fields{
		"event":     event.Type,
		"group_id":  event.GroupID,
		"actor_id":  event.ActorID,
		"target_id": event.TargetID,
		"at":        event.At,
	}).Info("Membership event")
	return nil
}
