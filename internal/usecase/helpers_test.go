package usecase_test

import (
	"io"
	"time"

	"study-group-service/internal/domain"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func member(groupID, userID string, role domain.Role, status domain.MembershipStatus) *domain.Membership {
	m := &domain.Membership{
		GroupID:     groupID,
		UserID:      userID,
		Role:        role,
		Status:      status,
		RequestedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if status == domain.StatusActive {
		approved := m.RequestedAt
		m.ApprovedAt = &approved
	}
	return m
}

func actorWith(m *domain.Membership) domain.Actor {
	return domain.Actor{UserID: m.UserID, Membership: m}
}
