package handler

import (
	"study-group-service/api"
	"study-group-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*GroupHandler
	*MembershipHandler
	*TaskHandler
	*StatsHandler
}

func NewAPIHandler(
	groupUseCase domain.GroupUseCase,
	membershipUseCase domain.MembershipUseCase,
	ownershipUseCase domain.OwnershipUseCase,
	taskUseCase domain.TaskUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		GroupHandler:      NewGroupHandler(groupUseCase, ownershipUseCase, logger),
		MembershipHandler: NewMembershipHandler(groupUseCase, membershipUseCase, logger),
		TaskHandler:       NewTaskHandler(groupUseCase, taskUseCase, logger),
		StatsHandler:      NewStatsHandler(groupUseCase, statsUseCase, logger),
	}
}
