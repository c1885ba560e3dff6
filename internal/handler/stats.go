package handler

import (
	"net/http"

	"study-group-service/api"
	"study-group-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы для получения статистических данных.
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler.
func NewStatsHandler(groupUseCase domain.GroupUseCase, statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(groupUseCase, logger),
		statsUseCase: statsUseCase,
	}
}

// GetGroupsStats обрабатывает GET запрос для получения сводки по группе.
func (h *StatsHandler) GetGroupsStats(c echo.Context, params api.GetGroupsStatsParams) error {
	logEntry := h.logRequest(c, "get_group_stats").WithField("group_id", params.GroupId)
	logEntry.Info("Getting group statistics")

	actor, err := h.resolveActor(c, params.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	stats, err := h.statsUseCase.GetGroupStats(c.Request().Context(), actor, params.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get group stats")
	}

	logEntry.WithField("free_seats", stats.FreeSeats()).Info("Group stats retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats": toAPIGroupStats(stats),
	})
}
