package handler

import (
	"errors"
	"net/http"

	"study-group-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger       *logrus.Logger
	groupUseCase domain.GroupUseCase
}

func NewBaseHandler(groupUseCase domain.GroupUseCase, logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger:       logger,
		groupUseCase: groupUseCase,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
		"actor_id":   userIDFrom(c),
	})
}

// resolveActor определяет актора запроса и его членство в группе.
func (h *BaseHandler) resolveActor(c echo.Context, groupID string) (domain.Actor, error) {
	userID := userIDFrom(c)
	if userID == "" {
		return domain.Actor{}, errUnauthenticated
	}
	if groupID == "" {
		return domain.Actor{UserID: userID}, nil
	}
	return h.groupUseCase.ResolveActor(c.Request().Context(), userID, groupID)
}

// respondError пишет ответ об ошибке, выбирая статус по категории.
func (h *BaseHandler) respondError(c echo.Context, logEntry *logrus.Entry, err error, msg string) error {
	if errors.Is(err, errUnauthenticated) {
		logEntry.Warn("Unauthenticated request")
		return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", err.Error()))
	}

	httpErr, status, ok := domain.ToHTTPError(err)
	if !ok {
		logEntry.WithError(err).Error(msg)
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal error"))
	}

	entry := logEntry.WithError(err).WithField("kind", domain.KindOf(err))
	if status >= http.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Warn(msg)
	}
	return c.JSON(status, toAPIErrorResponse(httpErr))
}
