package handler

import (
	"net/http"

	"study-group-service/api"
	"study-group-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// GroupHandler обрабатывает HTTP-запросы для управления группами
type GroupHandler struct {
	*BaseHandler
	ownershipUseCase domain.OwnershipUseCase
}

// NewGroupHandler создает новый экземпляр GroupHandler
func NewGroupHandler(groupUseCase domain.GroupUseCase, ownershipUseCase domain.OwnershipUseCase, logger *logrus.Logger) *GroupHandler {
	return &GroupHandler{
		BaseHandler:      NewBaseHandler(groupUseCase, logger),
		ownershipUseCase: ownershipUseCase,
	}
}

// PostGroupsCreate обрабатывает создание группы. Автор запроса становится владельцем
func (h *GroupHandler) PostGroupsCreate(c echo.Context) error {
	logEntry := h.logRequest(c, "create_group")

	var req api.PostGroupsCreateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"group_id": req.GroupId,
		"capacity": req.Capacity,
	})
	logEntry.Info("Creating group")

	actor, err := h.resolveActor(c, "")
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	group := &domain.Group{
		ID:               req.GroupId,
		Capacity:         req.Capacity,
		Recruiting:       true,
		RequiresApproval: true,
	}
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Recruiting != nil {
		group.Recruiting = *req.Recruiting
	}
	if req.RequiresApproval != nil {
		group.RequiresApproval = *req.RequiresApproval
	}

	created, err := h.groupUseCase.CreateGroup(c.Request().Context(), actor.UserID, group)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to create group")
	}

	logEntry.Info("Group created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"group": toAPIGroup(created),
	})
}

// GetGroupsGet обрабатывает получение группы с участниками
func (h *GroupHandler) GetGroupsGet(c echo.Context, params api.GetGroupsGetParams) error {
	logEntry := h.logRequest(c, "get_group").WithField("group_id", params.GroupId)
	logEntry.Info("Getting group")

	actor, err := h.resolveActor(c, params.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	group, err := h.groupUseCase.GetGroup(c.Request().Context(), actor, params.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get group")
	}

	logEntry.WithField("members_count", len(group.Members)).Info("Group retrieved successfully")
	return c.JSON(http.StatusOK, toAPIGroup(group))
}

// PostGroupsTransferOwnership обрабатывает передачу владения группой
func (h *GroupHandler) PostGroupsTransferOwnership(c echo.Context) error {
	var req api.PostGroupsTransferOwnershipJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind transfer ownership request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "transfer_ownership").WithFields(logrus.Fields{
		"group_id":     req.GroupId,
		"new_owner_id": req.NewOwnerId,
	})
	logEntry.Info("Transferring ownership")

	actor, err := h.resolveActor(c, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	group, err := h.ownershipUseCase.TransferOwnership(c.Request().Context(), actor, req.GroupId, req.NewOwnerId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to transfer ownership")
	}

	logEntry.Info("Ownership transferred successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"group": toAPIGroup(group),
	})
}
