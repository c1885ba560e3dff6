package handler

import (
	"net/http"

	"study-group-service/api"
	"study-group-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// MembershipHandler обрабатывает HTTP-запросы, меняющие членство в группах
type MembershipHandler struct {
	*BaseHandler
	membershipUseCase domain.MembershipUseCase
}

// NewMembershipHandler создает новый экземпляр MembershipHandler
func NewMembershipHandler(groupUseCase domain.GroupUseCase, membershipUseCase domain.MembershipUseCase, logger *logrus.Logger) *MembershipHandler {
	return &MembershipHandler{
		BaseHandler:       NewBaseHandler(groupUseCase, logger),
		membershipUseCase: membershipUseCase,
	}
}

// PostGroupsJoin обрабатывает заявку на вступление
func (h *MembershipHandler) PostGroupsJoin(c echo.Context) error {
	var req api.PostGroupsJoinJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind join request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "join_group").WithField("group_id", req.GroupId)
	logEntry.Info("Joining group")

	actor, err := h.resolveActor(c, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	m, err := h.membershipUseCase.RequestJoin(c.Request().Context(), actor, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to join group")
	}

	logEntry.WithField("status", m.Status).Info("Join request accepted")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"membership": toAPIMembership(m),
	})
}

// PostGroupsLeave обрабатывает выход из группы
func (h *MembershipHandler) PostGroupsLeave(c echo.Context) error {
	var req api.PostGroupsLeaveJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind leave request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "leave_group").WithField("group_id", req.GroupId)
	logEntry.Info("Leaving group")

	actor, err := h.resolveActor(c, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	m, err := h.membershipUseCase.Leave(c.Request().Context(), actor, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to leave group")
	}

	logEntry.Info("Left group successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"membership": toAPIMembership(m),
	})
}

// PostGroupsMembersApprove обрабатывает одобрение заявки
func (h *MembershipHandler) PostGroupsMembersApprove(c echo.Context) error {
	var req api.PostGroupsMembersApproveJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind approve request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "approve_member").WithFields(logrus.Fields{
		"group_id": req.GroupId,
		"user_id":  req.UserId,
	})
	logEntry.Info("Approving join request")

	actor, err := h.resolveActor(c, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	m, err := h.membershipUseCase.Approve(c.Request().Context(), actor, req.GroupId, req.UserId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to approve join request")
	}

	logEntry.Info("Join request approved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"membership": toAPIMembership(m),
	})
}

// PostGroupsMembersReject обрабатывает отклонение заявки
func (h *MembershipHandler) PostGroupsMembersReject(c echo.Context) error {
	var req api.PostGroupsMembersRejectJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind reject request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "reject_member").WithFields(logrus.Fields{
		"group_id": req.GroupId,
		"user_id":  req.UserId,
	})
	logEntry.Info("Rejecting join request")

	actor, err := h.resolveActor(c, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	if err := h.membershipUseCase.Reject(c.Request().Context(), actor, req.GroupId, req.UserId); err != nil {
		return h.respondError(c, logEntry, err, "Failed to reject join request")
	}

	logEntry.Info("Join request rejected")
	return c.JSON(http.StatusOK, api.MemberRef{GroupId: req.GroupId, UserId: req.UserId})
}

// PostGroupsMembersKick обрабатывает исключение участника
func (h *MembershipHandler) PostGroupsMembersKick(c echo.Context) error {
	var req api.PostGroupsMembersKickJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind kick request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "kick_member").WithFields(logrus.Fields{
		"group_id": req.GroupId,
		"user_id":  req.UserId,
	})
	logEntry.Info("Kicking member")

	actor, err := h.resolveActor(c, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	m, err := h.membershipUseCase.Kick(c.Request().Context(), actor, req.GroupId, req.UserId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to kick member")
	}

	logEntry.Info("Member kicked")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"membership": toAPIMembership(m),
	})
}

// PostGroupsMembersSetRole обрабатывает смену роли участника
func (h *MembershipHandler) PostGroupsMembersSetRole(c echo.Context) error {
	var req api.PostGroupsMembersSetRoleJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind set role request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "set_role").WithFields(logrus.Fields{
		"group_id": req.GroupId,
		"user_id":  req.UserId,
		"role":     req.Role,
	})
	logEntry.Info("Changing member role")

	role, err := domain.ParseRole(string(req.Role))
	if err != nil {
		return h.respondError(c, logEntry, err, "Invalid role")
	}

	actor, err := h.resolveActor(c, req.GroupId)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to resolve actor")
	}

	m, err := h.membershipUseCase.ChangeRole(c.Request().Context(), actor, req.GroupId, req.UserId, role)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to change role")
	}

	logEntry.Info("Member role changed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"membership": toAPIMembership(m),
	})
}
