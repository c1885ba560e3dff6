package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"study-group-service/api"
	"study-group-service/internal/domain"
	"study-group-service/internal/handler"
	"study-group-service/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// tokens простой IdentityResolver: токен совпадает с идентификатором пользователя.
type tokens map[string]string

func (t tokens) Resolve(token string) (string, bool) {
	userID, ok := t[token]
	return userID, ok
}

type HandlerSuite struct {
	suite.Suite
	echo        *echo.Echo
	groupUC     *mocks.GroupUseCase
	membershipU *mocks.MembershipUseCase
	ownershipUC *mocks.OwnershipUseCase
	taskUC      *mocks.TaskUseCase
	statsUC     *mocks.StatsUseCase
}

func (s *HandlerSuite) SetupTest() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.groupUC = &mocks.GroupUseCase{}
	s.membershipU = &mocks.MembershipUseCase{}
	s.ownershipUC = &mocks.OwnershipUseCase{}
	s.taskUC = &mocks.TaskUseCase{}
	s.statsUC = &mocks.StatsUseCase{}

	s.echo = echo.New()
	s.echo.Use(handler.AuthMiddleware(tokens{"owner-token": "owner", "u1-token": "u1"}, logger, "/health"))
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	api.RegisterHandlers(s.echo, handler.NewAPIHandler(s.groupUC, s.membershipU, s.ownershipUC, s.taskUC, s.statsUC, logger))
}

func (s *HandlerSuite) TearDownTest() {
	s.groupUC.AssertExpectations(s.T())
	s.membershipU.AssertExpectations(s.T())
	s.ownershipUC.AssertExpectations(s.T())
	s.taskUC.AssertExpectations(s.T())
	s.statsUC.AssertExpectations(s.T())
}

func (s *HandlerSuite) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decodeError(rec *httptest.ResponseRecorder) api.ErrorResponse {
	var resp api.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func activeMember(groupID, userID string, role domain.Role) *domain.Membership {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Membership{
		GroupID:     groupID,
		UserID:      userID,
		Role:        role,
		Status:      domain.StatusActive,
		RequestedAt: at,
		ApprovedAt:  &at,
	}
}

func (s *HandlerSuite) TestHealth_NoToken() {
	rec := s.do(http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerSuite) TestMissingToken() {
	rec := s.do(http.MethodPost, "/groups/join", "", `{"group_id":"g1"}`)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(api.ErrorResponseErrorCode("UNAUTHORIZED"), s.decodeError(rec).Error.Code)
}

func (s *HandlerSuite) TestInvalidToken() {
	rec := s.do(http.MethodPost, "/groups/join", "forged", `{"group_id":"g1"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestCreateGroup() {
	s.groupUC.On("CreateGroup", mock.Anything, "owner", mock.MatchedBy(func(g *domain.Group) bool {
		return g.ID == "g1" && g.Capacity == 5 && g.Recruiting && !g.RequiresApproval
	})).Return(&domain.Group{
		ID: "g1", OwnerID: "owner", Capacity: 5, Recruiting: true,
		Members: []*domain.Membership{activeMember("g1", "owner", domain.RoleOwner)},
	}, nil)

	rec := s.do(http.MethodPost, "/groups/create", "owner-token", `{"group_id":"g1","capacity":5,"requires_approval":false}`)

	s.Equal(http.StatusCreated, rec.Code)
	var resp struct {
		Group api.Group `json:"group"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("owner", resp.Group.OwnerId)
	s.Require().NotNil(resp.Group.Members)
	s.Len(*resp.Group.Members, 1)
}

func (s *HandlerSuite) TestCreateGroup_InvalidCapacity() {
	s.groupUC.On("CreateGroup", mock.Anything, "owner", mock.AnythingOfType("*domain.Group")).Return(nil, domain.ErrInvalidCapacity)

	rec := s.do(http.MethodPost, "/groups/create", "owner-token", `{"group_id":"g1","capacity":0}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(api.ErrorResponseErrorCode("INVALID_REQUEST"), s.decodeError(rec).Error.Code)
}

func (s *HandlerSuite) TestGetGroup_NotFound() {
	actor := domain.Actor{UserID: "u1"}
	s.groupUC.On("ResolveActor", mock.Anything, "u1", "ghost").Return(actor, nil)
	s.groupUC.On("GetGroup", mock.Anything, actor, "ghost").Return(nil, domain.ErrGroupNotFound)

	rec := s.do(http.MethodGet, "/groups/get?group_id=ghost", "u1-token", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(api.ErrorResponseErrorCode("NOT_FOUND"), s.decodeError(rec).Error.Code)
}

func (s *HandlerSuite) TestGetGroup_Outsider() {
	actor := domain.Actor{UserID: "u1"}
	s.groupUC.On("ResolveActor", mock.Anything, "u1", "g1").Return(actor, nil)
	s.groupUC.On("GetGroup", mock.Anything, actor, "g1").Return(nil, domain.ErrNotActiveMember)

	rec := s.do(http.MethodGet, "/groups/get?group_id=g1", "u1-token", "")

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal(api.ErrorResponseErrorCode("PERMISSION_DENIED"), s.decodeError(rec).Error.Code)
}

func (s *HandlerSuite) TestGetGroup_MissingToken() {
	rec := s.do(http.MethodGet, "/groups/get?group_id=g1", "", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.groupUC.AssertNotCalled(s.T(), "GetGroup", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerSuite) TestGetTask_Outsider() {
	s.taskUC.On("GetTask", mock.Anything, domain.Actor{UserID: "u1"}, "t1").Return(nil, domain.ErrNotActiveMember)

	rec := s.do(http.MethodGet, "/tasks/get?task_id=t1", "u1-token", "")

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal(api.ErrorResponseErrorCode("PERMISSION_DENIED"), s.decodeError(rec).Error.Code)
}

func (s *HandlerSuite) TestJoin_Pending() {
	actor := domain.Actor{UserID: "u1"}
	pending := &domain.Membership{GroupID: "g1", UserID: "u1", Role: domain.RoleMember, Status: domain.StatusPending}

	s.groupUC.On("ResolveActor", mock.Anything, "u1", "g1").Return(actor, nil)
	s.membershipU.On("RequestJoin", mock.Anything, actor, "g1").Return(pending, nil)

	rec := s.do(http.MethodPost, "/groups/join", "u1-token", `{"group_id":"g1"}`)

	s.Equal(http.StatusOK, rec.Code)
	var resp struct {
		Membership api.Membership `json:"membership"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(api.MembershipStatus("PENDING"), resp.Membership.Status)
	s.Nil(resp.Membership.ApprovedAt)
}

func (s *HandlerSuite) TestApprove_GroupFull() {
	owner := domain.Actor{UserID: "owner", Membership: activeMember("g1", "owner", domain.RoleOwner)}

	s.groupUC.On("ResolveActor", mock.Anything, "owner", "g1").Return(owner, nil)
	s.membershipU.On("Approve", mock.Anything, owner, "g1", "u1").Return(nil, domain.ErrGroupFull)

	rec := s.do(http.MethodPost, "/groups/members/approve", "owner-token", `{"group_id":"g1","user_id":"u1"}`)

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(api.ErrorResponseErrorCode("GROUP_FULL"), s.decodeError(rec).Error.Code)
}

func (s *HandlerSuite) TestKick_SelfTarget() {
	owner := domain.Actor{UserID: "owner", Membership: activeMember("g1", "owner", domain.RoleOwner)}

	s.groupUC.On("ResolveActor", mock.Anything, "owner", "g1").Return(owner, nil)
	s.membershipU.On("Kick", mock.Anything, owner, "g1", "owner").
		Return(nil, domain.NewError(domain.KindSelfTargetDenied, "cannot kick yourself"))

	rec := s.do(http.MethodPost, "/groups/members/kick", "owner-token", `{"group_id":"g1","user_id":"owner"}`)

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal(api.ErrorResponseErrorCode("SELF_TARGET_DENIED"), s.decodeError(rec).Error.Code)
}

func (s *HandlerSuite) TestSetRole_InvalidRole() {
	rec := s.do(http.MethodPost, "/groups/members/setRole", "owner-token", `{"group_id":"g1","user_id":"u1","role":"SUPERUSER"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(api.ErrorResponseErrorCode("INVALID_REQUEST"), s.decodeError(rec).Error.Code)
}

func (s *HandlerSuite) TestLeave_OrphanRisk() {
	owner := domain.Actor{UserID: "owner", Membership: activeMember("g1", "owner", domain.RoleOwner)}

	s.groupUC.On("ResolveActor", mock.Anything, "owner", "g1").Return(owner, nil)
	s.membershipU.On("Leave", mock.Anything, owner, "g1").Return(nil, domain.ErrOwnerWithoutAdmin)

	rec := s.do(http.MethodPost, "/groups/leave", "owner-token", `{"group_id":"g1"}`)

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(api.ErrorResponseErrorCode("ORPHAN_RISK"), s.decodeError(rec).Error.Code)
}

func (s *HandlerSuite) TestTransferOwnership() {
	owner := domain.Actor{UserID: "owner", Membership: activeMember("g1", "owner", domain.RoleOwner)}

	s.groupUC.On("ResolveActor", mock.Anything, "owner", "g1").Return(owner, nil)
	s.ownershipUC.On("TransferOwnership", mock.Anything, owner, "g1", "u1").
		Return(&domain.Group{ID: "g1", OwnerID: "u1", Capacity: 5}, nil)

	rec := s.do(http.MethodPost, "/groups/transferOwnership", "owner-token", `{"group_id":"g1","new_owner_id":"u1"}`)

	s.Equal(http.StatusOK, rec.Code)
	var resp struct {
		Group api.Group `json:"group"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("u1", resp.Group.OwnerId)
}

func (s *HandlerSuite) TestSetTaskStatus_InvalidTransition() {
	err := domain.TaskDone.ValidateTransition(domain.TaskReview)
	s.taskUC.On("ChangeStatus", mock.Anything, domain.Actor{UserID: "u1"}, "t1", domain.TaskReview).Return(nil, err)

	rec := s.do(http.MethodPost, "/tasks/setStatus", "u1-token", `{"task_id":"t1","status":"REVIEW"}`)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(api.ErrorResponseErrorCode("INVALID_TRANSITION"), resp.Error.Code)
	s.Contains(resp.Error.Message, "allowed=TODO")
}

func (s *HandlerSuite) TestSetTaskStatus_Done() {
	completed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.taskUC.On("ChangeStatus", mock.Anything, domain.Actor{UserID: "u1"}, "t1", domain.TaskDone).Return(&domain.Task{
		ID: "t1", GroupID: "g1", Status: domain.TaskDone, CompletedAt: &completed,
	}, nil)

	rec := s.do(http.MethodPost, "/tasks/setStatus", "u1-token", `{"task_id":"t1","status":"DONE"}`)

	s.Equal(http.StatusOK, rec.Code)
	var resp struct {
		Task api.Task `json:"task"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(api.TaskStatus("DONE"), resp.Task.Status)
	s.Require().NotNil(resp.Task.CompletedAt)
	s.True(completed.Equal(*resp.Task.CompletedAt))
	s.Equal([]string{}, resp.Task.Assignees)
}

func (s *HandlerSuite) TestInfrastructureError_IsHidden() {
	s.taskUC.On("GetTask", mock.Anything, domain.Actor{UserID: "u1"}, "t1").Return(nil, errors.New("connection reset by peer"))

	rec := s.do(http.MethodGet, "/tasks/get?task_id=t1", "u1-token", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(api.ErrorResponseErrorCode("INTERNAL_ERROR"), resp.Error.Code)
	s.NotContains(resp.Error.Message, "connection reset")
}

func (s *HandlerSuite) TestGroupStats() {
	actor := domain.Actor{UserID: "u1", Membership: activeMember("g1", "u1", domain.RoleMember)}

	s.groupUC.On("ResolveActor", mock.Anything, "u1", "g1").Return(actor, nil)
	s.statsUC.On("GetGroupStats", mock.Anything, actor, "g1").Return(&domain.GroupStats{
		GroupID:  "g1",
		Capacity: 5,
		Memberships: []*domain.StatusCount{
			{Status: "ACTIVE", Count: 3},
			{Status: "PENDING", Count: 4},
		},
		Tasks: []*domain.StatusCount{{Status: "TODO", Count: 2}},
	}, nil)

	rec := s.do(http.MethodGet, "/groups/stats?group_id=g1", "u1-token", "")

	s.Equal(http.StatusOK, rec.Code)
	var resp struct {
		Stats api.GroupStats `json:"stats"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(3, resp.Stats.ActiveCount)
	s.Equal(2, resp.Stats.FreeSeats)
	s.Len(resp.Stats.Memberships, 2)
	s.Len(resp.Stats.Tasks, 1)
}

func (s *HandlerSuite) TestGroupStats_Outsider() {
	actor := domain.Actor{UserID: "u1"}

	s.groupUC.On("ResolveActor", mock.Anything, "u1", "g1").Return(actor, nil)
	s.statsUC.On("GetGroupStats", mock.Anything, actor, "g1").Return(nil, domain.ErrNotActiveMember)

	rec := s.do(http.MethodGet, "/groups/stats?group_id=g1", "u1-token", "")

	s.Equal(http.StatusForbidden, rec.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func TestAuthMiddleware_SetsUserID(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	e := echo.New()
	e.Use(handler.AuthMiddleware(tokens{"tok": "u42"}, logger))
	e.GET("/whoami", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(handler.ContextUserID).(string))
	})

	testCases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"Valid bearer", "Bearer tok", http.StatusOK, "u42"},
		{"Wrong scheme", "Basic tok", http.StatusUnauthorized, ""},
		{"Unknown token", "Bearer nope", http.StatusUnauthorized, ""},
		{"No header", "", http.StatusUnauthorized, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}
