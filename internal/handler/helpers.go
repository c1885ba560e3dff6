package handler

import (
	"errors"

	"study-group-service/api"
	"study-group-service/internal/domain"
)

var errUnauthenticated = errors.New("authentication required")

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIMembership(m *domain.Membership) api.Membership {
	return api.Membership{
		GroupId:     m.GroupID,
		UserId:      m.UserID,
		Role:        api.Role(m.Role),
		Status:      api.MembershipStatus(m.Status),
		RequestedAt: m.RequestedAt,
		ApprovedAt:  m.ApprovedAt,
		LeftAt:      m.LeftAt,
	}
}

func toAPIGroup(g *domain.Group) api.Group {
	group := api.Group{
		GroupId:          g.ID,
		Name:             g.Name,
		OwnerId:          g.OwnerID,
		Capacity:         g.Capacity,
		Recruiting:       g.Recruiting,
		RequiresApproval: g.RequiresApproval,
		CreatedAt:        g.CreatedAt,
	}

	if g.Members != nil {
		members := make([]api.Membership, len(g.Members))
		for i, m := range g.Members {
			members[i] = toAPIMembership(m)
		}
		group.Members = &members
	}

	return group
}

func toAPITask(t *domain.Task) api.Task {
	assignees := t.Assignees
	if assignees == nil {
		assignees = []string{}
	}
	return api.Task{
		TaskId:      t.ID,
		GroupId:     t.GroupID,
		OwnerId:     t.OwnerID,
		CreatorId:   t.CreatorID,
		Title:       t.Title,
		Assignees:   assignees,
		Status:      api.TaskStatus(t.Status),
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toAPIStatusCounts(counts []*domain.StatusCount) []api.StatusCount {
	result := make([]api.StatusCount, len(counts))
	for i, c := range counts {
		result[i] = api.StatusCount{Status: c.Status, Count: c.Count}
	}
	return result
}

func toAPIGroupStats(s *domain.GroupStats) api.GroupStats {
	return api.GroupStats{
		GroupId:     s.GroupID,
		Capacity:    s.Capacity,
		ActiveCount: s.ActiveCount(),
		FreeSeats:   s.FreeSeats(),
		Memberships: toAPIStatusCounts(s.Memberships),
		Tasks:       toAPIStatusCounts(s.Tasks),
	}
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}
