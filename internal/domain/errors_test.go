package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"study-group-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestError_MatchesKindAndSentinel(t *testing.T) {
	wrapped := fmt.Errorf("approve: %w", domain.ErrGroupFull)

	assert.ErrorIs(t, wrapped, domain.ErrGroupFull)
	assert.ErrorIs(t, wrapped, domain.KindCapacityExceeded)
	assert.NotErrorIs(t, wrapped, domain.KindNotFound)
	assert.Equal(t, domain.KindCapacityExceeded, domain.KindOf(wrapped))
	assert.Equal(t, domain.Kind(""), domain.KindOf(errors.New("boom")))
}

func TestError_MessageWithMetadata(t *testing.T) {
	err := domain.WithMetadata(domain.KindInvalidTransition, "bad move", map[string]string{
		"to":   "REVIEW",
		"from": "DONE",
	})
	assert.Equal(t, "bad move (from=DONE, to=REVIEW)", err.Error())
}

func TestToHTTPError(t *testing.T) {
	testCases := []struct {
		err    error
		code   string
		status int
	}{
		{domain.ErrInvalidGroupID, "INVALID_REQUEST", http.StatusBadRequest},
		{domain.ErrGroupNotFound, "NOT_FOUND", http.StatusNotFound},
		{domain.ErrNotOwner, "PERMISSION_DENIED", http.StatusForbidden},
		{domain.ErrTransferToSelf, "SELF_TARGET_DENIED", http.StatusForbidden},
		{domain.ErrNotPending, "ALREADY_PROCESSED", http.StatusConflict},
		{domain.ErrGroupFull, "GROUP_FULL", http.StatusConflict},
		{domain.TaskDone.ValidateTransition(domain.TaskReview), "INVALID_TRANSITION", http.StatusUnprocessableEntity},
		{domain.ErrOwnerWithoutAdmin, "ORPHAN_RISK", http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			httpErr, status, ok := domain.ToHTTPError(tc.err)
			assert.True(t, ok)
			assert.Equal(t, tc.code, httpErr.Code)
			assert.Equal(t, tc.status, status)
		})
	}

	_, _, ok := domain.ToHTTPError(errors.New("connection refused"))
	assert.False(t, ok)
}
