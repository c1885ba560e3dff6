package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind категория отказа. Все отказы движка неповторяемые: вызывающая
// сторона показывает их пользователю и сама решает, повторять ли запрос.
type Kind string

const (
	KindValidation        Kind = "VALIDATION"
	KindNotFound          Kind = "NOT_FOUND"
	KindPermissionDenied  Kind = "PERMISSION_DENIED"
	KindAlreadyProcessed  Kind = "ALREADY_PROCESSED"
	KindCapacityExceeded  Kind = "CAPACITY_EXCEEDED"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindSelfTargetDenied  Kind = "SELF_TARGET_DENIED"
	KindOrphanRisk        Kind = "ORPHAN_RISK"
)

// Error реализует error, чтобы можно было писать errors.Is(err, domain.KindNotFound).
func (k Kind) Error() string {
	return strings.ToLower(strings.ReplaceAll(string(k), "_", " "))
}

// Error типизированная ошибка бизнес-логики.
type Error struct {
	Kind     Kind
	Message  string
	Metadata map[string]string
}

func (e *Error) Error() string {
	if len(e.Metadata) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Metadata))
	for k := range e.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, e.Metadata[k]))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, ", "))
}

// Is сопоставляет ошибку с ее категорией.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// NewError создает ошибку заданной категории.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithMetadata создает ошибку с диагностическими полями.
func WithMetadata(kind Kind, message string, metadata map[string]string) *Error {
	return &Error{Kind: kind, Message: message, Metadata: metadata}
}

// KindOf возвращает категорию ошибки или пустую строку для инфраструктурных ошибок.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Domain errors
var (
	// Validation errors
	ErrInvalidGroupID  = NewError(KindValidation, "invalid group id")
	ErrInvalidUserID   = NewError(KindValidation, "invalid user id")
	ErrInvalidTaskID   = NewError(KindValidation, "invalid task id")
	ErrInvalidCapacity = NewError(KindValidation, "capacity must be a positive integer")
	ErrInvalidRole     = NewError(KindValidation, "invalid role")
	ErrInvalidStatus   = NewError(KindValidation, "invalid task status")
	ErrInvalidTitle    = NewError(KindValidation, "invalid task title")

	// Not found
	ErrGroupNotFound      = NewError(KindNotFound, "group not found")
	ErrMembershipNotFound = NewError(KindNotFound, "membership not found")
	ErrTaskNotFound       = NewError(KindNotFound, "task not found")

	// Group errors
	ErrGroupAlreadyExists = NewError(KindAlreadyProcessed, "group already exists")
	ErrGroupNotRecruiting = NewError(KindPermissionDenied, "group is not recruiting")
	ErrGroupFull          = NewError(KindCapacityExceeded, "group is full")

	// Membership errors
	ErrNotActiveMember     = NewError(KindPermissionDenied, "actor is not an active member of the group")
	ErrAlreadyMember       = NewError(KindAlreadyProcessed, "membership already exists")
	ErrNotPending          = NewError(KindAlreadyProcessed, "join request is not pending")
	ErrNotActive           = NewError(KindAlreadyProcessed, "membership is not active")
	ErrMembershipActive    = NewError(KindAlreadyProcessed, "active membership cannot be rejected")
	ErrMembershipChanged   = NewError(KindAlreadyProcessed, "membership changed concurrently")
	ErrOwnerWithoutAdmin   = NewError(KindOrphanRisk, "owner cannot leave without another active admin")
	ErrTransferToSelf      = NewError(KindSelfTargetDenied, "ownership is already held by this user")
	ErrTransferTargetRole  = NewError(KindPermissionDenied, "ownership can only be transferred to an admin")
	ErrNotOwner            = NewError(KindPermissionDenied, "only the owner can perform this action")
	ErrOwnerRemoval        = NewError(KindPermissionDenied, "the owner cannot be removed from the group")
	ErrTaskForbidden       = NewError(KindPermissionDenied, "actor may not change this task")
	ErrAssigneeNotMember   = NewError(KindPermissionDenied, "assignee is not an active member of the group")
	ErrTaskAlreadyExists   = NewError(KindAlreadyProcessed, "task already exists")
	ErrTaskStatusConflicts = NewError(KindAlreadyProcessed, "task status changed concurrently")
)

// HTTPError описывает ошибку в ответе API
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorMapping сопоставляет категории ошибок с кодами API и HTTP статусами
var ErrorMapping = map[Kind]struct {
	Code   string
	Status int
}{
	KindValidation:        {Code: "INVALID_REQUEST", Status: 400},
	KindNotFound:          {Code: "NOT_FOUND", Status: 404},
	KindPermissionDenied:  {Code: "PERMISSION_DENIED", Status: 403},
	KindSelfTargetDenied:  {Code: "SELF_TARGET_DENIED", Status: 403},
	KindAlreadyProcessed:  {Code: "ALREADY_PROCESSED", Status: 409},
	KindCapacityExceeded:  {Code: "GROUP_FULL", Status: 409},
	KindInvalidTransition: {Code: "INVALID_TRANSITION", Status: 422},
	KindOrphanRisk:        {Code: "ORPHAN_RISK", Status: 409},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, int, bool) {
	kind := KindOf(err)
	mapping, exists := ErrorMapping[kind]
	if !exists {
		return HTTPError{}, 0, false
	}
	return HTTPError{Code: mapping.Code, Message: err.Error()}, mapping.Status, true
}
