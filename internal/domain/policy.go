package domain

// Action действие, которое проверяет политика ролей.
type Action string

const (
	ActionKick             Action = "kick"
	ActionChangeRole       Action = "change_role"
	ActionApprove          Action = "approve"
	ActionReject           Action = "reject"
	ActionChangeTaskStatus Action = "change_task_status"
)

// PolicyRequest входные данные политики. TargetRole пуст для действий без цели-участника,
// RequestedRole заполняется только для смены роли.
type PolicyRequest struct {
	ActorRole     Role
	TargetRole    Role
	Action        Action
	SelfTarget    bool
	RequestedRole Role
}

// Decision результат проверки политики.
type Decision struct {
	Allowed bool
	Reason  *Error
}

// Err возвращает причину отказа или nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return d.Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(kind Kind, reason string) Decision {
	return Decision{Reason: NewError(kind, reason)}
}

// Authorize решает, может ли роль актора выполнить действие над ролью цели.
// Функция чистая и безопасна для конкурентного вызова.
func Authorize(req PolicyRequest) Decision {
	if req.Action == ActionKick && req.SelfTarget {
		return deny(KindSelfTargetDenied, "cannot kick yourself")
	}
	if !req.ActorRole.Valid() {
		return deny(KindPermissionDenied, "actor has no role in the group")
	}

	switch req.Action {
	case ActionKick:
		if req.TargetRole == RoleOwner {
			return deny(KindPermissionDenied, "the owner cannot be kicked")
		}
		if !req.ActorRole.AtLeast(RoleAdmin) {
			return deny(KindPermissionDenied, "kicking requires at least admin role")
		}
		if !req.ActorRole.Outranks(req.TargetRole) {
			return deny(KindPermissionDenied, "only the owner can remove an admin")
		}
		return allow()

	case ActionChangeRole:
		if req.TargetRole == RoleOwner || req.RequestedRole == RoleOwner {
			return deny(KindPermissionDenied, "ownership changes only through transfer")
		}
		if req.ActorRole != RoleOwner {
			return deny(KindPermissionDenied, "only the owner can change roles")
		}
		if !req.RequestedRole.Valid() {
			return deny(KindValidation, "invalid requested role")
		}
		return allow()

	case ActionApprove, ActionReject:
		if !req.ActorRole.AtLeast(RoleAdmin) {
			return deny(KindPermissionDenied, "handling join requests requires at least admin role")
		}
		return allow()

	case ActionChangeTaskStatus:
		if !req.ActorRole.AtLeast(RoleAdmin) {
			return deny(KindPermissionDenied, "changing this task requires at least admin role")
		}
		return allow()

	default:
		return deny(KindPermissionDenied, "unknown action")
	}
}
