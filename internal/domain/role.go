package domain

// Role роль участника в группе. Один тип используется и для членства,
// и для авторизации смены статуса задач.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// rank задает иерархию OWNER > ADMIN > MEMBER.
func (r Role) rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	default:
		return 0
	}
}

// Valid сообщает, является ли роль одной из известных.
func (r Role) Valid() bool {
	return r.rank() > 0
}

// AtLeast проверяет, что роль не ниже other.
func (r Role) AtLeast(other Role) bool {
	return r.Valid() && r.rank() >= other.rank()
}

// Outranks проверяет, что роль строго выше other.
func (r Role) Outranks(other Role) bool {
	return r.Valid() && r.rank() > other.rank()
}

// ParseRole преобразует строку в Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
