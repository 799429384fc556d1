package user

import (
	"errors"
	"strings"
)

var ErrInvalidRole = errors.New("invalid role")

func NewRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Professors sell courses; admins may also hold platform-owned earnings.
func (r Role) CanReceivePayouts() bool {
	return r == RoleProfessor || r == RoleAdmin
}
