package user

import (
	"github.com/google/uuid"
)

// Principal is the verified caller produced by the auth middleware.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func NewPrincipal(id uuid.UUID, role Role) Principal {
	return Principal{ID: id, Role: role}
}

func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

// User as seen by the marketplace. Profile data is owned by the identity service.
type User struct {
	id           uuid.UUID
	name         string
	role         Role
	ownedCourses []uuid.UUID
}

func ReconstructUser(id uuid.UUID, name string, role Role, ownedCourses []uuid.UUID) *User {
	return &User{
		id:           id,
		name:         name,
		role:         role,
		ownedCourses: ownedCourses,
	}
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Role() Role    { return u.role }

func (u *User) OwnedCourses() []uuid.UUID {
	out := make([]uuid.UUID, len(u.ownedCourses))
	copy(out, u.ownedCourses)
	return out
}

func (u *User) Owns(courseID uuid.UUID) bool {
	for _, id := range u.ownedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// OwnsAll reports whether every id is already owned. An empty list is never owned.
func (u *User) OwnsAll(courseIDs []uuid.UUID) bool {
	if len(courseIDs) == 0 {
		return false
	}
	for _, id := range courseIDs {
		if !u.Owns(id) {
			return false
		}
	}
	return true
}
