//go:build unit || e2e

package builder

import (
	"time"

	"course-marketplace/internal/domain/user"
	sqlc "course-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         user.Role
	OwnedCourses []uuid.UUID
}

func NewUserBuilder() *UserBuilder {
	id := uuid.New()
	return &UserBuilder{
		ID:    id,
		Name:  "Ana Souza",
		Email: "student-" + id.String()[:8] + "@example.com",
		Role:  user.RoleStudent,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() *user.User {
	return user.ReconstructUser(u.ID, u.Name, u.Role, u.OwnedCourses)
}

func (u *UserBuilder) BuildPrincipal() user.Principal {
	return user.NewPrincipal(u.ID, u.Role)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	owned := u.OwnedCourses
	if owned == nil {
		owned = []uuid.UUID{}
	}
	return sqlc.Users{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		OwnedCourseIds: owned,
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithOwned(courseIDs ...uuid.UUID) *UserBuilder {
	u.OwnedCourses = courseIDs
	return u
}

func (u *UserBuilder) AsStudent() *UserBuilder {
	u.Role = user.RoleStudent
	return u
}

func (u *UserBuilder) AsProfessor() *UserBuilder {
	u.Role = user.RoleProfessor
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	return u
}
