//go:build unit

package user_test

import (
	"testing"

	"course-marketplace/internal/domain/user"
	"course-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		in    string
		want  user.Role
		errIs error
	}{
		{in: "student", want: user.RoleStudent},
		{in: " Professor ", want: user.RoleProfessor},
		{in: "ADMIN", want: user.RoleAdmin},
		{in: "owner", errIs: user.ErrInvalidRole},
		{in: "", errIs: user.ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := user.NewRole(tt.in)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleCapabilities(t *testing.T) {
	assert.False(t, user.RoleStudent.CanReceivePayouts())
	assert.True(t, user.RoleProfessor.CanReceivePayouts())
	assert.True(t, user.RoleAdmin.CanReceivePayouts())

	assert.True(t, user.NewPrincipal(uuid.New(), user.RoleAdmin).IsAdmin())
	assert.False(t, user.NewPrincipal(uuid.New(), user.RoleProfessor).IsAdmin())
}

func TestOwnership(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	u := builder.NewUserBuilder().WithOwned(a).BuildDomain()

	t.Run("単一コース", func(t *testing.T) {
		assert.True(t, u.Owns(a))
		assert.False(t, u.Owns(b))
	})

	t.Run("all of a track", func(t *testing.T) {
		assert.True(t, u.OwnsAll([]uuid.UUID{a}))
		assert.False(t, u.OwnsAll([]uuid.UUID{a, b}))
		assert.False(t, u.OwnsAll(nil), "an empty list is never owned")
	})

	t.Run("OwnedCourses returns a copy", func(t *testing.T) {
		owned := u.OwnedCourses()
		owned[0] = b
		assert.True(t, u.Owns(a))
	})
}
