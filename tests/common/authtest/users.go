//go:build unit || e2e

package authtest

import (
	"testing"

	"course-marketplace/internal/pkg/config"
	"course-marketplace/tests/common/builder"
	"course-marketplace/tests/common/dbtest"

	"github.com/google/uuid"
)

// CreateUser stores the built user and signs a token for it.
func CreateUser(t *testing.T, db dbtest.DBLike, cfg config.JWTConfig, b *builder.UserBuilder) (uuid.UUID, string) {
	t.Helper()

	id := dbtest.InsertUser(t, db, b.BuildInfra())
	return id, NewJWTHelper(cfg).GenerateToken(t, id, b.Role)
}

func CreateStudent(t *testing.T, db dbtest.DBLike, cfg config.JWTConfig) (uuid.UUID, string) {
	t.Helper()
	return CreateUser(t, db, cfg, builder.NewUserBuilder().AsStudent())
}

func CreateProfessor(t *testing.T, db dbtest.DBLike, cfg config.JWTConfig) (uuid.UUID, string) {
	t.Helper()
	return CreateUser(t, db, cfg, builder.NewUserBuilder().AsProfessor())
}

func CreateAdmin(t *testing.T, db dbtest.DBLike, cfg config.JWTConfig) (uuid.UUID, string) {
	t.Helper()
	return CreateUser(t, db, cfg, builder.NewUserBuilder().AsAdmin())
}
