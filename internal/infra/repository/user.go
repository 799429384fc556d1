package repository

import (
	"context"

	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/infra"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	LockUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockUserByIDRow, error)
	GrantCourses(ctx context.Context, db sqlc.DBTX, arg sqlc.GrantCoursesParams) ([]uuid.UUID, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// LockByID holds the user row until the surrounding transaction ends.
func (r *UserRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (user.Role, error) {
	row, err := r.queries.LockUserByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to lock user", err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return "", infra.WrapRepoErr("failed to convert user role", err)
	}
	return role, nil
}

// GrantCourses appends the ids the user does not own yet and returns the full owned list.
func (r *UserRepository) GrantCourses(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, courseIDs []uuid.UUID) ([]uuid.UUID, error) {
	params := sqlc.GrantCoursesParams{
		CourseIds: courseIDs,
		UserID:    userID,
	}

	owned, err := r.queries.GrantCourses(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to grant courses", err)
	}
	return owned, nil
}
