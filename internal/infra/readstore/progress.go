package readstore

import (
	"context"

	"course-marketplace/internal/domain/progress"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/infra/repository/converter"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProgressReadQueries interface {
	GetProgress(ctx context.Context, db sqlc.DBTX, arg sqlc.GetProgressParams) (sqlc.GetProgressRow, error)
}

type ProgressReadStore struct {
	queries ProgressReadQueries
	db      sqlc.DBTX
}

func NewProgressReadStore(queries ProgressReadQueries, db sqlc.DBTX) *ProgressReadStore {
	return &ProgressReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *ProgressReadStore) Find(ctx context.Context, userID, courseID uuid.UUID) (*progress.Progress, error) {
	row, err := s.queries.GetProgress(ctx, s.db, sqlc.GetProgressParams{UserID: userID, CourseID: courseID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("progress not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get progress", err)
	}
	p, err := converter.ProgressFromColumns(row.UserID, row.CourseID, row.CompletedLessons, row.QuizScores, pgconv.TimeFromPgtype(row.LastAccessed))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert progress row", err)
	}
	return p, nil
}
