package readstore

import (
	"context"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/infra/repository/converter"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetCourseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCourseByIDRow, error)
	GetTrackByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetTrackByIDRow, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *CatalogReadStore) CourseByID(ctx context.Context, id uuid.UUID) (*catalog.Course, error) {
	row, err := s.queries.GetCourseByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get course by id", err)
	}
	course, err := converter.CourseFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert course row", err)
	}
	return course, nil
}

func (s *CatalogReadStore) TrackByID(ctx context.Context, id uuid.UUID) (*catalog.Track, error) {
	row, err := s.queries.GetTrackByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("track not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get track by id", err)
	}
	return converter.TrackFromRow(row), nil
}
