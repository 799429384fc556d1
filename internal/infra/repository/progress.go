package repository

import (
	"context"
	"encoding/json"
	"time"

	"course-marketplace/internal/domain/progress"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/infra/repository/converter"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProgressWriteQueries interface {
	RecordLessonCompletion(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordLessonCompletionParams) (sqlc.RecordLessonCompletionRow, error)
	RecordQuizScore(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordQuizScoreParams) (sqlc.RecordQuizScoreRow, error)
}

type ProgressRepository struct {
	queries ProgressWriteQueries
	db      sqlc.DBTX
}

func NewProgressRepository(queries ProgressWriteQueries, db sqlc.DBTX) *ProgressRepository {
	return &ProgressRepository{
		queries: queries,
		db:      db,
	}
}

// RecordLesson is an upsert; recording the same key twice leaves one entry.
func (r *ProgressRepository) RecordLesson(ctx context.Context, tx sqlc.DBTX, userID, courseID uuid.UUID, key progress.LessonKey, now time.Time) (*progress.Progress, error) {
	params := sqlc.RecordLessonCompletionParams{
		UserID:    userID,
		CourseID:  courseID,
		LessonKey: key.String(),
		Now:       pgconv.TimeToPgtype(now),
	}

	row, err := r.queries.RecordLessonCompletion(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to record lesson completion", err)
	}

	p, err := converter.ProgressFromColumns(row.UserID, row.CourseID, row.CompletedLessons, row.QuizScores, pgconv.TimeFromPgtype(row.LastAccessed))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert progress row", err)
	}
	return p, nil
}

func (r *ProgressRepository) RecordQuiz(ctx context.Context, tx sqlc.DBTX, userID, courseID uuid.UUID, quizKey string, result progress.QuizResult, markCompleted bool, now time.Time) (*progress.Progress, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode quiz result", err)
	}

	params := sqlc.RecordQuizScoreParams{
		UserID:        userID,
		CourseID:      courseID,
		MarkCompleted: markCompleted,
		QuizKey:       quizKey,
		Result:        payload,
		Now:           pgconv.TimeToPgtype(now),
	}

	row, err := r.queries.RecordQuizScore(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to record quiz score", err)
	}

	p, err := converter.ProgressFromColumns(row.UserID, row.CourseID, row.CompletedLessons, row.QuizScores, pgconv.TimeFromPgtype(row.LastAccessed))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert progress row", err)
	}
	return p, nil
}
