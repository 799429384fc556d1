//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"course-marketplace/internal/domain/catalog"
	sqlc "course-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CourseBuilder struct {
	ID       uuid.UUID
	Title    string
	Price    decimal.Decimal
	AuthorID uuid.UUID
	Policy   catalog.CompletionPolicy
	Lessons  []string
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:       uuid.New(),
		Title:    "Go for Backend Engineers",
		Price:    decimal.RequireFromString("100.00"),
		AuthorID: uuid.New(),
		Policy:   catalog.CompletionFinalExam,
		Lessons:  []string{"intro", "goroutines", "channels"},
	}
}

func (b *CourseBuilder) With(mutate func(*CourseBuilder)) *CourseBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CourseBuilder) BuildDomain() *catalog.Course {
	return catalog.ReconstructCourse(b.ID, b.Title, b.Price, b.AuthorID, b.Policy, b.structure())
}

func (b *CourseBuilder) BuildInfra() sqlc.Courses {
	now := time.Now()
	structure, _ := json.Marshal(b.structure())
	return sqlc.Courses{
		ID:               b.ID,
		Title:            b.Title,
		Price:            b.Price,
		AuthorID:         b.AuthorID,
		CompletionPolicy: string(b.Policy),
		Structure:        structure,
		CreatedAt:        pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *CourseBuilder) structure() catalog.Structure {
	return catalog.Structure{Lessons: b.Lessons}
}

// Fluent builder methods
func (b *CourseBuilder) WithID(id uuid.UUID) *CourseBuilder {
	b.ID = id
	return b
}

func (b *CourseBuilder) WithPrice(price string) *CourseBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *CourseBuilder) WithAuthorID(id uuid.UUID) *CourseBuilder {
	b.AuthorID = id
	return b
}

func (b *CourseBuilder) WithLessons(lessons ...string) *CourseBuilder {
	b.Lessons = lessons
	return b
}

func (b *CourseBuilder) AsAllLessons() *CourseBuilder {
	b.Policy = catalog.CompletionAllLessons
	return b
}

type TrackBuilder struct {
	ID        uuid.UUID
	Title     string
	Price     decimal.Decimal
	AuthorID  *uuid.UUID
	CourseIDs []uuid.UUID
}

func NewTrackBuilder() *TrackBuilder {
	return &TrackBuilder{
		ID:        uuid.New(),
		Title:     "Backend Track",
		Price:     decimal.RequireFromString("250.00"),
		CourseIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}
}

func (b *TrackBuilder) BuildDomain() *catalog.Track {
	return catalog.ReconstructTrack(b.ID, b.Title, b.Price, b.AuthorID, b.CourseIDs)
}

func (b *TrackBuilder) BuildInfra() sqlc.Tracks {
	now := time.Now()
	var author pgtype.UUID
	if b.AuthorID != nil {
		author = pgtype.UUID{Bytes: *b.AuthorID, Valid: true}
	}
	return sqlc.Tracks{
		ID:        b.ID,
		Title:     b.Title,
		Price:     b.Price,
		AuthorID:  author,
		CourseIds: b.CourseIDs,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *TrackBuilder) WithCourses(ids ...uuid.UUID) *TrackBuilder {
	b.CourseIDs = ids
	return b
}

func (b *TrackBuilder) WithAuthorID(id uuid.UUID) *TrackBuilder {
	b.AuthorID = &id
	return b
}
