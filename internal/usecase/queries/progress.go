package queries

import (
	"context"
	"time"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/domain/progress"
	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/infra"

	"github.com/google/uuid"
)

type ProgressView struct {
	CourseID         uuid.UUID                      `json:"course_id"`
	CompletionPolicy string                         `json:"completion_policy"`
	CompletedLessons []string                       `json:"completed_lessons"`
	CompletedCount   int                            `json:"completed_count"`
	TotalLessons     int                            `json:"total_lessons"`
	Percent          int                            `json:"percent"`
	QuizScores       map[string]progress.QuizResult `json:"quiz_scores"`
	LastAccessed     *time.Time                     `json:"last_accessed,omitempty"`
	CertificateCode  *string                        `json:"certificate_code,omitempty"`
}

type CourseReadStore interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*catalog.Course, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type ProgressReadStore interface {
	Find(ctx context.Context, userID, courseID uuid.UUID) (*progress.Progress, error)
}

type CertificateLookup interface {
	FindByUserCourse(ctx context.Context, userID, courseID uuid.UUID) (*certificate.Certificate, error)
}

type ProgressQueries interface {
	Get(ctx context.Context, userID, courseID uuid.UUID) (*ProgressView, error)
}

type progressQueriesImpl struct {
	courses      CourseReadStore
	users        UserReadStore
	progress     ProgressReadStore
	certificates CertificateLookup
}

func NewProgressQueries(courses CourseReadStore, users UserReadStore, progresses ProgressReadStore, certificates CertificateLookup) ProgressQueries {
	return &progressQueriesImpl{
		courses:      courses,
		users:        users,
		progress:     progresses,
		certificates: certificates,
	}
}

func (q *progressQueriesImpl) Get(ctx context.Context, userID, courseID uuid.UUID) (*ProgressView, error) {
	course, err := q.courses.CourseByID(ctx, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	u, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !u.Owns(courseID) {
		return nil, ErrCourseNotOwned
	}

	var prog *progress.Progress
	p, err := q.progress.Find(ctx, userID, courseID)
	switch {
	case err == nil:
		prog = p
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	var cert *certificate.Certificate
	c, err := q.certificates.FindByUserCourse(ctx, userID, courseID)
	switch {
	case err == nil:
		cert = c
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}
	return NewProgressView(course, prog, cert), nil
}

// NewProgressView renders progress against the course structure. p and cert may be nil.
func NewProgressView(course *catalog.Course, p *progress.Progress, cert *certificate.Certificate) *ProgressView {
	structure := course.Structure()
	view := &ProgressView{
		CourseID:         course.ID(),
		CompletionPolicy: string(course.CompletionPolicy()),
		CompletedLessons: []string{},
		TotalLessons:     structure.TotalLessons(),
		QuizScores:       map[string]progress.QuizResult{},
	}
	if p != nil {
		lastAccessed := p.LastAccessed()
		view.CompletedLessons = p.CompletedLessons()
		view.CompletedCount = p.CompletedInStructure(structure)
		view.Percent = p.Percent(structure)
		view.QuizScores = p.QuizScores()
		view.LastAccessed = &lastAccessed
	}
	if cert != nil {
		code := cert.Code().String()
		view.CertificateCode = &code
	}
	return view
}
