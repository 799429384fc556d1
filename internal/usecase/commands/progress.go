package commands

import (
	"context"
	"errors"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/domain/progress"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownLesson = errors.New("lesson is not part of the course")

type ProgressResult struct {
	Progress           *progress.Progress
	Course             *catalog.Course
	Certificate        *certificate.Certificate
	CertificateCreated bool
}

type ProgressCommands interface {
	RecordLesson(ctx context.Context, userID, courseID uuid.UUID, lessonID string) (*ProgressResult, error)
	RecordFinalExam(ctx context.Context, userID, courseID uuid.UUID, score int) (*ProgressResult, error)
	RecordQuiz(ctx context.Context, userID, courseID uuid.UUID, quizKey string, score int) (*ProgressResult, error)
}

type progressUseCaseImpl struct {
	uow     shared.UnitOfWork
	issuer  *CertificateIssuer
	clock   clock.Clock
	metrics MetricsRecorder
}

func NewProgressUseCase(uow shared.UnitOfWork, issuer *CertificateIssuer, clock clock.Clock, metrics MetricsRecorder) ProgressCommands {
	return &progressUseCaseImpl{
		uow:     uow,
		issuer:  issuer,
		clock:   clock,
		metrics: metrics,
	}
}

// RecordLesson marks a lesson completed. Under the all_lessons policy the last lesson issues the certificate.
func (p *progressUseCaseImpl) RecordLesson(ctx context.Context, userID, courseID uuid.UUID, lessonID string) (*ProgressResult, error) {
	key, err := progress.NewLessonKey(lessonID)
	if err != nil {
		return nil, invalid(err)
	}

	return p.record(ctx, "record_lesson", userID, courseID, func(ctx context.Context, tx shared.Tx, course *catalog.Course) (*progress.Progress, error) {
		if !lessonInStructure(course.Structure(), key) {
			return nil, invalid(ErrUnknownLesson)
		}
		return tx.Progress().RecordLesson(ctx, tx.DB(), userID, courseID, key, p.clock.Now())
	}, true)
}

// RecordFinalExam stores the exam score and marks the attempt in the lesson set.
// A passing score issues the certificate under either policy.
func (p *progressUseCaseImpl) RecordFinalExam(ctx context.Context, userID, courseID uuid.UUID, score int) (*ProgressResult, error) {
	s, err := progress.NewScore(score)
	if err != nil {
		return nil, invalid(err)
	}

	return p.record(ctx, "record_final_exam", userID, courseID, func(ctx context.Context, tx shared.Tx, _ *catalog.Course) (*progress.Progress, error) {
		now := p.clock.Now()
		return tx.Progress().RecordQuiz(ctx, tx.DB(), userID, courseID, progress.FinalExamKey, progress.NewQuizResult(s, now), true, now)
	}, true)
}

// RecordQuiz stores a module quiz score. Quizzes never certify.
func (p *progressUseCaseImpl) RecordQuiz(ctx context.Context, userID, courseID uuid.UUID, quizKey string, score int) (*ProgressResult, error) {
	key, err := progress.NewLessonKey(quizKey)
	if err != nil {
		return nil, invalid(err)
	}
	s, err := progress.NewScore(score)
	if err != nil {
		return nil, invalid(err)
	}

	return p.record(ctx, "record_quiz", userID, courseID, func(ctx context.Context, tx shared.Tx, _ *catalog.Course) (*progress.Progress, error) {
		now := p.clock.Now()
		return tx.Progress().RecordQuiz(ctx, tx.DB(), userID, courseID, key.String(), progress.NewQuizResult(s, now), false, now)
	}, false)
}

type progressWrite func(ctx context.Context, tx shared.Tx, course *catalog.Course) (*progress.Progress, error)

func (p *progressUseCaseImpl) record(
	ctx context.Context,
	op string,
	userID, courseID uuid.UUID,
	write progressWrite,
	mayCertify bool,
) (*ProgressResult, error) {
	var result *ProgressResult
	err := retryOnConflict(ctx, op, func() error {
		return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			course, err := p.loadOwnedCourse(ctx, tx.Reads(), userID, courseID)
			if err != nil {
				return err
			}

			prog, err := write(ctx, tx, course)
			if err != nil {
				return err
			}
			r := &ProgressResult{Progress: prog, Course: course}

			if mayCertify && prog.CompletionReached(course.CompletionPolicy(), course.Structure()) {
				cert, created, err := p.issuer.IssueIfAbsent(ctx, tx, userID, courseID)
				if err != nil {
					return err
				}
				r.Certificate = cert
				r.CertificateCreated = created
			}
			result = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if result.CertificateCreated {
		p.metrics.CertificateIssued()
	}
	return result, nil
}

func (p *progressUseCaseImpl) loadOwnedCourse(ctx context.Context, reads shared.CommandReads, userID, courseID uuid.UUID) (*catalog.Course, error) {
	course, err := reads.CourseByID(ctx, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	u, err := reads.UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !u.Owns(courseID) {
		return nil, ErrCourseNotOwned
	}
	return course, nil
}

// Courses without a recorded structure accept any lesson key.
func lessonInStructure(s catalog.Structure, key progress.LessonKey) bool {
	keys := s.LessonKeys()
	if len(keys) == 0 {
		return true
	}
	for _, k := range keys {
		if k == key.String() {
			return true
		}
	}
	return false
}
