//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/domain/progress"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/usecase/queries"
	"course-marketplace/tests/common/builder"
	queriesmock "course-marketplace/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProgressQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	courses      *queriesmock.MockCourseReadStore
	users        *queriesmock.MockUserReadStore
	progress     *queriesmock.MockProgressReadStore
	certificates *queriesmock.MockCertificateLookup
	q            queries.ProgressQueries

	course  *catalog.Course
	student uuid.UUID
}

func (s *ProgressQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.courses = queriesmock.NewMockCourseReadStore(s.mockCtrl)
	s.users = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.progress = queriesmock.NewMockProgressReadStore(s.mockCtrl)
	s.certificates = queriesmock.NewMockCertificateLookup(s.mockCtrl)
	s.q = queries.NewProgressQueries(s.courses, s.users, s.progress, s.certificates)

	s.course = builder.NewCourseBuilder().WithLessons("l1", "l2", "l3", "l4").BuildDomain()
	s.student = uuid.New()
}

func (s *ProgressQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProgressQueriesSuite(t *testing.T) {
	suite.Run(t, new(ProgressQueriesTestSuite))
}

func (s *ProgressQueriesTestSuite) expectOwner() {
	s.courses.EXPECT().CourseByID(gomock.Any(), s.course.ID()).Return(s.course, nil)
	s.users.EXPECT().FindByID(gomock.Any(), s.student).
		Return(builder.NewUserBuilder().WithID(s.student).WithOwned(s.course.ID()).BuildDomain(), nil)
}

func (s *ProgressQueriesTestSuite) TestGet() {
	ctx := context.Background()
	notFound := infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	accessed := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	s.Run("no progress yet", func() {
		s.SetupTest()
		s.expectOwner()
		s.progress.EXPECT().Find(gomock.Any(), s.student, s.course.ID()).Return(nil, notFound)
		s.certificates.EXPECT().FindByUserCourse(gomock.Any(), s.student, s.course.ID()).Return(nil, notFound)

		view, err := s.q.Get(ctx, s.student, s.course.ID())
		s.Require().NoError(err)
		s.Equal(0, view.Percent)
		s.Equal(4, view.TotalLessons)
		s.Empty(view.CompletedLessons)
		s.NotNil(view.QuizScores)
		s.Nil(view.LastAccessed)
		s.Nil(view.CertificateCode)
	})

	s.Run("stale lesson keys do not count", func() {
		s.SetupTest()
		s.expectOwner()
		p := progress.Reconstruct(s.student, s.course.ID(), []string{"l1", "l2", "removed"}, nil, accessed)
		s.progress.EXPECT().Find(gomock.Any(), s.student, s.course.ID()).Return(p, nil)
		s.certificates.EXPECT().FindByUserCourse(gomock.Any(), s.student, s.course.ID()).Return(nil, notFound)

		view, err := s.q.Get(ctx, s.student, s.course.ID())
		s.Require().NoError(err)
		s.Equal(2, view.CompletedCount)
		s.Equal(50, view.Percent)
		s.Equal([]string{"l1", "l2", "removed"}, view.CompletedLessons)
		s.Require().NotNil(view.LastAccessed)
		s.Equal(accessed, *view.LastAccessed)
	})

	s.Run("certificate code is included", func() {
		s.SetupTest()
		s.expectOwner()
		cert := certificate.Issue("CERT", s.student, s.course.ID(), accessed)
		s.progress.EXPECT().Find(gomock.Any(), s.student, s.course.ID()).Return(nil, notFound)
		s.certificates.EXPECT().FindByUserCourse(gomock.Any(), s.student, s.course.ID()).Return(cert, nil)

		view, err := s.q.Get(ctx, s.student, s.course.ID())
		s.Require().NoError(err)
		s.Require().NotNil(view.CertificateCode)
		s.Equal(cert.Code().String(), *view.CertificateCode)
	})

	s.Run("course must be owned", func() {
		s.SetupTest()
		s.courses.EXPECT().CourseByID(gomock.Any(), s.course.ID()).Return(s.course, nil)
		s.users.EXPECT().FindByID(gomock.Any(), s.student).Return(builder.NewUserBuilder().WithID(s.student).BuildDomain(), nil)

		_, err := s.q.Get(ctx, s.student, s.course.ID())
		s.ErrorIs(err, queries.ErrCourseNotOwned)
	})

	s.Run("unknown course", func() {
		s.SetupTest()
		s.courses.EXPECT().CourseByID(gomock.Any(), gomock.Any()).Return(nil, notFound)

		_, err := s.q.Get(ctx, s.student, uuid.New())
		s.ErrorIs(err, queries.ErrCourseNotFound)
	})

	s.Run("unknown user", func() {
		s.SetupTest()
		s.courses.EXPECT().CourseByID(gomock.Any(), s.course.ID()).Return(s.course, nil)
		s.users.EXPECT().FindByID(gomock.Any(), s.student).Return(nil, notFound)

		_, err := s.q.Get(ctx, s.student, s.course.ID())
		s.ErrorIs(err, queries.ErrUserNotFound)
	})
}
