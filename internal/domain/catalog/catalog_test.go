//go:build unit

package catalog_test

import (
	"testing"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubject(t *testing.T) {
	id := uuid.New()

	s, err := catalog.NewSubject(" Course ", id)
	require.NoError(t, err)
	assert.True(t, s.IsCourse())
	assert.Equal(t, "course:"+id.String(), s.String())

	_, err = catalog.NewSubject("bundle", id)
	assert.ErrorIs(t, err, catalog.ErrInvalidSubjectKind)

	_, err = catalog.NewSubject("track", uuid.Nil)
	assert.ErrorIs(t, err, catalog.ErrInvalidSubjectID)
}

func TestCompletionPolicy(t *testing.T) {
	p, err := catalog.NewCompletionPolicy("")
	require.NoError(t, err)
	assert.Equal(t, catalog.CompletionFinalExam, p)

	p, err = catalog.NewCompletionPolicy("all_lessons")
	require.NoError(t, err)
	assert.Equal(t, catalog.CompletionAllLessons, p)

	_, err = catalog.NewCompletionPolicy("attendance")
	assert.ErrorIs(t, err, catalog.ErrInvalidCompletionPolicy)
}

func TestStructure(t *testing.T) {
	t.Run("modules take precedence over flat lessons", func(t *testing.T) {
		s := catalog.Structure{
			Modules: []catalog.Module{{Title: "Basics", Items: []string{"a", "b"}}, {Title: "Advanced", Items: []string{"c"}}},
			Lessons: []string{"x"},
		}
		assert.Equal(t, []string{"a", "b", "c"}, s.LessonKeys())
		assert.Equal(t, 3, s.TotalLessons())
	})

	t.Run("empty structure", func(t *testing.T) {
		assert.Zero(t, catalog.Structure{}.TotalLessons())
	})
}

func TestOffer(t *testing.T) {
	t.Run("course is sold by its author", func(t *testing.T) {
		course := builder.NewCourseBuilder().BuildDomain()
		offer := course.Offer()

		require.NotNil(t, offer.SellerID)
		assert.Equal(t, course.AuthorID(), *offer.SellerID)
		assert.Equal(t, []uuid.UUID{course.ID()}, offer.CourseIDs)
		assert.True(t, offer.Subject.IsCourse())
	})

	t.Run("platform track has no seller", func(t *testing.T) {
		track := builder.NewTrackBuilder().BuildDomain()
		offer := track.Offer()

		assert.Nil(t, offer.SellerID)
		assert.Len(t, offer.CourseIDs, 2)
		assert.True(t, offer.Subject.IsTrack())
	})
}
