//go:build unit

package progress_test

import (
	"testing"
	"time"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/progress"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now       = time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
	structure = catalog.Structure{Lessons: []string{"l1", "l2", "l3"}}
)

func newProgress(completed []string, quizzes map[string]progress.QuizResult) *progress.Progress {
	return progress.Reconstruct(uuid.New(), uuid.New(), completed, quizzes, now)
}

func passedExam() map[string]progress.QuizResult {
	s, _ := progress.NewScore(85)
	return map[string]progress.QuizResult{progress.FinalExamKey: progress.NewQuizResult(s, now)}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed []string
		structure catalog.Structure
		want      int
	}{
		{name: "none", completed: nil, structure: structure, want: 0},
		{name: "floored", completed: []string{"l1", "l2"}, structure: structure, want: 66},
		{name: "all", completed: []string{"l3", "l1", "l2"}, structure: structure, want: 100},
		{name: "stale keys ignored", completed: []string{"l1", "removed"}, structure: structure, want: 33},
		{name: "no lessons", completed: []string{"l1"}, structure: catalog.Structure{}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newProgress(tt.completed, nil).Percent(tt.structure))
		})
	}
}

func TestCompletionReached(t *testing.T) {
	all := []string{"l1", "l2", "l3"}

	tests := []struct {
		name      string
		policy    catalog.CompletionPolicy
		completed []string
		quizzes   map[string]progress.QuizResult
		want      bool
	}{
		{name: "final exam policy, all lessons without exam", policy: catalog.CompletionFinalExam, completed: all, want: false},
		{name: "final exam policy, passed exam", policy: catalog.CompletionFinalExam, quizzes: passedExam(), want: true},
		{name: "all lessons policy, all lessons", policy: catalog.CompletionAllLessons, completed: all, want: true},
		{name: "all lessons policy, partial", policy: catalog.CompletionAllLessons, completed: all[:2], want: false},
		{name: "all lessons policy, passed exam", policy: catalog.CompletionAllLessons, quizzes: passedExam(), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProgress(tt.completed, tt.quizzes)
			assert.Equal(t, tt.want, p.CompletionReached(tt.policy, structure))
		})
	}

	t.Run("all lessons policy never completes an empty course", func(t *testing.T) {
		p := newProgress([]string{"l1"}, nil)
		assert.False(t, p.CompletionReached(catalog.CompletionAllLessons, catalog.Structure{}))
	})

	t.Run("failed exam", func(t *testing.T) {
		s, err := progress.NewScore(progress.PassingScore - 1)
		require.NoError(t, err)
		p := newProgress(nil, map[string]progress.QuizResult{progress.FinalExamKey: progress.NewQuizResult(s, now)})
		assert.False(t, p.PassedFinalExam())
		assert.False(t, p.CompletionReached(catalog.CompletionFinalExam, structure))
	})
}

func TestValueObjects(t *testing.T) {
	t.Run("lesson key", func(t *testing.T) {
		k, err := progress.NewLessonKey(" 42 ")
		require.NoError(t, err)
		assert.Equal(t, "42", k.String())

		_, err = progress.NewLessonKey("  ")
		assert.ErrorIs(t, err, progress.ErrEmptyLessonKey)

		_, err = progress.NewLessonKey(progress.FinalExamKey)
		assert.ErrorIs(t, err, progress.ErrReservedKey)
	})

	t.Run("score", func(t *testing.T) {
		for _, v := range []int{-1, 101} {
			_, err := progress.NewScore(v)
			assert.ErrorIs(t, err, progress.ErrScoreOutOfRange)
		}
		s, err := progress.NewScore(progress.PassingScore)
		require.NoError(t, err)
		assert.True(t, s.Passed())
	})
}

func TestAccessorsCopy(t *testing.T) {
	p := newProgress([]string{"l1"}, passedExam())

	lessons := p.CompletedLessons()
	lessons[0] = "mutated"
	assert.True(t, p.HasCompleted("l1"))

	scores := p.QuizScores()
	delete(scores, progress.FinalExamKey)
	assert.True(t, p.PassedFinalExam())
}
