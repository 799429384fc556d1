package progress

import (
	"time"

	"course-marketplace/internal/domain/catalog"

	"github.com/google/uuid"
)

type QuizResult struct {
	Score       int       `json:"score"`
	Passed      bool      `json:"passed"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewQuizResult(score Score, now time.Time) QuizResult {
	return QuizResult{Score: score.Int(), Passed: score.Passed(), SubmittedAt: now}
}

// Progress is one user's state in one course.
type Progress struct {
	userID           uuid.UUID
	courseID         uuid.UUID
	completedLessons []string
	quizScores       map[string]QuizResult
	lastAccessed     time.Time
}

func Reconstruct(userID, courseID uuid.UUID, completed []string, quizScores map[string]QuizResult, lastAccessed time.Time) *Progress {
	if quizScores == nil {
		quizScores = map[string]QuizResult{}
	}
	return &Progress{
		userID:           userID,
		courseID:         courseID,
		completedLessons: completed,
		quizScores:       quizScores,
		lastAccessed:     lastAccessed,
	}
}

func (p *Progress) UserID() uuid.UUID       { return p.userID }
func (p *Progress) CourseID() uuid.UUID     { return p.courseID }
func (p *Progress) LastAccessed() time.Time { return p.lastAccessed }

func (p *Progress) CompletedLessons() []string {
	out := make([]string, len(p.completedLessons))
	copy(out, p.completedLessons)
	return out
}

func (p *Progress) QuizScores() map[string]QuizResult {
	out := make(map[string]QuizResult, len(p.quizScores))
	for k, v := range p.quizScores {
		out[k] = v
	}
	return out
}

func (p *Progress) HasCompleted(key string) bool {
	for _, k := range p.completedLessons {
		if k == key {
			return true
		}
	}
	return false
}

func (p *Progress) PassedFinalExam() bool {
	r, ok := p.quizScores[FinalExamKey]
	return ok && r.Passed
}

// CompletedInStructure counts completed lessons that belong to the course structure.
// Stale keys from a restructured course are ignored.
func (p *Progress) CompletedInStructure(s catalog.Structure) int {
	n := 0
	for _, key := range s.LessonKeys() {
		if p.HasCompleted(key) {
			n++
		}
	}
	return n
}

// Percent is floored to an integer and 0 for courses without lessons.
func (p *Progress) Percent(s catalog.Structure) int {
	total := s.TotalLessons()
	if total == 0 {
		return 0
	}
	return p.CompletedInStructure(s) * 100 / total
}

// CompletionReached reports whether this state triggers certification under the policy.
// A passed final exam always counts; the all-lessons path only under CompletionAllLessons.
func (p *Progress) CompletionReached(policy catalog.CompletionPolicy, s catalog.Structure) bool {
	if p.PassedFinalExam() {
		return true
	}
	if policy != catalog.CompletionAllLessons {
		return false
	}
	total := s.TotalLessons()
	return total > 0 && p.CompletedInStructure(s) >= total
}
