package converter

import (
	"encoding/json"
	"time"

	"course-marketplace/internal/domain/progress"

	"github.com/google/uuid"
)

func ProgressFromColumns(userID, courseID uuid.UUID, completed []string, quizScores []byte, lastAccessed time.Time) (*progress.Progress, error) {
	scores := map[string]progress.QuizResult{}
	if len(quizScores) > 0 {
		if err := json.Unmarshal(quizScores, &scores); err != nil {
			return nil, err
		}
	}
	return progress.Reconstruct(userID, courseID, completed, scores, lastAccessed), nil
}
