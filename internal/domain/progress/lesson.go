package progress

import (
	"errors"
	"strings"
)

var (
	ErrEmptyLessonKey  = errors.New("lesson id is required")
	ErrReservedKey     = errors.New("key is reserved for the final exam")
	ErrScoreOutOfRange = errors.New("score must be between 0 and 100")
)

// FinalExamKey marks a passed or attempted final exam in both the lesson set and quiz scores.
const FinalExamKey = "final_exam"

const PassingScore = 70

// LessonKey is a lesson identifier normalized to its string form so numeric and
// string ids from older clients compare equal.
type LessonKey string

func NewLessonKey(raw string) (LessonKey, error) {
	k := strings.TrimSpace(raw)
	if k == "" {
		return "", ErrEmptyLessonKey
	}
	if k == FinalExamKey {
		return "", ErrReservedKey
	}
	return LessonKey(k), nil
}

func (k LessonKey) String() string { return string(k) }

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < 0 || v > 100 {
		return Score{}, ErrScoreOutOfRange
	}
	return Score{value: v}, nil
}

func (s Score) Int() int     { return s.value }
func (s Score) Passed() bool { return s.value >= PassingScore }
