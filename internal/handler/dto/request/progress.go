package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var errLessonIDType = errors.New("lesson_id must be a string or a number")

// LessonID accepts both "3" and 3 and keeps the string form.
type LessonID string

func (l *LessonID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = LessonID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errLessonIDType
	}
	if i, err := n.Int64(); err == nil {
		*l = LessonID(strconv.FormatInt(i, 10))
		return nil
	}
	if f, err := n.Float64(); err == nil && f == float64(int64(f)) {
		*l = LessonID(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*l = LessonID(n.String())
	return nil
}

func (l LessonID) String() string { return string(l) }

type RecordLessonRequest struct {
	LessonID LessonID `json:"lesson_id" binding:"required,max=128" swaggertype:"string"`
}

type RecordFinalExamRequest struct {
	Score *int `json:"score" binding:"required,min=0,max=100"`
}

type RecordQuizRequest struct {
	QuizKey string `json:"quiz_key" binding:"required,max=128"`
	Score   *int   `json:"score" binding:"required,min=0,max=100"`
}
