package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidSubjectKind = errors.New("subject kind must be course or track")
	ErrInvalidSubjectID   = errors.New("subject id is required")
)

type SubjectKind string

const (
	SubjectCourse SubjectKind = "course"
	SubjectTrack  SubjectKind = "track"
)

// Subject is what a transaction purchases: exactly one course or one track.
type Subject struct {
	kind SubjectKind
	id   uuid.UUID
}

func NewSubject(kind string, id uuid.UUID) (Subject, error) {
	k := SubjectKind(strings.ToLower(strings.TrimSpace(kind)))
	if k != SubjectCourse && k != SubjectTrack {
		return Subject{}, ErrInvalidSubjectKind
	}
	if id == uuid.Nil {
		return Subject{}, ErrInvalidSubjectID
	}
	return Subject{kind: k, id: id}, nil
}

func CourseSubject(id uuid.UUID) Subject { return Subject{kind: SubjectCourse, id: id} }
func TrackSubject(id uuid.UUID) Subject  { return Subject{kind: SubjectTrack, id: id} }

func (s Subject) Kind() SubjectKind { return s.kind }
func (s Subject) ID() uuid.UUID     { return s.id }
func (s Subject) IsCourse() bool    { return s.kind == SubjectCourse }
func (s Subject) IsTrack() bool     { return s.kind == SubjectTrack }

func (s Subject) String() string {
	return string(s.kind) + ":" + s.id.String()
}
