package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidCompletionPolicy = errors.New("completion policy must be final_exam or all_lessons")

type CompletionPolicy string

const (
	CompletionFinalExam  CompletionPolicy = "final_exam"
	CompletionAllLessons CompletionPolicy = "all_lessons"
)

func NewCompletionPolicy(s string) (CompletionPolicy, error) {
	switch p := CompletionPolicy(strings.TrimSpace(s)); p {
	case CompletionFinalExam, CompletionAllLessons:
		return p, nil
	case "":
		return CompletionFinalExam, nil
	default:
		return "", ErrInvalidCompletionPolicy
	}
}

type Module struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Structure is either a list of modules or a flat lesson list; modules win when present.
type Structure struct {
	Modules []Module `json:"modules,omitempty"`
	Lessons []string `json:"lessons,omitempty"`
}

func (s Structure) LessonKeys() []string {
	var keys []string
	if len(s.Modules) > 0 {
		for _, m := range s.Modules {
			keys = append(keys, m.Items...)
		}
		return keys
	}
	return append(keys, s.Lessons...)
}

func (s Structure) TotalLessons() int {
	return len(s.LessonKeys())
}

type Course struct {
	id        uuid.UUID
	title     string
	price     decimal.Decimal
	authorID  uuid.UUID
	policy    CompletionPolicy
	structure Structure
}

func ReconstructCourse(id uuid.UUID, title string, price decimal.Decimal, authorID uuid.UUID, policy CompletionPolicy, structure Structure) *Course {
	return &Course{
		id:        id,
		title:     title,
		price:     price,
		authorID:  authorID,
		policy:    policy,
		structure: structure,
	}
}

func (c *Course) ID() uuid.UUID                      { return c.id }
func (c *Course) Title() string                      { return c.title }
func (c *Course) Price() decimal.Decimal             { return c.price }
func (c *Course) AuthorID() uuid.UUID                { return c.authorID }
func (c *Course) CompletionPolicy() CompletionPolicy { return c.policy }
func (c *Course) Structure() Structure               { return c.structure }
func (c *Course) TotalLessons() int                  { return c.structure.TotalLessons() }

func (c *Course) Offer() Offer {
	seller := c.authorID
	return Offer{
		Subject:   CourseSubject(c.id),
		Title:     c.title,
		Price:     c.price,
		SellerID:  &seller,
		CourseIDs: []uuid.UUID{c.id},
	}
}
