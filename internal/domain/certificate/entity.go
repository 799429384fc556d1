package certificate

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is immutable once issued. At most one exists per (user, course).
type Certificate struct {
	userID   uuid.UUID
	courseID uuid.UUID
	code     Code
	issuedAt time.Time
}

func Issue(prefix string, userID, courseID uuid.UUID, now time.Time) *Certificate {
	return &Certificate{
		userID:   userID,
		courseID: courseID,
		code:     GenerateCode(prefix, courseID, userID, now),
		issuedAt: now,
	}
}

func Reconstruct(userID, courseID uuid.UUID, code string, issuedAt time.Time) *Certificate {
	return &Certificate{
		userID:   userID,
		courseID: courseID,
		code:     Code(code),
		issuedAt: issuedAt,
	}
}

func (c *Certificate) UserID() uuid.UUID   { return c.userID }
func (c *Certificate) CourseID() uuid.UUID { return c.courseID }
func (c *Certificate) Code() Code          { return c.code }
func (c *Certificate) IssuedAt() time.Time { return c.issuedAt }
