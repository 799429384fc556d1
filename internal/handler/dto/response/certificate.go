package response

import (
	"time"

	"course-marketplace/internal/domain/certificate"

	"github.com/google/uuid"
)

type CertificateResponse struct {
	Code        string    `json:"code"`
	CourseID    uuid.UUID `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	IssuedAt    time.Time `json:"issued_at"`
}

func FromCertificate(c *certificate.Certificate, courseTitle string) (*CertificateResponse, error) {
	res := &CertificateResponse{}
	if err := copyInto(res, c); err != nil {
		return nil, err
	}
	res.CourseTitle = courseTitle
	return res, nil
}
