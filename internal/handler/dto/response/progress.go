package response

import (
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/internal/usecase/queries"
)

type ProgressRecordResponse struct {
	Progress *queries.ProgressView `json:"progress"`
	// set only when this call issued the certificate
	CertificateIssued *CertificateResponse `json:"certificate_issued,omitempty"`
}

func FromProgressResult(r *commands.ProgressResult) (*ProgressRecordResponse, error) {
	res := &ProgressRecordResponse{
		Progress: queries.NewProgressView(r.Course, r.Progress, r.Certificate),
	}
	if r.CertificateCreated {
		cert, err := FromCertificate(r.Certificate, r.Course.Title())
		if err != nil {
			return nil, err
		}
		res.CertificateIssued = cert
	}
	return res, nil
}
