package converter

import (
	"encoding/json"

	"course-marketplace/internal/domain/catalog"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"
)

func CourseFromRow(row sqlc.GetCourseByIDRow) (*catalog.Course, error) {
	policy, err := catalog.NewCompletionPolicy(row.CompletionPolicy)
	if err != nil {
		return nil, err
	}
	var structure catalog.Structure
	if len(row.Structure) > 0 {
		if err := json.Unmarshal(row.Structure, &structure); err != nil {
			return nil, err
		}
	}
	return catalog.ReconstructCourse(row.ID, row.Title, row.Price, row.AuthorID, policy, structure), nil
}

func TrackFromRow(row sqlc.GetTrackByIDRow) *catalog.Track {
	return catalog.ReconstructTrack(row.ID, row.Title, row.Price, pgconv.UUIDPtrFromPgtype(row.AuthorID), row.CourseIds)
}
