package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Track bundles several courses under one price. A nil author means platform-owned.
type Track struct {
	id        uuid.UUID
	title     string
	price     decimal.Decimal
	authorID  *uuid.UUID
	courseIDs []uuid.UUID
}

func ReconstructTrack(id uuid.UUID, title string, price decimal.Decimal, authorID *uuid.UUID, courseIDs []uuid.UUID) *Track {
	return &Track{
		id:        id,
		title:     title,
		price:     price,
		authorID:  authorID,
		courseIDs: courseIDs,
	}
}

func (t *Track) ID() uuid.UUID          { return t.id }
func (t *Track) Title() string          { return t.title }
func (t *Track) Price() decimal.Decimal { return t.price }
func (t *Track) AuthorID() *uuid.UUID   { return t.authorID }

func (t *Track) CourseIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(t.courseIDs))
	copy(out, t.courseIDs)
	return out
}

func (t *Track) Offer() Offer {
	return Offer{
		Subject:   TrackSubject(t.id),
		Title:     t.title,
		Price:     t.price,
		SellerID:  t.authorID,
		CourseIDs: t.CourseIDs(),
	}
}

// Offer is the purchasable view of a subject: its price, who sells it and what it unlocks.
type Offer struct {
	Subject   Subject
	Title     string
	Price     decimal.Decimal
	SellerID  *uuid.UUID
	CourseIDs []uuid.UUID
}
