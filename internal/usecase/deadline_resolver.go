package usecase

import (
	"time"

	"trade_credit/internal/domain/entities"
)

// DefaultNetTermDays is the payment window granted when the requester leaves no note.
const DefaultNetTermDays = 30

// EndOfDay returns the last second of t's calendar day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 23, 59, 59, 0, loc)
}

// DefaultDeadline is the end of the creation day plus the net term.
func DefaultDeadline(createdAt time.Time, netTermDays int, loc *time.Location) time.Time {
	return EndOfDay(createdAt.In(locationOrUTC(loc)).AddDate(0, 0, netTermDays), loc)
}

// ResolveDeadline picks the payment deadline for an accepted request.
//
// A request without a note gets its default deadline and customDeadline is ignored;
// a request stored without one gets creation day plus netTermDays. A request with a note carries negotiated terms, so the vendor must supply
// the deadline; it is normalized to end-of-day in loc.
func ResolveDeadline(r entities.ObligationRequest, customDeadline *time.Time, netTermDays int, loc *time.Location) (time.Time, error) {
	if !r.HasNote() {
		if r.DefaultDeadline.IsZero() {
			return DefaultDeadline(r.CreatedAt, netTermDays, loc), nil
		}
		return r.DefaultDeadline, nil
	}
	if customDeadline == nil || customDeadline.IsZero() {
		return time.Time{}, ErrDeadlineRequired
	}
	return EndOfDay(*customDeadline, loc), nil
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
