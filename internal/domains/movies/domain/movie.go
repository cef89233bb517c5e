package domain

import (
	"errors"
	"strings"
	"time"
)

// Movie represents the aggregate managed by the movies bounded context.
// A movie belongs to exactly one owner and is immutable after creation.
type Movie struct {
	ID       string
	OwnerID  int64
	Title    string
	Released string
	Genre    string
	Director string
}

var (
	ErrEmptyTitle = errors.New("movie title is required")
	ErrNoOwner    = errors.New("movie owner is required")
)

// NewMovie validates the invariants and builds a new Movie aggregate.
// The identifier is assigned by the repository on creation.
func NewMovie(ownerID int64, title, released, genre, director string) (*Movie, error) {
	if ownerID == 0 {
		return nil, ErrNoOwner
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	return &Movie{
		OwnerID:  ownerID,
		Title:    title,
		Released: released,
		Genre:    genre,
		Director: director,
	}, nil
}

// MonthWindow returns the calendar-month window containing the given instant:
// [start of that month, start of the next month). The window is evaluated in
// the location of the instant itself.
func MonthWindow(at time.Time) (start, end time.Time) {
	start = time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	return start, start.AddDate(0, 1, 0)
}
