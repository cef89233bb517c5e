package types

import "github.com/movieshelf/movie-shelf-api/internal/auth"

// CreateMovieInput carries everything the creation workflow needs. Identity
// resolution happens upstream; OwnerID and Role arrive already validated.
type CreateMovieInput struct {
	OwnerID int64
	Role    auth.Role
	Title   string
}

// OwnerIdentifier selects the record set of a single owner.
type OwnerIdentifier struct {
	OwnerID int64
}
