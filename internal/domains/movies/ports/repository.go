package ports

import (
	"context"

	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
)

// Repository persists and queries movie records by owner.
type Repository interface {
	// Create persists a new record for the owner with the current timestamp.
	Create(ctx context.Context, ownerID int64, movie CatalogMovie) (*movietypes.MovieProjection, error)
	// ListByOwner returns all records owned by the given user in insertion order.
	ListByOwner(ctx context.Context, ownerID int64) ([]*movietypes.MovieProjection, error)
	// CountByOwnerInMonth counts the owner's records whose creation time falls
	// within the current calendar month at evaluation time. The window is
	// computed fresh on each call from the adapter's clock, not passed in.
	CountByOwnerInMonth(ctx context.Context, ownerID int64) (int64, error)
}
