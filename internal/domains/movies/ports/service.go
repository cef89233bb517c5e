package ports

import (
	"context"

	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
)

// Service defines the movies use cases exposed to adapters (inbound/driving port).
type Service interface {
	AddMovie(ctx context.Context, input movietypes.CreateMovieInput) (*movietypes.MovieProjection, error)
	ListByOwner(ctx context.Context, input movietypes.OwnerIdentifier) ([]*movietypes.MovieProjection, error)
}
