package types

import (
	"time"

	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/domain"
)

// MovieMetadata captures infrastructure timestamps associated with a persisted movie.
type MovieMetadata struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MovieProjection transports a domain aggregate together with its persistence metadata.
type MovieProjection struct {
	Movie    *domain.Movie
	Metadata MovieMetadata
}

// NewMovieProjection wraps an aggregate with persistence metadata.
func NewMovieProjection(movie *domain.Movie, createdAt, updatedAt time.Time) *MovieProjection {
	if movie == nil {
		return nil
	}
	return &MovieProjection{
		Movie: movie,
		Metadata: MovieMetadata{
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		},
	}
}
