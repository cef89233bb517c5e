package ports

import (
	"context"

	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
)

// WorkflowOrchestrator abstracts how the creation flow is executed: directly
// in-process or as a durable workflow on a Temporal cluster.
type WorkflowOrchestrator interface {
	CreateMovie(ctx context.Context, input movietypes.CreateMovieInput) (*movietypes.MovieProjection, error)
}
