package movies

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/application"
	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
	movieports "github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
)

const (
	// CreateMovieActivityName runs the fetch/quota/persist flow once.
	CreateMovieActivityName = "movies.activities.CreateMovie"

	// QuotaExceededErrorType marks quota rejections as non-retryable.
	QuotaExceededErrorType = "QuotaExceeded"
	// MovieNotFoundErrorType marks catalog misses as non-retryable.
	MovieNotFoundErrorType = "MovieNotFound"
)

// Activities groups activities that operate on the movies bounded context.
type Activities struct {
	service movieports.Service
}

// NewActivities wires the movies service into the Temporal activities bundle.
func NewActivities(service movieports.Service) *Activities {
	return &Activities{service: service}
}

// CreateMovie runs the creation flow and returns the persisted projection.
// Business rejections are converted to typed non-retryable errors so the
// workflow surfaces them immediately instead of retrying.
func (a *Activities) CreateMovie(ctx context.Context, input movietypes.CreateMovieInput) (*movietypes.MovieProjection, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("movie creation activity not initialized", "ownerId", input.OwnerID)
		return nil, errors.New("movie creation activity not initialized")
	}
	logger.Info("CreateMovie activity started", "ownerId", input.OwnerID, "title", input.Title)
	projection, err := a.service.AddMovie(ctx, input)
	if err != nil {
		logger.Error("CreateMovie activity failed", "ownerId", input.OwnerID, "error", err)
		switch {
		case errors.Is(err, application.ErrQuotaExceeded):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), QuotaExceededErrorType, err)
		case errors.Is(err, movieports.ErrMovieNotFound):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), MovieNotFoundErrorType, err)
		}
		return nil, err
	}
	if projection != nil && projection.Movie != nil {
		logger.Info("CreateMovie activity completed", "movieId", projection.Movie.ID)
	}
	return projection, nil
}
