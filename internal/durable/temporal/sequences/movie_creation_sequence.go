package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
	movieactivities "github.com/movieshelf/movie-shelf-api/internal/platform/temporal/activities/movies"
)

// RunMovieCreationSequence executes the activity that runs the creation flow.
// Business rejections (quota, catalog miss) are terminal; only transient
// failures are retried.
func RunMovieCreationSequence(ctx workflow.Context, input movietypes.CreateMovieInput) (*movietypes.MovieProjection, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("movie creation sequence started", "ownerId", input.OwnerID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
			NonRetryableErrorTypes: []string{
				movieactivities.QuotaExceededErrorType,
				movieactivities.MovieNotFoundErrorType,
			},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var projection movietypes.MovieProjection
	err := workflow.ExecuteActivity(ctx, movieactivities.CreateMovieActivityName, input).Get(ctx, &projection)
	if err != nil {
		logger.Error("movie creation sequence failed", "ownerId", input.OwnerID, "error", err)
		return nil, err
	}
	if projection.Movie != nil {
		logger.Info("movie creation sequence completed", "movieId", projection.Movie.ID)
	} else {
		logger.Info("movie creation sequence completed")
	}
	return &projection, nil
}
