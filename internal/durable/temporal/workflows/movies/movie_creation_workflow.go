package movies

import (
	"go.temporal.io/sdk/workflow"

	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
	"github.com/movieshelf/movie-shelf-api/internal/durable/temporal/sequences"
)

const (
	// MovieCreationWorkflowName is the public identifier for registering the workflow.
	MovieCreationWorkflowName = "movies.workflows.Creation"
	// MovieCreationTaskQueue is the queue consumed by the worker processing movie workflows.
	MovieCreationTaskQueue = "MOVIE_CREATION"
)

// MovieCreationWorkflowInput captures the payload required to create a movie.
type MovieCreationWorkflowInput struct {
	Command movietypes.CreateMovieInput
	TraceID string
}

// MovieCreationWorkflow orchestrates the activities needed to run the
// fetch/quota/persist flow durably.
func MovieCreationWorkflow(ctx workflow.Context, input MovieCreationWorkflowInput) (*movietypes.MovieProjection, error) {
	logger := workflow.GetLogger(ctx)
	ownerID := input.Command.OwnerID
	logger.Info("MovieCreationWorkflow started", withTraceID(input.TraceID, "ownerId", ownerID, "title", input.Command.Title)...)
	projection, err := sequences.RunMovieCreationSequence(ctx, input.Command)
	if err != nil {
		logger.Error("MovieCreationWorkflow failed", withTraceID(input.TraceID, "ownerId", ownerID, "error", err)...)
		return nil, err
	}
	if projection != nil && projection.Movie != nil {
		logger.Info("MovieCreationWorkflow completed", withTraceID(input.TraceID, "movieId", projection.Movie.ID)...)
	} else {
		logger.Info("MovieCreationWorkflow completed", withTraceID(input.TraceID)...)
	}
	return projection, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
