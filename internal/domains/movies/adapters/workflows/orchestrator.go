package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"

	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
	movieworkflows "github.com/movieshelf/movie-shelf-api/internal/durable/temporal/workflows/movies"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalMovieWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineMovieWorkflows)(nil)
)

// TemporalMovieWorkflows starts movie creation workflows on a Temporal cluster.
type TemporalMovieWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalMovieWorkflows wires a Temporal client into the orchestrator.
func NewTemporalMovieWorkflows(c client.Client) *TemporalMovieWorkflows {
	return &TemporalMovieWorkflows{client: c, taskQueue: movieworkflows.MovieCreationTaskQueue}
}

// CreateMovie starts the workflow that runs the creation flow durably and
// waits for its result.
func (o *TemporalMovieWorkflows) CreateMovie(ctx context.Context, input movietypes.CreateMovieInput) (*movietypes.MovieProjection, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal movie workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        buildMovieCreationWorkflowID(input, traceComponent),
		TaskQueue: o.taskQueue,
	}
	workflowInput := movieworkflows.MovieCreationWorkflowInput{
		Command: input,
		TraceID: workflowTraceID(ctx),
	}
	run, err := o.client.ExecuteWorkflow(ctx, options, movieworkflows.MovieCreationWorkflowName, workflowInput)
	if err != nil {
		return nil, err
	}
	var projection movietypes.MovieProjection
	if err := run.Get(ctx, &projection); err != nil {
		return nil, err
	}
	return &projection, nil
}

// InlineMovieWorkflows executes the service directly without Temporal, useful
// for tests or dev fallbacks. It preserves the original non-transactional
// count-then-create behavior.
type InlineMovieWorkflows struct {
	service ports.Service
}

// NewInlineMovieWorkflows wraps the movies service for synchronous execution.
func NewInlineMovieWorkflows(service ports.Service) *InlineMovieWorkflows {
	return &InlineMovieWorkflows{service: service}
}

// CreateMovie delegates to the application service without durable orchestration.
func (o *InlineMovieWorkflows) CreateMovie(ctx context.Context, input movietypes.CreateMovieInput) (*movietypes.MovieProjection, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline movie workflows not configured")
	}
	return o.service.AddMovie(ctx, input)
}

func buildMovieCreationWorkflowID(input movietypes.CreateMovieInput, traceComponent string) string {
	return fmt.Sprintf("movie-creation-%d-%s", input.OwnerID, traceComponent)
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() || !spanCtx.TraceID().IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
