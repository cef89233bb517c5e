package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/movieshelf/movie-shelf-api/internal/app/api"
	"github.com/movieshelf/movie-shelf-api/internal/clients/http/omdb"
	movieobs "github.com/movieshelf/movie-shelf-api/internal/domains/movies/adapters/observability"
	movieapp "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application"
	movieworkflows "github.com/movieshelf/movie-shelf-api/internal/durable/temporal/workflows/movies"
	platformobservability "github.com/movieshelf/movie-shelf-api/internal/platform/observability"
	movieactivities "github.com/movieshelf/movie-shelf-api/internal/platform/temporal/activities/movies"
)

func main() {
	ctx := context.Background()
	const serviceName = "movie-shelf-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := api.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalog, err := omdb.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey, nil)
	if err != nil {
		logger.Error("failed to configure catalog client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	movieRepo, cleanupRepo := api.BuildMovieRepository(ctx, logger, cfg.PostgresDSN)
	defer cleanupRepo()
	movieService := movieobs.New(
		movieapp.NewService(movieRepo, catalog),
		movieobs.WithLogger(logger),
		movieobs.WithTracer(instruments.Tracer("internal.movies.application")),
		movieobs.WithMeter(instruments.Meter("internal.movies.application")),
	)
	activities := movieactivities.NewActivities(movieService)

	temporalClient, err := api.ConnectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, movieworkflows.MovieCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(movieworkflows.MovieCreationWorkflow, workflow.RegisterOptions{Name: movieworkflows.MovieCreationWorkflowName})
	w.RegisterActivityWithOptions(activities.CreateMovie, activity.RegisterOptions{Name: movieactivities.CreateMovieActivityName})

	logger.Info("worker listening", slog.String("taskQueue", movieworkflows.MovieCreationTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
