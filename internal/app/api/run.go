package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	movieshelfserver "github.com/movieshelf/movie-shelf-api/server"

	"github.com/movieshelf/movie-shelf-api/internal/auth"
	"github.com/movieshelf/movie-shelf-api/internal/clients/http/omdb"
	moviememory "github.com/movieshelf/movie-shelf-api/internal/domains/movies/adapters/memory"
	movieobs "github.com/movieshelf/movie-shelf-api/internal/domains/movies/adapters/observability"
	moviepostgres "github.com/movieshelf/movie-shelf-api/internal/domains/movies/adapters/persistence/postgres"
	movieworkflows "github.com/movieshelf/movie-shelf-api/internal/domains/movies/adapters/workflows"
	movieapp "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application"
	movieports "github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
	platformmigrations "github.com/movieshelf/movie-shelf-api/internal/platform/migrations"
	platformobservability "github.com/movieshelf/movie-shelf-api/internal/platform/observability"
	platformpostgres "github.com/movieshelf/movie-shelf-api/internal/platform/postgres"
)

// ServiceName identifies the API process in telemetry.
const ServiceName = "movie-shelf-api"

// Run boots the movie shelf HTTP API with observability, repositories, and
// workflows wired.
func Run(ctx context.Context) error {
	instruments, shutdown, err := platformobservability.Init(ctx, ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	verifier, err := auth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		return err
	}
	catalog, err := omdb.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey, nil)
	if err != nil {
		return err
	}

	movieRepo, cleanupRepo := BuildMovieRepository(ctx, logger, cfg.PostgresDSN)
	defer cleanupRepo()

	coreService := movieapp.NewService(movieRepo, catalog)
	movieService := movieobs.New(
		coreService,
		movieobs.WithLogger(logger),
		movieobs.WithTracer(instruments.Tracer("internal.movies.application")),
		movieobs.WithMeter(instruments.Meter("internal.movies.application")),
	)

	var orchestrator movieports.WorkflowOrchestrator = movieworkflows.NewInlineMovieWorkflows(movieService)
	if temporalClient, err := ConnectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline AddMovie", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orchestrator = movieworkflows.NewTemporalMovieWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := movieshelfserver.ApiHandleFunctions{
		MoviesAPI: movieshelfserver.NewMoviesAPI(movieService, orchestrator),
	}
	router := movieshelfserver.NewRouter(handlers, auth.Middleware(verifier), otelgin.Middleware(ServiceName))

	addr := ":" + cfg.Port
	logger.Info("movie shelf API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("movie shelf API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// BuildMovieRepository picks the Postgres adapter when a DSN is configured and
// reachable, falling back to the in-memory adapter otherwise.
func BuildMovieRepository(ctx context.Context, logger *slog.Logger, dsn string) (movieports.Repository, func()) {
	if strings.TrimSpace(dsn) == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory movie repository")
		return moviememory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return moviememory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return moviememory.NewRepository(), func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return moviememory.NewRepository(), func() {}
	}
	logger.Info("movie repository configured with postgres")
	return moviepostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

// ConnectTemporalClient dials Temporal with tracing and structured logging wired.
func ConnectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.Default()
}
