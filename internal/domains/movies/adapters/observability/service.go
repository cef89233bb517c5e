package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/movieshelf/movie-shelf-api/internal/auth"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/application"
	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
)

const tracerName = "github.com/movieshelf/movie-shelf-api/internal/domains/movies/adapters/observability/service"

// Service decorates a movies application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// AddMovie runs the creation flow with instrumentation.
func (s *Service) AddMovie(ctx context.Context, input movietypes.CreateMovieInput) (*movietypes.MovieProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.AddMovie",
		attribute.Int64("movie.owner_id", input.OwnerID),
		attribute.String("movie.owner_role", string(input.Role)),
		attribute.String("movie.title", input.Title),
	)
	defer span.End()

	s.logInfo(ctx, "adding movie", slog.Int64("ownerId", input.OwnerID), slog.String("title", input.Title))
	result, err := s.inner.AddMovie(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrQuotaExceeded):
			s.metrics.recordQuotaRejected(ctx)
		case errors.Is(err, ports.ErrMovieNotFound):
			s.metrics.recordMetadataMissing(ctx)
		}
		return nil, s.handleError(ctx, span, err, "failed to add movie", slog.Int64("ownerId", input.OwnerID))
	}
	if result != nil && result.Movie != nil {
		s.metrics.recordCreated(ctx, input.Role)
		s.logInfo(ctx, "movie added", slog.String("movieId", result.Movie.ID), slog.Int64("ownerId", result.Movie.OwnerID))
	}
	return result, nil
}

// ListByOwner returns the owner's movies with instrumentation.
func (s *Service) ListByOwner(ctx context.Context, input movietypes.OwnerIdentifier) ([]*movietypes.MovieProjection, error) {
	ctx, span := s.startSpan(ctx, "Service.ListByOwner", attribute.Int64("movie.owner_id", input.OwnerID))
	defer span.End()

	result, err := s.inner.ListByOwner(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list movies", slog.Int64("ownerId", input.OwnerID))
	}
	span.SetAttributes(attribute.Int("movie.result.count", len(result)))
	s.logInfo(ctx, "listed movies", slog.Int64("ownerId", input.OwnerID), slog.Int("count", len(result)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	moviesCreated   metric.Int64Counter
	quotaRejected   metric.Int64Counter
	metadataMissing metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	moviesCreated, _ := m.Int64Counter("movies.service.created", metric.WithDescription("Number of movies created"))
	quotaRejected, _ := m.Int64Counter("movies.service.quota_rejected", metric.WithDescription("Number of creations rejected by the monthly quota"))
	metadataMissing, _ := m.Int64Counter("movies.service.metadata_missing", metric.WithDescription("Number of creations aborted because the catalog had no entry"))
	return serviceMetrics{
		moviesCreated:   moviesCreated,
		quotaRejected:   quotaRejected,
		metadataMissing: metadataMissing,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, role auth.Role) {
	addCounter(ctx, m.moviesCreated, 1, attribute.String("owner.role", string(role)))
}

func (m serviceMetrics) recordQuotaRejected(ctx context.Context) {
	addCounter(ctx, m.quotaRejected, 1)
}

func (m serviceMetrics) recordMetadataMissing(ctx context.Context) {
	addCounter(ctx, m.metadataMissing, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
