package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/domain"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory movie persistence adapter used for demos/tests
// and as the fallback when no database is configured.
type Repository struct {
	mu     sync.RWMutex
	movies []storedMovie
	now    func() time.Time
}

type storedMovie struct {
	movie    domain.Movie
	metadata movietypes.MovieMetadata
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Create persists a new record with the given owner and current timestamp.
func (r *Repository) Create(_ context.Context, ownerID int64, movie ports.CatalogMovie) (*movietypes.MovieProjection, error) {
	aggregate, err := domain.NewMovie(ownerID, movie.Title, movie.Released, movie.Genre, movie.Director)
	if err != nil {
		return nil, err
	}
	aggregate.ID = uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now()
	entry := storedMovie{
		movie:    *aggregate,
		metadata: movietypes.MovieMetadata{CreatedAt: timestamp, UpdatedAt: timestamp},
	}
	r.movies = append(r.movies, entry)
	return projectionCopy(entry), nil
}

// ListByOwner returns the owner's records in insertion order.
func (r *Repository) ListByOwner(_ context.Context, ownerID int64) ([]*movietypes.MovieProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*movietypes.MovieProjection, 0)
	for _, entry := range r.movies {
		if entry.movie.OwnerID == ownerID {
			list = append(list, projectionCopy(entry))
		}
	}
	return list, nil
}

// CountByOwnerInMonth counts the owner's records created within the calendar
// month containing the clock's current instant.
func (r *Repository) CountByOwnerInMonth(_ context.Context, ownerID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := domain.MonthWindow(r.now())
	var count int64
	for _, entry := range r.movies {
		createdAt := entry.metadata.CreatedAt
		if entry.movie.OwnerID == ownerID && !createdAt.Before(start) && createdAt.Before(end) {
			count++
		}
	}
	return count, nil
}

func projectionCopy(entry storedMovie) *movietypes.MovieProjection {
	clone := entry.movie
	return &movietypes.MovieProjection{Movie: &clone, Metadata: entry.metadata}
}
