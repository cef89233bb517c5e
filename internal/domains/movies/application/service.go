package application

import (
	"context"

	"github.com/movieshelf/movie-shelf-api/internal/auth"
	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
)

// monthlyQuota is the creation cap for basic accounts within one calendar month.
// Fixed policy, not configurable.
const monthlyQuota = 5

// Service orchestrates the movies bounded context use cases.
type Service struct {
	repo   ports.Repository
	source ports.MetadataSource
}

// NewService wires the movies service with its dependencies.
func NewService(repo ports.Repository, source ports.MetadataSource) *Service {
	return &Service{repo: repo, source: source}
}

// AddMovie runs the creation flow: fetch catalog metadata, enforce the monthly
// quota for non-premium roles, persist with ownership attached. Any failure
// aborts without partial persistence. The count-then-create sequence is not
// transactional; two concurrent creations by the same basic owner can both
// pass the count check.
func (s *Service) AddMovie(ctx context.Context, input movietypes.CreateMovieInput) (*movietypes.MovieProjection, error) {
	movie, err := s.source.FetchByTitle(ctx, input.Title)
	if err != nil {
		return nil, err
	}

	if input.Role != auth.RolePremium {
		count, err := s.repo.CountByOwnerInMonth(ctx, input.OwnerID)
		if err != nil {
			return nil, err
		}
		if count >= monthlyQuota {
			return nil, ErrQuotaExceeded
		}
	}

	return s.repo.Create(ctx, input.OwnerID, movie)
}

// ListByOwner returns the owner's movies.
func (s *Service) ListByOwner(ctx context.Context, input movietypes.OwnerIdentifier) ([]*movietypes.MovieProjection, error) {
	return s.repo.ListByOwner(ctx, input.OwnerID)
}

var _ ports.Service = (*Service)(nil)
