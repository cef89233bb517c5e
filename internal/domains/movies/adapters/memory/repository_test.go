package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
)

func catalogEntry(title string) ports.CatalogMovie {
	return ports.CatalogMovie{Title: title, Released: "25 Jun 1982", Genre: "Sci-Fi", Director: "Ridley Scott"}
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	repo := NewRepository()
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo.WithClock(func() time.Time { return now })

	proj, err := repo.Create(context.Background(), 1, catalogEntry("Blade Runner"))
	require.NoError(t, err)
	require.NotEmpty(t, proj.Movie.ID)
	require.Equal(t, now, proj.Metadata.CreatedAt)
	require.Equal(t, now, proj.Metadata.UpdatedAt)
}

func TestCreate_RejectsMissingOwner(t *testing.T) {
	repo := NewRepository()
	_, err := repo.Create(context.Background(), 0, catalogEntry("Blade Runner"))
	require.Error(t, err)
}

func TestListByOwner_InsertionOrderAndIsolation(t *testing.T) {
	repo := NewRepository()

	first, err := repo.Create(context.Background(), 1, catalogEntry("Alien"))
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), 1, catalogEntry("Blade Runner"))
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), 2, catalogEntry("Dune"))
	require.NoError(t, err)

	list, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.Movie.ID, list[0].Movie.ID)
	require.Equal(t, second.Movie.ID, list[1].Movie.ID)
}

func TestListByOwner_EmptyIsNotNil(t *testing.T) {
	repo := NewRepository()
	list, err := repo.ListByOwner(context.Background(), 99)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestCountByOwnerInMonth_WindowEdges(t *testing.T) {
	repo := NewRepository()
	clock := time.Date(2024, time.February, 29, 23, 0, 0, 0, time.UTC)
	repo.WithClock(func() time.Time { return clock })

	// Created on the last instant of January: outside the February window.
	clock = time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC)
	_, err := repo.Create(context.Background(), 1, catalogEntry("Alien"))
	require.NoError(t, err)

	// Created exactly at the start of February: inside the window.
	clock = time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	_, err = repo.Create(context.Background(), 1, catalogEntry("Blade Runner"))
	require.NoError(t, err)

	// Created at the start of March: outside again.
	clock = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, err = repo.Create(context.Background(), 1, catalogEntry("Dune"))
	require.NoError(t, err)

	clock = time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)
	count, err := repo.CountByOwnerInMonth(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestCountByOwnerInMonth_IgnoresOtherOwners(t *testing.T) {
	repo := NewRepository()
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo.WithClock(func() time.Time { return now })

	_, err := repo.Create(context.Background(), 1, catalogEntry("Alien"))
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), 2, catalogEntry("Blade Runner"))
	require.NoError(t, err)

	count, err := repo.CountByOwnerInMonth(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestProjectionsAreCopies(t *testing.T) {
	repo := NewRepository()
	proj, err := repo.Create(context.Background(), 1, catalogEntry("Alien"))
	require.NoError(t, err)

	proj.Movie.Title = "mutated"

	list, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Alien", list[0].Movie.Title)
}
