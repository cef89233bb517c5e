package mapper

import (
	"time"

	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
)

// Movie is the HTTP representation of a persisted movie record.
type Movie struct {
	ID        string    `json:"_id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Released  string    `json:"released"`
	Genre     string    `json:"genre"`
	Director  string    `json:"director"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateMoviePayload captures the inbound creation request body.
type CreateMoviePayload struct {
	Title string `json:"title" binding:"required,max=255"`
}

// CreateMovieResponse is the success envelope for the creation endpoint.
type CreateMovieResponse struct {
	Message string `json:"message"`
	Data    Movie  `json:"data"`
}

// FromProjection maps a projection into its transport representation.
func FromProjection(p *movietypes.MovieProjection) Movie {
	if p == nil || p.Movie == nil {
		return Movie{}
	}
	return Movie{
		ID:        p.Movie.ID,
		UserID:    p.Movie.OwnerID,
		Title:     p.Movie.Title,
		Released:  p.Movie.Released,
		Genre:     p.Movie.Genre,
		Director:  p.Movie.Director,
		CreatedAt: p.Metadata.CreatedAt,
		UpdatedAt: p.Metadata.UpdatedAt,
	}
}

// FromProjectionList maps a projection slice, always yielding a JSON array.
func FromProjectionList(sources []*movietypes.MovieProjection) []Movie {
	list := make([]Movie, 0, len(sources))
	for _, src := range sources {
		if src == nil {
			continue
		}
		list = append(list, FromProjection(src))
	}
	return list
}
