package movieshelfserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movieshelf/movie-shelf-api/internal/auth"
	moviemapper "github.com/movieshelf/movie-shelf-api/internal/domains/movies/adapters/http/mapper"
	movietypes "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application/types"
	movieports "github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
)

const movieCreatedMessage = "movie has been created successfully"

// MoviesAPI wires HTTP transport with the movies bounded context service and workflows.
type MoviesAPI struct {
	service   movieports.Service
	workflows movieports.WorkflowOrchestrator
}

// NewMoviesAPI creates a MoviesAPI backed by the provided service.
func NewMoviesAPI(service movieports.Service, workflows movieports.WorkflowOrchestrator) MoviesAPI {
	return MoviesAPI{service: service, workflows: workflows}
}

// Get /movies
// Lists the authenticated identity's movies.
func (api *MoviesAPI) GetMovies(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		respondError(c, http.StatusForbidden, auth.ErrInvalidCredential)
		return
	}
	result, err := api.service.ListByOwner(c.Request.Context(), movietypes.OwnerIdentifier{OwnerID: identity.UserID})
	if err != nil {
		respondMovieServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, moviemapper.FromProjectionList(result))
}

// Post /movies
// Creates a movie for the authenticated identity from a catalog title.
func (api *MoviesAPI) AddMovie(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		respondError(c, http.StatusForbidden, auth.ErrInvalidCredential)
		return
	}
	var payload moviemapper.CreateMoviePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := movietypes.CreateMovieInput{
		OwnerID: identity.UserID,
		Role:    identity.Role,
		Title:   payload.Title,
	}
	saved, err := api.createMovie(c.Request.Context(), input)
	if err != nil {
		respondMovieServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, moviemapper.CreateMovieResponse{
		Message: movieCreatedMessage,
		Data:    moviemapper.FromProjection(saved),
	})
}

func (api *MoviesAPI) createMovie(ctx context.Context, input movietypes.CreateMovieInput) (*movietypes.MovieProjection, error) {
	if api.workflows != nil {
		return api.workflows.CreateMovie(ctx, input)
	}
	return api.service.AddMovie(ctx, input)
}
