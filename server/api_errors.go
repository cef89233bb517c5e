package movieshelfserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.temporal.io/sdk/temporal"

	movieapp "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application"
	movieports "github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
	movieactivities "github.com/movieshelf/movie-shelf-api/internal/platform/temporal/activities/movies"
	"github.com/movieshelf/movie-shelf-api/internal/shared/apierrors"
)

func respondError(c *gin.Context, status int, err error) {
	apierrors.Respond(c, status, err)
}

// respondMovieServiceError translates workflow outcomes to transport status:
// catalog miss -> 400, quota rejection -> 422, anything else -> 500.
func respondMovieServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	apierrors.RespondWith(c, err,
		apierrors.MapSentinel(movieports.ErrMovieNotFound, http.StatusBadRequest),
		apierrors.MapSentinel(movieapp.ErrQuotaExceeded, http.StatusUnprocessableEntity),
		mapTemporalApplicationError,
	)
}

// mapTemporalApplicationError recovers the business outcome when the creation
// ran as a durable workflow: sentinel identity does not survive the Temporal
// round-trip, the typed error name does.
func mapTemporalApplicationError(err error) (int, bool) {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return 0, false
	}
	switch appErr.Type() {
	case movieactivities.MovieNotFoundErrorType:
		return http.StatusBadRequest, true
	case movieactivities.QuotaExceededErrorType:
		return http.StatusUnprocessableEntity, true
	}
	return 0, false
}
