package movieshelfserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/movieshelf/movie-shelf-api/internal/auth"
	moviememory "github.com/movieshelf/movie-shelf-api/internal/domains/movies/adapters/memory"
	movieapp "github.com/movieshelf/movie-shelf-api/internal/domains/movies/application"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
)

const testSecret = "test-secret"

type stubCatalog struct {
	movies map[string]ports.CatalogMovie
}

func (s *stubCatalog) FetchByTitle(_ context.Context, title string) (ports.CatalogMovie, error) {
	movie, ok := s.movies[title]
	if !ok {
		return ports.CatalogMovie{}, fmt.Errorf("%w: Movie not found!", ports.ErrMovieNotFound)
	}
	return movie, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *moviememory.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := moviememory.NewRepository()
	catalog := &stubCatalog{movies: map[string]ports.CatalogMovie{
		"Blade Runner": {Title: "Blade Runner", Released: "25 Jun 1982", Genre: "Sci-Fi", Director: "Ridley Scott"},
	}}
	service := movieapp.NewService(repo, catalog)

	verifier, err := auth.NewVerifier(testSecret)
	require.NoError(t, err)

	handlers := ApiHandleFunctions{MoviesAPI: NewMoviesAPI(service, nil)}
	return NewRouter(handlers, auth.Middleware(verifier)), repo
}

func bearerToken(t *testing.T, userID int64, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAddMovie_CreatesAndEchoesRecord(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, 7, "basic")

	recorder := doRequest(router, http.MethodPost, "/movies", token, gin.H{"title": "Blade Runner"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Message string `json:"message"`
		Data    struct {
			ID       string `json:"_id"`
			UserID   int64  `json:"userId"`
			Title    string `json:"title"`
			Released string `json:"released"`
			Genre    string `json:"genre"`
			Director string `json:"director"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, "movie has been created successfully", response.Message)
	require.NotEmpty(t, response.Data.ID)
	require.Equal(t, int64(7), response.Data.UserID)
	require.Equal(t, "Blade Runner", response.Data.Title)
	require.Equal(t, "Ridley Scott", response.Data.Director)
}

func TestAddMovie_UnknownTitle(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, 7, "basic")

	recorder := doRequest(router, http.MethodPost, "/movies", token, gin.H{"title": "No Such Film"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"statusCode":400`)
	require.Contains(t, recorder.Body.String(), "Movie not found!")
}

func TestAddMovie_MissingTitle(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, 7, "basic")

	recorder := doRequest(router, http.MethodPost, "/movies", token, gin.H{})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddMovie_TitleTooLong(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, 7, "basic")

	recorder := doRequest(router, http.MethodPost, "/movies", token, gin.H{"title": strings.Repeat("a", 256)})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddMovie_BasicQuota(t *testing.T) {
	router, repo := newTestRouter(t)
	token := bearerToken(t, 7, "basic")

	for i := 0; i < 5; i++ {
		recorder := doRequest(router, http.MethodPost, "/movies", token, gin.H{"title": "Blade Runner"})
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder := doRequest(router, http.MethodPost, "/movies", token, gin.H{"title": "Blade Runner"})
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	require.Contains(t, recorder.Body.String(), "limit of added movies on the basic account has been exceeded")

	count, err := repo.CountByOwnerInMonth(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(5), count)
}

func TestAddMovie_PremiumHasNoQuota(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerToken(t, 7, "premium")

	for i := 0; i < 6; i++ {
		recorder := doRequest(router, http.MethodPost, "/movies", token, gin.H{"title": "Blade Runner"})
		require.Equal(t, http.StatusOK, recorder.Code)
	}
}

func TestGetMovies_ListsOnlyOwnRecords(t *testing.T) {
	router, _ := newTestRouter(t)
	alice := bearerToken(t, 1, "premium")
	bob := bearerToken(t, 2, "premium")

	recorder := doRequest(router, http.MethodPost, "/movies", alice, gin.H{"title": "Blade Runner"})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, http.MethodGet, "/movies", bob, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `[]`, recorder.Body.String())

	recorder = doRequest(router, http.MethodGet, "/movies", alice, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "Blade Runner", list[0]["title"])
	require.EqualValues(t, 1, list[0]["userId"])
}

func TestMovies_RequireAuthentication(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/movies", "", nil)
	require.Equal(t, http.StatusForbidden, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"statusCode":403`)

	recorder = doRequest(router, http.MethodPost, "/movies", "", gin.H{"title": "Blade Runner"})
	require.Equal(t, http.StatusForbidden, recorder.Code)
}
