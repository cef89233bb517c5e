//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"

	"github.com/movieshelf/movie-shelf-api/internal/clients/http/omdb"
	"github.com/movieshelf/movie-shelf-api/internal/domains/movies/ports"
	pacttest "github.com/movieshelf/movie-shelf-api/test/pact"
)

func TestCatalogContract(t *testing.T) {
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateMovieExists).
		UponReceiving("a lookup for an existing title").
		WithRequest("GET", "/", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("apikey", matchers.S(pacttest.CatalogAPIKey))
			b.Query("t", matchers.S(pacttest.ExistingTitle))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"Response": matchers.S("True"),
				"Title":    matchers.Like(pacttest.ExistingTitle),
				"Released": matchers.Like("25 Jun 1982"),
				"Genre":    matchers.Like("Action, Drama, Sci-Fi"),
				"Director": matchers.Like("Ridley Scott"),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateMovieMissing).
		UponReceiving("a lookup for an unknown title").
		WithRequest("GET", "/", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("apikey", matchers.S(pacttest.CatalogAPIKey))
			b.Query("t", matchers.S(pacttest.MissingTitle))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"Response": matchers.S("False"),
				"Error":    matchers.S("Movie not found!"),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		host := config.Host
		if host == "" {
			host = "localhost"
		}
		baseURL := fmt.Sprintf("http://%s:%d", host, config.Port)
		httpClient := &http.Client{
			Transport: &http.Transport{TLSClientConfig: config.TLSConfig},
			Timeout:   10 * time.Second,
		}
		client, err := omdb.NewClient(baseURL, pacttest.CatalogAPIKey, httpClient)
		if err != nil {
			return fmt.Errorf("build catalog client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		movie, err := client.FetchByTitle(ctx, pacttest.ExistingTitle)
		if err != nil {
			return fmt.Errorf("fetch existing title: %w", err)
		}
		if movie.Title != pacttest.ExistingTitle {
			return fmt.Errorf("expected title %q, got %q", pacttest.ExistingTitle, movie.Title)
		}
		if movie.Director == "" {
			return fmt.Errorf("expected director to be set")
		}

		if _, err := client.FetchByTitle(ctx, pacttest.MissingTitle); !errors.Is(err, ports.ErrMovieNotFound) {
			return fmt.Errorf("expected catalog miss, got %v", err)
		}

		return nil
	})
	require.NoError(t, err)
}
