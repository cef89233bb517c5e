package ports

import (
	"context"
	"errors"
)

// ErrMovieNotFound signals the external catalog has no entry for the title.
// Wrapping errors carry the upstream message.
var ErrMovieNotFound = errors.New("movie not found")

// CatalogMovie is the canonical attribute set the external catalog provides
// for a title, normalized to the internal field names. It becomes a Movie
// only after ownership is attached.
type CatalogMovie struct {
	Title    string
	Released string
	Genre    string
	Director string
}

// MetadataSource fetches canonical movie metadata from an external catalog
// (outbound/driven port).
type MetadataSource interface {
	FetchByTitle(ctx context.Context, title string) (CatalogMovie, error)
}
