//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "movie-catalog"
	ConsumerName = "movie-shelf-api"

	StateMovieExists  = "movie Blade Runner exists in the catalog"
	StateMovieMissing = "no movie matches the title"
)

const (
	ExistingTitle = "Blade Runner"
	MissingTitle  = "No Such Film"
	CatalogAPIKey = "pact-api-key"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the catalog consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleCatalogPayload provides stable test data for catalog interactions.
func ExampleCatalogPayload() map[string]any {
	return map[string]any{
		"Response": "True",
		"Title":    ExistingTitle,
		"Released": "25 Jun 1982",
		"Genre":    "Action, Drama, Sci-Fi",
		"Director": "Ridley Scott",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
