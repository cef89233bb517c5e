package main

import (
	"context"
	"log"

	"github.com/movieshelf/movie-shelf-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("movie shelf API failed: %v", err)
	}
}
