// Package movieshelfserver exposes the HTTP surface of the movie shelf API.
package movieshelfserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the server's routes.
type Routes []Route

// ApiHandleFunctions groups the API handlers mounted on the router.
type ApiHandleFunctions struct {
	MoviesAPI MoviesAPI
}

// NewRouter returns a gin engine with all routes mounted behind the given
// authentication middleware.
func NewRouter(handlers ApiHandleFunctions, authMiddleware gin.HandlerFunc, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	for _, mw := range middleware {
		if mw != nil {
			router.Use(mw)
		}
	}
	authenticated := router.Group("/", authMiddleware)
	for _, route := range getRoutes(handlers) {
		switch route.Method {
		case http.MethodGet:
			authenticated.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			authenticated.POST(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func getRoutes(handlers ApiHandleFunctions) Routes {
	return Routes{
		{
			Name:        "GetMovies",
			Method:      http.MethodGet,
			Pattern:     "/movies",
			HandlerFunc: handlers.MoviesAPI.GetMovies,
		},
		{
			Name:        "AddMovie",
			Method:      http.MethodPost,
			Pattern:     "/movies",
			HandlerFunc: handlers.MoviesAPI.AddMovie,
		},
	}
}
