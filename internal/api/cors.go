package api

import (
	"net/http"

	"github.com/rs/cors"
)

// DefaultAllowedOrigins are the front-ends served by this API.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000/api",
	"http://localhost:4200",
}

func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"Authorization", "Accept", "Content-Type"},
		AllowCredentials: true,
	})
}
