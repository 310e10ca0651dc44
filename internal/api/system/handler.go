// Package system holds the endpoints that do not touch the store.
package system

import (
	"net/http"

	"github.com/evgeniy-krivenko/notes-api/internal/api/response"
)

const (
	healthMessage = "Simple CRUD API with Go, pgx, Postgres and chi"
	homeMessage   = "Default home"
)

func Home(w http.ResponseWriter, r *http.Request) {
	response.Render(w, r, http.StatusOK, response.Message(homeMessage))
}

func Health(w http.ResponseWriter, r *http.Request) {
	response.Render(w, r, http.StatusOK, response.Message(healthMessage))
}

// DebugLogs is reserved for log inspection and always answers 501.
func DebugLogs(w http.ResponseWriter, r *http.Request) {
	response.Render(w, r, http.StatusNotImplemented, response.Error("not implemented"))
}
