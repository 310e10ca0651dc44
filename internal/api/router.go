package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/evgeniy-krivenko/notes-api/internal/api/notes"
	"github.com/evgeniy-krivenko/notes-api/internal/api/response"
	"github.com/evgeniy-krivenko/notes-api/internal/api/system"
	"github.com/evgeniy-krivenko/notes-api/internal/api/users"
	"github.com/evgeniy-krivenko/notes-api/internal/repository"
	notesuc "github.com/evgeniy-krivenko/notes-api/internal/usecase/notes"
	usersuc "github.com/evgeniy-krivenko/notes-api/internal/usecase/users"
	"github.com/evgeniy-krivenko/notes-api/pkg/database"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=router_options.gen.go -from-struct=RouterOptions -all-variadic true
type RouterOptions struct {
	db database.Querier `option:"mandatory" validate:"required"`

	allowedOrigins []string
}

// NewRouter wires every endpoint over the shared database handle. It fails
// when no handle is given.
func NewRouter(opts RouterOptions) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate router options: %v", err)
	}

	if len(opts.allowedOrigins) == 0 {
		opts.allowedOrigins = DefaultAllowedOrigins
	}

	repo := repository.New(opts.db)

	notesUsecase, err := notesuc.New(notesuc.NewOptions(repo))
	if err != nil {
		return nil, fmt.Errorf("init notes usecase: %v", err)
	}

	usersUsecase, err := usersuc.New(usersuc.NewOptions(repo))
	if err != nil {
		return nil, fmt.Errorf("init users usecase: %v", err)
	}

	notesHandler := notes.New(notesUsecase)
	usersHandler := users.New(usersUsecase)

	r := chi.NewRouter()
	r.Use(newCORS(opts.allowedOrigins).Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(slogx.LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Render(w, r, http.StatusNotFound, response.Fail("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Render(w, r, http.StatusMethodNotAllowed, response.Fail("method not allowed"))
	})

	r.Get("/", system.Home)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", system.Health)
		r.Get("/dev/debug/logs", system.DebugLogs)

		r.Get("/notes", notesHandler.List)
		r.Post("/notes", notesHandler.Create)

		r.Get("/users", usersHandler.List)
		r.Post("/users", usersHandler.Create)
	})

	return r, nil
}
