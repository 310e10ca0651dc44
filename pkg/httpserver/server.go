package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 3 * time.Second
)

type Logger interface {
	Info(context.Context, string, ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=server_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	addr    string       `option:"mandatory" validate:"required,hostname_port"`
	handler http.Handler `option:"mandatory" validate:"required"`

	readTimeout  time.Duration `default:"10s" validate:"min=1s"`
	writeTimeout time.Duration `default:"15s" validate:"min=1s"`
	idleTimeout  time.Duration `default:"60s" validate:"min=1s"`
	// maxBodyBytes caps every request body; reads past it fail and the
	// JSON decoders answer 400.
	maxBodyBytes int64         `default:"1048576" validate:"min=1"`

	// middlewares are applied in order, so the first one wraps the handler
	// directly and the last one sees the request first.
	middlewares []func(http.Handler) http.Handler
	logger      Logger
}

type Server struct {
	Options
	srv *http.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate http server opts: %v", err)
	}

	handler := opts.handler

	for _, md := range opts.middlewares {
		handler = md(handler)
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           limitBody(opts.maxBodyBytes, handler),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       opts.readTimeout,
		WriteTimeout:      opts.writeTimeout,
		IdleTimeout:       opts.idleTimeout,
	}

	return &Server{Options: opts, srv: srv}, nil
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		return s.srv.Shutdown(ctx)
	})

	eg.Go(func() error {
		if s.logger != nil {
			s.logger.Info(ctx, "listen and serve",
				slog.String("addr", s.addr),
				slog.Int64("max_body_bytes", s.maxBodyBytes),
			)
		}

		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %v", err)
		}

		return nil
	})

	return eg.Wait()
}

func limitBody(n int64, next http.Handler) http.Handler {
	next = middleware.RequestSize(n)(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > n {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			_, _ = fmt.Fprintf(w, `{"status":"fail","message":"request body exceeds %d bytes"}`, n)
			return
		}

		next.ServeHTTP(w, r)
	})
}
