package server

import (
	"net/http"

	"github.com/adrianliechti/tts-gateway/config"
	"github.com/adrianliechti/tts-gateway/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	h.Attach(r)

	s := &Server{
		Config: cfg,

		handler: otelhttp.NewHandler(r, "http"),
	}

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe() error {
	server := &http.Server{
		Addr: s.Address,

		Handler: s,
	}

	return server.ListenAndServe()
}
