// Package api exposes the HTTP interface for video and quiz
// management.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/vidquiz/internal/config"
	"github.com/abhisek/vidquiz/internal/evaluate"
	"github.com/abhisek/vidquiz/internal/logger"
	"github.com/abhisek/vidquiz/internal/quizgen"
	"github.com/abhisek/vidquiz/internal/store"
	"github.com/abhisek/vidquiz/internal/youtube"
)

// Server wires the stores and services behind the REST API.
type Server struct {
	cfg       config.Config
	log       *logger.Logger
	store     *store.Store
	assembler *quizgen.Assembler
	evaluator *evaluate.Evaluator
	yt        *youtube.Client
}

// NewServer creates a Server. All dependencies are required.
func NewServer(cfg config.Config, log *logger.Logger, st *store.Store,
	assembler *quizgen.Assembler, evaluator *evaluate.Evaluator, yt *youtube.Client) *Server {
	return &Server{
		cfg:       cfg,
		log:       log,
		store:     st,
		assembler: assembler,
		evaluator: evaluator,
		yt:        yt,
	}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	// Question generation holds the request open across several LLM
	// calls, so the timeout is generous.
	r.Use(middleware.Timeout(3 * time.Minute))

	allowed := s.cfg.Server.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/videos", func(r chi.Router) {
			r.Get("/", s.handleListVideos)
			r.Post("/", s.handleCreateVideo)
			r.Route("/{videoID}", func(r chi.Router) {
				r.Get("/", s.handleGetVideo)
				r.Delete("/", s.handleDeleteVideo)
				r.Get("/subtitles", s.handleGetSubtitles)
				r.Get("/questions", s.handleListQuestions)
				r.Post("/generate-questions", s.handleGenerateQuestions)
				r.Post("/ask-question", s.handleAskQuestion)
			})
		})
		r.Route("/questions/{questionID}", func(r chi.Router) {
			r.Get("/", s.handleGetQuestion)
			r.Post("/verify", s.handleVerifyAnswer)
		})
	})
	return r
}
