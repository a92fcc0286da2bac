// Package scoreboard serves the leaderboard read-only over HTTP.
//
//   - GET /health        liveness
//   - GET /scores?n=10   top n entries, highest first (n defaults to 10, max 50)
package scoreboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/golangdaddy/neonrush/pkg/highscore"
)

// DefaultLimit is the number of entries returned when n is omitted
const DefaultLimit = 10

// Server bundles the router and the store it reads from
type Server struct {
	r     *chi.Mux
	store highscore.Store
}

// New constructs a Server, installs middleware and registers routes
func New(st highscore.Store) *Server {
	s := &Server{r: chi.NewRouter(), store: st}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(5 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/scores", s.handleScores)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the router for tests
func (s *Server) Router() chi.Router { return s.r }

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

type scoresRes struct {
	Entries []highscore.Entry `json:"entries"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	n := DefaultLimit
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			http.Error(w, `{"error":"bad_limit"}`, http.StatusBadRequest)
			return
		}
		n = min(parsed, highscore.MaxEntries)
	}

	entries, err := s.store.TopN(r.Context(), n)
	if err != nil {
		log.Error().Err(err).Msg("load scores")
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []highscore.Entry{}
	}
	_ = json.NewEncoder(w).Encode(scoresRes{Entries: entries})
}
