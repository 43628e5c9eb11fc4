// internal/httpserver/server.go
//
// HTTP server wiring for the nagaram backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Anagram endpoints: GET /anagrams, GET /score, GET /valid, GET /daily.
//   - History endpoint: GET /history (when a history store is configured).
//
// Notes:
//   - Errors are JSON objects of the form {"error":"code"}.
//   - Search results are cached per normalized query; history writes are best effort.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/nagaram/internal/anagram"
	"github.com/robalobadob/nagaram/internal/history"
	"github.com/robalobadob/nagaram/internal/store"
	"github.com/robalobadob/nagaram/internal/words"
)

// Options configures a Server. Source and Cache are required; History may be nil.
type Options struct {
	Source       words.Source
	Cache        store.Store
	History      *history.Store
	ClientOrigin string
	DailySalt    string
	Now          func() time.Time // defaults to time.Now
}

// Server bundles router, searcher, cache and history store.
type Server struct {
	r        *chi.Mux
	src      words.Source
	searcher *anagram.Searcher
	cache    store.Store
	history  *history.Store
	salt     string
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		src:      opts.Source,
		searcher: anagram.New(opts.Source),
		cache:    opts.Cache,
		history:  opts.History,
		salt:     opts.DailySalt,
		now:      opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog request log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"nagaram","endpoints":["/health","/anagrams","/score","/valid","/daily","/history"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleWordCounts)

	s.mountAnagrams(s.r)
	if s.history != nil {
		s.r.Get("/history", s.handleHistory)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// handleWordCounts reports the size of each word list.
func (s *Server) handleWordCounts(w http.ResponseWriter, r *http.Request) {
	out := map[string]int{}
	for _, v := range []words.Variant{words.TWL, words.SOWPODS} {
		n, err := words.Count(s.src, v)
		if err != nil {
			log.Warn().Err(err).Str("dict", v.String()).Msg("count words")
			continue
		}
		out[v.String()] = n
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleHistory lists recent searches: GET /history?limit=20 (max 100).
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}
	entries, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("load history")
		writeError(w, http.StatusInternalServerError, "history_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"searches": entries})
}
