// internal/httpserver/routes_anagram.go
//
// Anagram routes:
//   - GET /anagrams?letters=&dict=&start=&end=&by=  → scored anagrams, flat and grouped
//   - GET /score?word=&rack=                        → score of one word from a rack
//   - GET /valid?letters=                           → whether the letters fit in one bag
//   - GET /daily?date=&dict=                        → rack of the day and its best plays

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/nagaram/internal/anagram"
	"github.com/robalobadob/nagaram/internal/daily"
	"github.com/robalobadob/nagaram/internal/history"
	"github.com/robalobadob/nagaram/internal/present"
	"github.com/robalobadob/nagaram/internal/rack"
	"github.com/robalobadob/nagaram/internal/scrabble"
	"github.com/robalobadob/nagaram/internal/words"
)

// dailyBest is how many top plays /daily returns.
const dailyBest = 10

func (s *Server) mountAnagrams(r chi.Router) {
	r.Get("/anagrams", s.handleAnagrams)
	r.Get("/score", s.handleScore)
	r.Get("/valid", s.handleValid)
	r.Get("/daily", s.handleDaily)
}

type anagramsRes struct {
	Letters string            `json:"letters"`
	Dict    string            `json:"dict"`
	Start   string            `json:"start,omitempty"`
	End     string            `json:"end,omitempty"`
	Valid   bool              `json:"valid"`
	Cached  bool              `json:"cached"`
	Count   int               `json:"count"`
	Results []anagram.Anagram `json:"results"`
	Groups  []present.Group   `json:"groups"`
}

// handleAnagrams runs (or replays from cache) one search.
func (s *Server) handleAnagrams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	letters := q.Get("letters")
	if letters == "" {
		writeError(w, http.StatusBadRequest, "missing_letters")
		return
	}
	v, err := words.ParseVariant(q.Get("dict"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_dict")
		return
	}
	group := present.ByScore
	switch q.Get("by") {
	case "", "score":
	case "length":
		group = present.ByLength
	default:
		writeError(w, http.StatusBadRequest, "bad_group")
		return
	}

	query := anagram.Query{Letters: letters, Variant: v, Start: q.Get("start"), End: q.Get("end")}
	results, cached, err := s.lookup(r.Context(), query)
	if err != nil {
		s.writeSearchError(w, query, err)
		return
	}

	groups := group(results)
	if groups == nil {
		groups = []present.Group{}
	}
	_ = json.NewEncoder(w).Encode(anagramsRes{
		Letters: letters,
		Dict:    v.String(),
		Start:   query.Start,
		End:     query.End,
		Valid:   scrabble.ValidDraw(letters),
		Cached:  cached,
		Count:   len(results),
		Results: results,
		Groups:  groups,
	})
}

// lookup returns cached results for q, or searches, caches and records them.
func (s *Server) lookup(ctx context.Context, q anagram.Query) (results []anagram.Anagram, cached bool, err error) {
	key := cacheKey(q)
	if res, err := s.cache.Get(ctx, key); err == nil {
		return res, true, nil
	}

	results, err = anagram.Collect(s.searcher.Search(q))
	if err != nil {
		return nil, false, err
	}
	if results == nil {
		results = []anagram.Anagram{}
	}
	if err := s.cache.Save(ctx, key, results); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache results")
	}
	s.record(ctx, q, results)
	return results, false, nil
}

// record stores q in the history, best effort.
func (s *Server) record(ctx context.Context, q anagram.Query, results []anagram.Anagram) {
	if s.history == nil {
		return
	}
	e := history.Entry{
		Letters:   q.Letters,
		Dict:      q.Variant.String(),
		Start:     q.Start,
		End:       q.End,
		Results:   len(results),
		CreatedAt: s.now(),
	}
	for _, a := range results {
		if a.Score > e.TopScore || e.TopWord == "" {
			e.TopWord, e.TopScore = a.Word, a.Score
		}
	}
	if err := s.history.Record(ctx, e); err != nil {
		log.Warn().Err(err).Str("letters", q.Letters).Msg("record search")
	}
}

func cacheKey(q anagram.Query) string {
	return strings.Join([]string{q.Variant.String(), q.Letters, q.Start, q.End}, "\x00")
}

func (s *Server) writeSearchError(w http.ResponseWriter, q anagram.Query, err error) {
	if errors.Is(err, scrabble.ErrInvalidLetter) {
		log.Warn().Err(err).Str("letters", q.Letters).Str("dict", q.Variant.String()).Msg("dictionary entry without a score")
		writeError(w, http.StatusUnprocessableEntity, "invalid_letter")
		return
	}
	log.Error().Err(err).Str("letters", q.Letters).Msg("search")
	writeError(w, http.StatusInternalServerError, "search_failed")
}

// handleScore scores one word against a rack token.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing_word")
		return
	}
	raw := r.URL.Query().Get("rack")
	rk := rack.Parse(raw)
	score, err := scrabble.WordScore(word, rk.Letters, rk.Placeholders)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_letter")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"word": word, "rack": raw, "score": score})
}

// handleValid reports whether the letters could be drawn from one bag.
func (s *Server) handleValid(w http.ResponseWriter, r *http.Request) {
	letters := r.URL.Query().Get("letters")
	_ = json.NewEncoder(w).Encode(map[string]any{"letters": letters, "valid": scrabble.ValidDraw(letters)})
}

type dailyRes struct {
	Date  string            `json:"date"`
	Rack  string            `json:"rack"`
	Dict  string            `json:"dict"`
	Count int               `json:"count"`
	Best  []anagram.Anagram `json:"best"`
}

// handleDaily returns the rack for today (or ?date=YYYY-MM-DD) and its best plays.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	day := s.now()
	if d := r.URL.Query().Get("date"); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date")
			return
		}
		day = t
	}
	v, err := words.ParseVariant(r.URL.Query().Get("dict"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_dict")
		return
	}

	q := anagram.Query{Letters: daily.Rack(day, s.salt), Variant: v}
	results, _, err := s.lookup(r.Context(), q)
	if err != nil {
		s.writeSearchError(w, q, err)
		return
	}

	best := make([]anagram.Anagram, len(results))
	copy(best, results)
	sort.SliceStable(best, func(i, j int) bool { return best[i].Score > best[j].Score })
	if len(best) > dailyBest {
		best = best[:dailyBest]
	}
	_ = json.NewEncoder(w).Encode(dailyRes{
		Date:  daily.DateKey(day),
		Rack:  q.Letters,
		Dict:  v.String(),
		Count: len(results),
		Best:  best,
	})
}
