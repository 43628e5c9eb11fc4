package history

import (
	"context"
	"database/sql"
	"time"
)

// timeLayout sorts lexically in chronological order for UTC times.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Entry is one recorded search.
type Entry struct {
	ID        int64     `json:"id"`
	Letters   string    `json:"letters"`
	Dict      string    `json:"dict"`
	Start     string    `json:"start,omitempty"`
	End       string    `json:"end,omitempty"`
	Results   int       `json:"results"`
	TopWord   string    `json:"topWord,omitempty"`
	TopScore  int       `json:"topScore"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists search history in SQLite.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts e. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO searches
            (letters, dict, start_with, end_with, results, top_word, top_score, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Letters, e.Dict, e.Start, e.End, e.Results, e.TopWord, e.TopScore,
		e.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

// Recent returns up to limit entries, newest first. limit <= 0 means 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, letters, dict, start_with, end_with, results, top_word, top_score, created_at
        FROM searches
        ORDER BY created_at DESC, id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Letters, &e.Dict, &e.Start, &e.End,
			&e.Results, &e.TopWord, &e.TopScore, &created); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(timeLayout, created)
		out = append(out, e)
	}
	return out, rows.Err()
}
