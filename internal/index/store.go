package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/JTruax/BOIM-WP-MCP/internal/logger"
)

var log = logger.ForComponent("index")

// InMemory is the store path for a throwaway index, the default for a
// stdio server whose corpus is embedded anyway.
const InMemory = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS docs (
	topic      TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	body       TEXT NOT NULL,
	norm_body  TEXT NOT NULL,
	indexed_at TIMESTAMP NOT NULL
);
`

// Store is a small full-text index over the knowledge base. Bodies are
// stored alongside a case-folded, NFC-normalized copy that queries
// match against.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

func Open(path string) (*Store, error) {
	if path != InMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create index dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if path == InMemory {
		// Each pooled connection would otherwise get its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if path != InMemory {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			return nil, err
		}
		if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
			return nil, err
		}
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init index schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert indexes one document, replacing any previous version of the
// topic.
func (s *Store) Upsert(topic, title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO docs (topic, title, body, norm_body, indexed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(topic) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			norm_body = excluded.norm_body,
			indexed_at = excluded.indexed_at
	`, topic, title, body, Normalize(body), time.Now().UTC())

	if err != nil {
		return fmt.Errorf("upsert doc %s: %w", topic, err)
	}
	return nil
}

func (s *Store) Delete(topic string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM docs WHERE topic = ?`, topic); err != nil {
		return fmt.Errorf("delete doc %s: %w", topic, err)
	}
	return nil
}

func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM docs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Hit is one search result, ranked by term frequency.
type Hit struct {
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	URI     string `json:"uri"`
	Score   int    `json:"score"`
	Snippet string `json:"snippet"`
}

// Search returns documents matching every term of the query, best
// first. Ties break on topic so the ordering is deterministic.
func (s *Store) Search(query string, limit int) ([]Hit, error) {
	terms := Terms(query)
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty search query")
	}
	if limit <= 0 {
		limit = 5
	}

	where := make([]string, len(terms))
	args := make([]interface{}, len(terms))
	for i, term := range terms {
		where[i] = "instr(norm_body, ?) > 0"
		args[i] = term
	}

	s.mu.RLock()
	rows, err := s.db.Query(
		`SELECT topic, title, body, norm_body FROM docs WHERE `+strings.Join(where, " AND "),
		args...)
	s.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var topic, title, body, normBody string
		if err := rows.Scan(&topic, &title, &body, &normBody); err != nil {
			return nil, err
		}

		score := 0
		for _, term := range terms {
			score += strings.Count(normBody, term)
		}

		hits = append(hits, Hit{
			Topic:   topic,
			Title:   title,
			URI:     "wpdocs://" + topic,
			Score:   score,
			Snippet: snippet(body, terms[0]),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Topic < hits[j].Topic
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

const snippetRadius = 90

// snippet extracts a short window of original text around the first
// occurrence of term, trimmed to rune boundaries.
func snippet(body, term string) string {
	lower := strings.ToLower(body)
	pos := strings.Index(lower, term)
	if pos < 0 {
		pos = 0
	}

	start := pos - snippetRadius
	if start < 0 {
		start = 0
	}
	end := pos + len(term) + snippetRadius
	if end > len(body) {
		end = len(body)
	}

	for start > 0 && body[start]&0xC0 == 0x80 {
		start--
	}
	for end < len(body) && body[end]&0xC0 == 0x80 {
		end++
	}

	out := strings.TrimSpace(strings.ReplaceAll(body[start:end], "\n", " "))
	if start > 0 {
		out = "…" + out
	}
	if end < len(body) {
		out += "…"
	}
	return out
}
