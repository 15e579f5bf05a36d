package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS antichess_results (
	game_id     TEXT PRIMARY KEY,
	white_name  TEXT NOT NULL,
	black_name  TEXT NOT NULL,
	winner      TEXT NOT NULL DEFAULT '',
	method      TEXT NOT NULL,
	placement   TEXT NOT NULL,
	pgn         TEXT NOT NULL,
	started_at  TIMESTAMPTZ NOT NULL,
	ended_at    TIMESTAMPTZ NOT NULL,
	duration_ms BIGINT NOT NULL DEFAULT 0
)`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create antichess_results: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts the record together with its PGN header block.
func (s *PostgresStore) Save(ctx context.Context, r *Record) error {
	if err := r.validate(); err != nil {
		return err
	}
	duration := r.EndedAt.Sub(r.StartedAt).Milliseconds()
	if duration < 0 {
		duration = 0
	}

	const q = `INSERT INTO antichess_results (
		game_id, white_name, black_name, winner, method, placement, pgn,
		started_at, ended_at, duration_ms
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	ON CONFLICT (game_id) DO UPDATE SET
		white_name=EXCLUDED.white_name,
		black_name=EXCLUDED.black_name,
		winner=EXCLUDED.winner,
		method=EXCLUDED.method,
		placement=EXCLUDED.placement,
		pgn=EXCLUDED.pgn,
		started_at=EXCLUDED.started_at,
		ended_at=EXCLUDED.ended_at,
		duration_ms=EXCLUDED.duration_ms`

	_, err := s.db.ExecContext(ctx, q,
		r.ID, r.White, r.Black, r.Winner, string(r.Method), r.Placement, BuildPGN(r),
		r.StartedAt, r.EndedAt, duration,
	)
	if err != nil {
		return fmt.Errorf("upsert antichess result: %w", err)
	}
	return nil
}

const selectColumns = `game_id, white_name, black_name, winner, method, placement, started_at, ended_at`

func (s *PostgresStore) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM antichess_results WHERE game_id = $1`, id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select antichess result: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM antichess_results ORDER BY ended_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select antichess results: %w", err)
	}
	defer rows.Close()

	out := make([]*Record, 0, limit)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan antichess result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		r      Record
		method string
	)
	if err := sc.Scan(&r.ID, &r.White, &r.Black, &r.Winner, &method, &r.Placement, &r.StartedAt, &r.EndedAt); err != nil {
		return nil, err
	}
	r.Method = Method(method)
	return &r, nil
}

// PGNResult maps the winner colour to a PGN result token.
func PGNResult(winner string) string {
	switch strings.ToLower(strings.TrimSpace(winner)) {
	case "white":
		return "1-0"
	case "black":
		return "0-1"
	default:
		return "1/2-1/2"
	}
}

// BuildPGN renders the tag section for a record. Anti-chess games are not
// replayable from the standard start, so the final position travels in the
// FEN tag.
func BuildPGN(r *Record) string {
	if r == nil {
		return ""
	}
	date := r.EndedAt
	if date.IsZero() {
		date = time.Now()
	}
	result := PGNResult(r.Winner)

	var b strings.Builder
	b.WriteString("[Event \"Anti-Chess\"]\n")
	b.WriteString("[Variant \"Antichess\"]\n")
	b.WriteString(fmt.Sprintf("[Date \"%04d.%02d.%02d\"]\n", date.Year(), int(date.Month()), date.Day()))
	b.WriteString(fmt.Sprintf("[White \"%s\"]\n", sanitizePGN(r.White)))
	b.WriteString(fmt.Sprintf("[Black \"%s\"]\n", sanitizePGN(r.Black)))
	if r.Method != "" {
		b.WriteString(fmt.Sprintf("[Termination \"%s\"]\n", sanitizePGN(string(r.Method))))
	}
	if strings.TrimSpace(r.Placement) != "" {
		b.WriteString("[SetUp \"1\"]\n")
		b.WriteString(fmt.Sprintf("[FEN \"%s w - - 0 1\"]\n", sanitizePGN(r.Placement)))
	}
	b.WriteString(fmt.Sprintf("[Result \"%s\"]\n\n", result))
	b.WriteString(result)
	return b.String()
}

func sanitizePGN(s string) string {
	s = strings.ReplaceAll(s, "\\", " ")
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.TrimSpace(s)
}
