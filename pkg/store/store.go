// Package store keeps batch runs and their per-line results in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/batch"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/instruction"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/source"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at DATETIME NOT NULL,
	finished_at DATETIME,
	sources TEXT NOT NULL,
	lines INTEGER NOT NULL DEFAULT 0,
	parsed INTEGER NOT NULL DEFAULT 0,
	failed INTEGER NOT NULL DEFAULT 0,
	skipped INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS results (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	seq INTEGER NOT NULL,
	file TEXT NOT NULL,
	line INTEGER NOT NULL,
	function TEXT NOT NULL,
	text TEXT NOT NULL,
	kind TEXT,
	error TEXT,
	summary TEXT,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_results_kind ON results(run_id, kind);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
`

// Store is a results database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// RunInfo describes one batch run.
type RunInfo struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time // zero while the run is open
	Sources    []string
	Stats      batch.Stats
}

// Run is an open batch run. It is a batch.Sink.
type Run struct {
	store *Store
	id    string
	seq   int
}

// BeginRun starts a run over the named sources.
func (s *Store) BeginRun(ctx context.Context, sources []string) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO runs (id, started_at, sources) VALUES (?, ?, ?)`,
		id, time.Now().UTC(), strings.Join(sources, "\n"))
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return &Run{store: s, id: id}, nil
}

func (r *Run) ID() string { return r.id }

// Record stores one result.
func (r *Run) Record(ctx context.Context, res batch.Result) error {
	var kind, errText, summary sql.NullString
	if res.Err != nil {
		errText = sql.NullString{String: res.Err.Error(), Valid: true}
	} else if res.Summary != nil {
		data, err := json.Marshal(res.Summary)
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		kind = sql.NullString{String: res.Summary.Kind, Valid: true}
		summary = sql.NullString{String: string(data), Valid: true}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO results (run_id, seq, file, line, function, text, kind, error, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.id, r.seq, res.Line.File, res.Line.Number, res.Line.Function, res.Line.Text, kind, errText, summary)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	r.seq++
	return nil
}

// Finish closes the run with its final counts.
func (r *Run) Finish(ctx context.Context, stats batch.Stats) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, err := r.store.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, lines = ?, parsed = ?, failed = ?, skipped = ?
		WHERE id = ?
	`, time.Now().UTC(), stats.Lines, stats.Parsed, stats.Failed, stats.Skipped, r.id)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// Runs returns the most recent runs first. A limit of zero returns all.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunInfo, error) {
	query := `SELECT id, started_at, finished_at, sources, lines, parsed, failed, skipped FROM runs ORDER BY started_at DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var (
			info     RunInfo
			finished sql.NullTime
			sources  string
		)
		if err := rows.Scan(&info.ID, &info.StartedAt, &finished, &sources,
			&info.Stats.Lines, &info.Stats.Parsed, &info.Stats.Failed, &info.Stats.Skipped); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		info.FinishedAt = finished.Time
		if sources != "" {
			info.Sources = strings.Split(sources, "\n")
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Stored is one result row read back.
type Stored struct {
	Line    source.Line
	Error   string               // empty when the line parsed
	Summary *instruction.Summary // nil when it did not
}

// Filter narrows Results.
type Filter struct {
	Kind       string
	FailedOnly bool
}

// Results returns the results of a run in input order.
func (s *Store) Results(ctx context.Context, runID string, f Filter) ([]Stored, error) {
	query := `SELECT file, line, function, text, error, summary FROM results WHERE run_id = ?`
	args := []any{runID}
	if f.Kind != "" {
		query += " AND kind = ?"
		args = append(args, f.Kind)
	}
	if f.FailedOnly {
		query += " AND error IS NOT NULL"
	}
	query += " ORDER BY seq"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Stored
	for rows.Next() {
		var (
			st            Stored
			errText, summ sql.NullString
		)
		if err := rows.Scan(&st.Line.File, &st.Line.Number, &st.Line.Function, &st.Line.Text, &errText, &summ); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		st.Error = errText.String
		if summ.Valid {
			st.Summary = &instruction.Summary{}
			if err := json.Unmarshal([]byte(summ.String), st.Summary); err != nil {
				return nil, fmt.Errorf("decode summary: %w", err)
			}
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// KindCount is the number of lines of one kind in a run.
type KindCount struct {
	Kind  string
	Count int
}

// KindCounts returns how many parsed lines of each kind a run has, most
// frequent first.
func (s *Store) KindCounts(ctx context.Context, runID string) ([]KindCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) AS n FROM results
		WHERE run_id = ? AND kind IS NOT NULL
		GROUP BY kind ORDER BY n DESC, kind
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query kinds: %w", err)
	}
	defer rows.Close()

	var out []KindCount
	for rows.Next() {
		var kc KindCount
		if err := rows.Scan(&kc.Kind, &kc.Count); err != nil {
			return nil, fmt.Errorf("scan kind: %w", err)
		}
		out = append(out, kc)
	}
	return out, rows.Err()
}

// DeleteRun removes a run and its results.
func (s *Store) DeleteRun(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, runID)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %s: %w", runID, sql.ErrNoRows)
	}
	return nil
}
