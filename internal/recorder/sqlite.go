package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"TickerRank/internal/model"
)

// SQLiteRecorder persists batch run results to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at    INTEGER NOT NULL,
			finished_at   INTEGER NOT NULL,
			scored        INTEGER,
			failed        INTEGER,
			best5_ticker  TEXT,
			best5_score   REAL,
			best20_ticker TEXT,
			best20_score  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS ticker_scores (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id   INTEGER NOT NULL,
			ticker   TEXT NOT NULL,
			score_5  REAL,
			score_20 REAL,
			FOREIGN KEY (run_id) REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_run ON ticker_scores(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the run row plus one score row per ticker, atomically.
func (r *SQLiteRecorder) RecordRun(summary *model.RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var best5Ticker, best20Ticker string
	var best5Score, best20Score float64
	if summary.Best5 != nil {
		best5Ticker, best5Score = summary.Best5.Ticker, summary.Best5.Score5
	}
	if summary.Best20 != nil {
		best20Ticker, best20Score = summary.Best20.Ticker, summary.Best20.Score20
	}

	res, err := tx.Exec(`INSERT INTO runs
		(started_at, finished_at, scored, failed,
		 best5_ticker, best5_score, best20_ticker, best20_score)
		VALUES (?,?,?,?,?,?,?,?)`,
		summary.StartedAt.Unix(), summary.FinishedAt.Unix(),
		len(summary.Results), len(summary.Failed),
		best5Ticker, best5Score, best20Ticker, best20Score,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, ts := range summary.Results {
		if _, err := tx.Exec(`INSERT INTO ticker_scores (run_id, ticker, score_5, score_20)
			VALUES (?,?,?,?)`,
			runID, ts.Ticker, ts.Score5, ts.Score20,
		); err != nil {
			return fmt.Errorf("insert score for %s: %w", ts.Ticker, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
