package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

type SQLiteDatabase struct {
	db               *sql.DB
	connectionString string
}

func NewSQLiteDatabase(connectionString string) (DatabaseService, error) {
	db, err := sql.Open("sqlite", connectionString)
	if err != nil {
		return nil, err
	}
	// ":memory:" databases are per connection
	db.SetMaxOpenConns(1)

	return &SQLiteDatabase{
		db:               db,
		connectionString: connectionString,
	}, nil
}

func (s *SQLiteDatabase) CreateDatabase() (*sql.DB, error) {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		source_sha256 TEXT,
		source_width INTEGER,
		source_height INTEGER,
		started_at TEXT NOT NULL,
		success INTEGER NOT NULL DEFAULT 0,
		error TEXT
	)`)
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS assets (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		path TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		bytes INTEGER NOT NULL,
		sha256 TEXT NOT NULL,
		PRIMARY KEY (run_id, path)
	)`)
	if err != nil {
		return nil, err
	}

	return s.db, nil
}

func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteDatabase) DoesDatabaseExist() bool {
	// SQLite creates the file on connect, so a successful ping is enough.
	err := s.db.Ping()
	return err == nil
}

func (s *SQLiteDatabase) CreateRun(run *Run) (string, error) {
	id := uuid.NewString()
	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	_, err := s.db.Exec(`INSERT INTO runs (id, source_path, source_sha256, source_width, source_height, started_at, success, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.SourcePath, run.SourceSHA256, run.SourceWidth, run.SourceHeight,
		startedAt.UTC().Format(time.RFC3339Nano), run.Success, run.Error)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (s *SQLiteDatabase) AddAsset(runID string, asset *Asset) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO assets (run_id, path, width, height, bytes, sha256)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, asset.Path, asset.Width, asset.Height, asset.Bytes, asset.SHA256)
	return err
}

func (s *SQLiteDatabase) FinishRun(runID string, success bool, errMsg string) error {
	res, err := s.db.Exec("UPDATE runs SET success = ?, error = ? WHERE id = ?", success, errMsg, runID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}

func (s *SQLiteDatabase) GetRuns() ([]*Run, error) {
	rows, err := s.db.Query(`SELECT id, source_path, source_sha256, source_width, source_height, started_at, success, error
		FROM runs ORDER BY started_at`)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var runs []*Run
	for rows.Next() {
		var run Run
		var startedAt string
		var sha, errMsg sql.NullString
		var width, height sql.NullInt64
		if err := rows.Scan(&run.ID, &run.SourcePath, &sha, &width, &height, &startedAt, &run.Success, &errMsg); err != nil {
			return nil, err
		}
		run.SourceSHA256 = sha.String
		run.SourceWidth = int(width.Int64)
		run.SourceHeight = int(height.Int64)
		run.Error = errMsg.String
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("invalid started_at for run %s: %w", run.ID, err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

func (s *SQLiteDatabase) GetAssetsByRunID(runID string) ([]*Asset, error) {
	rows, err := s.db.Query(`SELECT run_id, path, width, height, bytes, sha256
		FROM assets WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var assets []*Asset
	for rows.Next() {
		var asset Asset
		if err := rows.Scan(&asset.RunID, &asset.Path, &asset.Width, &asset.Height, &asset.Bytes, &asset.SHA256); err != nil {
			return nil, err
		}
		assets = append(assets, &asset)
	}
	return assets, rows.Err()
}
