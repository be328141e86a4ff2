package database

import "time"

type Run struct {
	ID           string    `db:"id"`
	SourcePath   string    `db:"source_path"`
	SourceSHA256 string    `db:"source_sha256"`
	SourceWidth  int       `db:"source_width"`
	SourceHeight int       `db:"source_height"`
	StartedAt    time.Time `db:"started_at"` // stored as RFC 3339 text
	Success      bool      `db:"success"`
	Error        string    `db:"error"`
}

type Asset struct {
	RunID  string `db:"run_id"`
	Path   string `db:"path"`
	Width  int    `db:"width"`
	Height int    `db:"height"`
	Bytes  int    `db:"bytes"`
	SHA256 string `db:"sha256"`
}
