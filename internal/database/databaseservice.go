package database

import "database/sql"

type DatabaseService interface {
	CreateDatabase() (*sql.DB, error)
	DoesDatabaseExist() bool
	Close() error

	// CreateRun inserts a run row and returns its generated ID.
	CreateRun(run *Run) (string, error)
	// AddAsset records one written PNG for the given run.
	AddAsset(runID string, asset *Asset) error
	// FinishRun stores the outcome of a run; errMsg is empty on success.
	FinishRun(runID string, success bool, errMsg string) error
	GetRuns() ([]*Run, error)
	GetAssetsByRunID(runID string) ([]*Asset, error)
}
