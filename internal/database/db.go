package database

import (
	"database/sql"
	"fmt"

	"sosadmin-backend/internal/config"

	_ "github.com/marcboeker/go-duckdb/v2"
)

func Initialize() (*sql.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	return InitializeWithConfig(cfg)
}

func InitializeWithConfig(cfg *config.Config) (*sql.DB, error) {
	if err := cfg.EnsureArchiveDir(); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	db, err := sql.Open("duckdb", cfg.ArchivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}

	if err := CreateTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

func CreateTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id VARCHAR PRIMARY KEY,
			remote_path VARCHAR NOT NULL,
			file_path VARCHAR NOT NULL,
			message_count INTEGER DEFAULT 0,
			size_bytes BIGINT DEFAULT 0,
			fetched_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS purges (
			id VARCHAR PRIMARY KEY,
			status_code INTEGER NOT NULL,
			executed_at TIMESTAMP NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}
