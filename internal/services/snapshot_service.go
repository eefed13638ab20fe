package services

import (
	"database/sql"
	"fmt"
	"time"

	"sosadmin-backend/internal/models"

	"github.com/google/uuid"
)

// SnapshotService manages the local archive of exports and purges.
type SnapshotService struct {
	db *sql.DB
}

func NewSnapshotService(db *sql.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// RecordSnapshot inserts an archive row for a completed export. The
// snapshot ID is assigned here if the caller left it empty.
func (s *SnapshotService) RecordSnapshot(snapshot *models.Snapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO snapshots (id, remote_path, file_path, message_count, size_bytes, fetched_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		snapshot.ID,
		snapshot.RemotePath,
		snapshot.FilePath,
		snapshot.MessageCount,
		snapshot.SizeBytes,
		snapshot.FetchedAt,
		snapshot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}

	return nil
}

// RecordPurge inserts an audit row for a purge attempt.
func (s *SnapshotService) RecordPurge(statusCode int) error {
	query := `INSERT INTO purges (id, status_code, executed_at) VALUES (?, ?, ?)`

	_, err := s.db.Exec(query, uuid.New().String(), statusCode, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record purge: %w", err)
	}

	return nil
}

// ListSnapshots returns all archived snapshots, newest first.
func (s *SnapshotService) ListSnapshots() ([]models.Snapshot, error) {
	query := `
		SELECT id, remote_path, file_path, message_count, size_bytes, fetched_at, created_at
		FROM snapshots
		ORDER BY fetched_at DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []models.Snapshot
	for rows.Next() {
		var snapshot models.Snapshot
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.RemotePath,
			&snapshot.FilePath,
			&snapshot.MessageCount,
			&snapshot.SizeBytes,
			&snapshot.FetchedAt,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

// CountSnapshots returns the number of archived snapshots.
func (s *SnapshotService) CountSnapshots() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return count, nil
}

// CountPurges returns the number of recorded purges.
func (s *SnapshotService) CountPurges() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM purges`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count purges: %w", err)
	}
	return count, nil
}
