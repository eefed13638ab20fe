package services

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"

	"sosadmin-backend/internal/firebase"
	"sosadmin-backend/internal/models"
)

// PurgeService deletes all data at the database root. The archive db is
// optional; when present, every attempt is recorded for audit.
type PurgeService struct {
	client *firebase.Client
	db     *sql.DB
}

func NewPurgeService(client *firebase.Client, db *sql.DB) *PurgeService {
	return &PurgeService{client: client, db: db}
}

// Purge sends a single DELETE to the database root. A rejected delete is
// not an error: the result carries the status code and response body so
// callers can report it. Only transport failures return an error.
func (s *PurgeService) Purge(ctx context.Context) (*models.PurgeResult, error) {
	result := &models.PurgeResult{}

	err := s.client.Delete(ctx, "")
	if err != nil {
		var statusErr *firebase.StatusError
		if !errors.As(err, &statusErr) {
			return nil, err
		}
		result.StatusCode = statusErr.StatusCode
		result.Body = statusErr.Body
	} else {
		result.Success = true
		result.StatusCode = http.StatusOK
	}

	if s.db != nil {
		snapshotService := NewSnapshotService(s.db)
		if err := snapshotService.RecordPurge(result.StatusCode); err != nil {
			// Audit must not mask the purge outcome
			log.Printf("Warning: failed to record purge in archive: %v", err)
		}
	}

	return result, nil
}
