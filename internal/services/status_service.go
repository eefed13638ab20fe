package services

import (
	"context"
	"database/sql"
	"fmt"

	"sosadmin-backend/internal/firebase"
	"sosadmin-backend/internal/models"
)

// StatusService reports remote subtree counts alongside local archive
// counts.
type StatusService struct {
	client       *firebase.Client
	db           *sql.DB
	messagesPath string
}

func NewStatusService(client *firebase.Client, db *sql.DB, messagesPath string) *StatusService {
	return &StatusService{client: client, db: db, messagesPath: messagesPath}
}

func (s *StatusService) GetStatus(ctx context.Context) (*models.DatabaseStatus, error) {
	status := &models.DatabaseStatus{}

	rootKeys, err := s.client.Keys(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to read root keys: %w", err)
	}
	status.RootKeys = len(rootKeys)

	messageKeys, err := s.client.Keys(ctx, s.messagesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read message keys: %w", err)
	}
	status.Messages = len(messageKeys)

	if s.db != nil {
		status.ArchiveExists = true

		snapshotService := NewSnapshotService(s.db)
		if status.Snapshots, err = snapshotService.CountSnapshots(); err != nil {
			return nil, err
		}
		if status.Purges, err = snapshotService.CountPurges(); err != nil {
			return nil, err
		}
	}

	return status, nil
}
