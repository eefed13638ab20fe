package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"sosadmin-backend/internal/firebase"
	"sosadmin-backend/internal/models"
)

// ExportService fetches the SOS message tree and writes it to a local
// file as indented UTF-8 JSON.
type ExportService struct {
	client     *firebase.Client
	db         *sql.DB
	remotePath string
	exportPath string
}

func NewExportService(client *firebase.Client, db *sql.DB, remotePath, exportPath string) *ExportService {
	return &ExportService{
		client:     client,
		db:         db,
		remotePath: remotePath,
		exportPath: exportPath,
	}
}

// Export performs a single GET of the message subtree and writes the
// pretty-printed result to the export file. The tree has no schema, so
// it is decoded as an arbitrary JSON value. When an archive db is
// present the snapshot is recorded; archive failures do not fail the
// export itself.
func (s *ExportService) Export(ctx context.Context) (*models.Snapshot, error) {
	fetchedAt := time.Now().UTC()

	var tree interface{}
	if err := s.client.Get(ctx, s.remotePath, &tree); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.remotePath, err)
	}

	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message tree: %w", err)
	}

	if err := os.WriteFile(s.exportPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", s.exportPath, err)
	}

	snapshot := &models.Snapshot{
		RemotePath:   s.remotePath,
		FilePath:     s.exportPath,
		MessageCount: countChildren(tree),
		SizeBytes:    int64(len(data)),
		FetchedAt:    fetchedAt,
	}

	if s.db != nil {
		snapshotService := NewSnapshotService(s.db)
		if err := snapshotService.RecordSnapshot(snapshot); err != nil {
			log.Printf("Warning: failed to record snapshot in archive: %v", err)
		}
	}

	return snapshot, nil
}

// countChildren counts top-level entries of the fetched tree. Firebase
// stores pushed messages as an object keyed by push ID; a null tree
// (empty database) counts as zero.
func countChildren(tree interface{}) int {
	switch t := tree.(type) {
	case map[string]interface{}:
		return len(t)
	case []interface{}:
		return len(t)
	case nil:
		return 0
	default:
		return 1
	}
}
