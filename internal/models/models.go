package models

import (
	"time"
)

// Snapshot records one export of the SOS message tree into a local file.
type Snapshot struct {
	ID           string    `json:"id" db:"id"`
	RemotePath   string    `json:"remote_path" db:"remote_path"`
	FilePath     string    `json:"file_path" db:"file_path"`
	MessageCount int       `json:"message_count" db:"message_count"`
	SizeBytes    int64     `json:"size_bytes" db:"size_bytes"`
	FetchedAt    time.Time `json:"fetched_at" db:"fetched_at"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PurgeRecord is the audit row written after each purge attempt.
type PurgeRecord struct {
	ID         string    `json:"id" db:"id"`
	StatusCode int       `json:"status_code" db:"status_code"`
	ExecutedAt time.Time `json:"executed_at" db:"executed_at"`
}

// PurgeResult reports the outcome of a purge. Body carries the raw
// server response when the delete was rejected.
type PurgeResult struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code"`
	Body       string `json:"body,omitempty"`
}

// DatabaseStatus combines remote subtree counts with local archive counts.
type DatabaseStatus struct {
	RootKeys      int  `json:"root_keys"`
	Messages      int  `json:"messages"`
	ArchiveExists bool `json:"archive_exists"`
	Snapshots     int  `json:"snapshots"`
	Purges        int  `json:"purges"`
}
