package main

import (
	"fmt"
	"os"

	"sosadmin-backend/internal/config"
	"sosadmin-backend/internal/database"
	"sosadmin-backend/internal/services"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--help" {
		fmt.Println("Usage: snapshot-history")
		fmt.Println("Lists all exports recorded in the local snapshot archive, newest first.")
		return
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if !cfg.ArchiveExists() {
		fmt.Println("Local archive does not exist. No snapshots recorded yet.")
		fmt.Printf("Expected location: %s\n", cfg.ArchivePath)
		return
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		fmt.Printf("Error opening archive: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	snapshotService := services.NewSnapshotService(db)

	snapshots, err := snapshotService.ListSnapshots()
	if err != nil {
		fmt.Printf("Error listing snapshots: %v\n", err)
		os.Exit(1)
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots recorded yet.")
		return
	}

	fmt.Printf("Archive: %s\n\n", cfg.ArchivePath)
	for _, snapshot := range snapshots {
		fmt.Printf("%s  %s -> %s  (%d messages, %d bytes)\n",
			snapshot.FetchedAt.Format("2006-01-02 15:04:05"),
			snapshot.RemotePath,
			snapshot.FilePath,
			snapshot.MessageCount,
			snapshot.SizeBytes,
		)
	}
	fmt.Printf("\nTotal: %d snapshots\n", len(snapshots))
}
