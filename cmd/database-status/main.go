package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"sosadmin-backend/internal/config"
	"sosadmin-backend/internal/database"
	"sosadmin-backend/internal/firebase"
	"sosadmin-backend/internal/services"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--help" {
		fmt.Println("Usage: database-status")
		fmt.Println("Shows current status of the SOS realtime database and the local")
		fmt.Println("snapshot archive, including root key, message, snapshot and purge counts.")
		return
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	var db *sql.DB
	if cfg.ArchiveExists() {
		db, err = database.InitializeWithConfig(cfg)
		if err != nil {
			fmt.Printf("Error opening archive: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	client := firebase.NewClient(cfg.FirebaseURL)
	statusService := services.NewStatusService(client, db, cfg.MessagesPath)

	status, err := statusService.GetStatus(context.Background())
	if err != nil {
		fmt.Printf("Error getting status: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database: %s\n\n", cfg.FirebaseURL)
	fmt.Printf("%-15s: %d\n", "Root Keys", status.RootKeys)
	fmt.Printf("%-15s: %d\n", "Messages", status.Messages)

	if !status.ArchiveExists {
		fmt.Println("\nLocal archive does not exist.")
		fmt.Printf("Expected location: %s\n", cfg.ArchivePath)
		return
	}

	fmt.Printf("\nArchive: %s\n\n", cfg.ArchivePath)
	fmt.Printf("%-15s: %d\n", "Snapshots", status.Snapshots)
	fmt.Printf("%-15s: %d\n", "Purges", status.Purges)
}
