package main

import (
	"context"
	"fmt"
	"os"

	"sosadmin-backend/internal/config"
	"sosadmin-backend/internal/database"
	"sosadmin-backend/internal/firebase"
	"sosadmin-backend/internal/services"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--help" {
		fmt.Println("Usage: export")
		fmt.Println("Fetches the SOS message tree and writes it to a local file as")
		fmt.Println("indented UTF-8 JSON. Each export is recorded in the local archive")
		fmt.Println("when one is available.")
		return
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The archive is optional for the export itself
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		fmt.Printf("Warning: archive unavailable, export will not be recorded: %v\n", err)
		db = nil
	}
	if db != nil {
		defer db.Close()
	}

	client := firebase.NewClient(cfg.FirebaseURL)
	exportService := services.NewExportService(client, db, cfg.MessagesPath, cfg.ExportPath)

	snapshot, err := exportService.Export(context.Background())
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %s to %s\n", snapshot.RemotePath, snapshot.FilePath)
	fmt.Printf("Messages: %d, Size: %d bytes\n", snapshot.MessageCount, snapshot.SizeBytes)
}
