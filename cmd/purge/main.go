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
		fmt.Println("Usage: purge")
		fmt.Println("Deletes ALL data at the root of the SOS realtime database.")
		fmt.Println("The attempt is recorded in the local archive when one is available.")
		return
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The archive is optional for the purge itself
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		fmt.Printf("Warning: archive unavailable, purge will not be recorded: %v\n", err)
		db = nil
	}
	if db != nil {
		defer db.Close()
	}

	client := firebase.NewClient(cfg.FirebaseURL)
	purgeService := services.NewPurgeService(client, db)

	result, err := purgeService.Purge(context.Background())
	if err != nil {
		fmt.Printf("Failed to delete data. %v\n", err)
		os.Exit(1)
	}

	if result.Success {
		fmt.Println("Successfully deleted all data in Firebase.")
		return
	}

	fmt.Printf("Failed to delete data. Status code: %d\n", result.StatusCode)
	fmt.Println(result.Body)
	os.Exit(1)
}
