package main

import (
	"fmt"
	"os"

	"sosadmin-backend/internal/config"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--help" {
		fmt.Println("Usage: database-reset")
		fmt.Println("Removes the local snapshot archive. The remote SOS database is not touched.")
		return
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Remove the archive directory and everything in it
	err = os.RemoveAll(cfg.ArchiveDir)
	if err != nil {
		fmt.Printf("Error removing archive directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Archive reset completed. All snapshot and purge records have been removed.")
	fmt.Printf("Archive directory: %s\n", cfg.ArchiveDir)
	fmt.Println("The archive will be recreated on the next export or purge.")
}
