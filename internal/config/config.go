package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	// DefaultFirebaseURL is the Zero Internet SOS realtime database instance.
	DefaultFirebaseURL = "https://zerointernetsos-default-rtdb.firebaseio.com"
	// DefaultMessagesPath is the subtree that collects SOS messages.
	DefaultMessagesPath = "sos_messages"
	// DefaultExportPath is the local file the export tool writes.
	DefaultExportPath = "sos_debug_utf8.json"
)

type Config struct {
	FirebaseURL                string
	MessagesPath               string
	ExportPath                 string
	ArchivePath                string
	ArchiveDir                 string
	ServerHost                 string
	ServerPort                 string
	FrontendURL                string
	RateLimitRequestsPerMinute int
}

// GetConfig returns the application configuration based on environment variables
func GetConfig() (*Config, error) {
	config := &Config{}

	// Firebase configuration
	config.FirebaseURL = os.Getenv("SOSADMIN_FIREBASE_URL")
	if config.FirebaseURL == "" {
		config.FirebaseURL = DefaultFirebaseURL
	}

	config.MessagesPath = os.Getenv("SOSADMIN_MESSAGES_PATH")
	if config.MessagesPath == "" {
		config.MessagesPath = DefaultMessagesPath
	}

	config.ExportPath = os.Getenv("SOSADMIN_EXPORT_PATH")
	if config.ExportPath == "" {
		config.ExportPath = DefaultExportPath
	}

	// Local snapshot archive configuration
	if dbPath := os.Getenv("SOSADMIN_DB_PATH"); dbPath != "" {
		config.ArchivePath = dbPath
		config.ArchiveDir = filepath.Dir(dbPath)
	} else {
		// Default archive location
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		config.ArchiveDir = filepath.Join(homeDir, ".sosadmin")
		config.ArchivePath = filepath.Join(config.ArchiveDir, "sosadmin.db")
	}

	// Server configuration
	config.ServerHost = os.Getenv("HOST")
	if config.ServerHost == "" {
		config.ServerHost = "localhost"
	}

	config.ServerPort = os.Getenv("PORT")
	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}

	// Frontend URL configuration
	config.FrontendURL = os.Getenv("FRONTEND_URL")
	if config.FrontendURL == "" {
		config.FrontendURL = "http://localhost:3000"
	}

	config.RateLimitRequestsPerMinute = 60
	if customLimit := os.Getenv("RATE_LIMIT_REQUESTS_PER_MINUTE"); customLimit != "" {
		if parsed, err := strconv.Atoi(customLimit); err == nil && parsed > 0 {
			config.RateLimitRequestsPerMinute = parsed
		}
	}

	return config, nil
}

// EnsureArchiveDir creates the archive directory if it doesn't exist
func (c *Config) EnsureArchiveDir() error {
	return os.MkdirAll(c.ArchiveDir, 0755)
}

// ArchiveExists checks if the archive database file exists
func (c *Config) ArchiveExists() bool {
	_, err := os.Stat(c.ArchivePath)
	return !os.IsNotExist(err)
}
