// Package config provides configuration management for the content platform.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file, with defaults declared as struct tags on each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, media root)
//   - Database: Postgres/Neon connection details
//   - Storage: R2/S3 credentials and bucket settings
//   - Log: Logging level and format
//   - Cache: read-through cache bounds and TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
