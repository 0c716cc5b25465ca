// Package database handles database connections and schema migration.
//
// It provides a wrapper around GORM to configure Postgres connections based
// on the application's configuration. A full connection URL (e.g. a Neon
// connection string) takes precedence over the discrete host/port fields.
// The sqlite driver is supported for tests and local development.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	err = database.Migrate(db, &models.Performer{}, &models.Content{})
package database
