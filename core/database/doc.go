// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure Postgres connections based on the application's configuration. The
// sqlite driver is also supported; it is used for local development and
// in-process tests.
//
// # Connect
//
// The generic Connect function establishes a connection to the database and
// configures the connection pool. Schema creation is handled by the seed
// command, which runs AutoMigrate over the feature models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
