// Package mongo manages the MongoDB connection for the bundler backend.
//
// Configuration is entirely environment-driven (see Config); connection
// setup retries transparently to ride out transient Atlas failures at boot.
// Collection-level index setup lives with the stores that own the
// collections, not here.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//	db, err := mongo.NewDatabase(ctx, cfg)
package mongo
