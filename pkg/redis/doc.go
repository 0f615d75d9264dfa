// Package redis manages the Redis connection backing the cached plan
// catalog source.
//
// Configuration is environment-driven (see Config); Connect retries so the
// backend survives Redis coming up after it during deploys.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
package redis
