// Package httpserver runs the HTTP listener hosting the admin API.
//
// The server handles SIGINT/SIGTERM and context cancellation with a
// bounded graceful shutdown. Configuration is environment-driven (see
// Config).
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	err := srv.Run(ctx, admin.Router(admin.RouterOptions{...}))
package httpserver
