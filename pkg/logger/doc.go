// Package logger builds configured slog.Logger instances for the bundler
// backend: JSON in production, text for local development, with optional
// static attributes for component tagging.
//
//	log := logger.New(logger.WithAttr(slog.String("component", "reviews")))
package logger
