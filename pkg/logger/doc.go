// Package logger builds the slog loggers used by the i18nlayers tooling.
//
// Library code never logs on its own: the merger and the layer loader accept
// a *slog.Logger and default to a discarding one. This package is where a
// host or the CLI turns configuration into a real logger.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{
//		Level:  "debug",
//		Format: logger.FormatText,
//		Output: os.Stderr,
//	})
//	merger := i18nlayers.New(i18nlayers.WithLogger(log))
//
// # Context Extractors
//
// Extractors add request-scoped attributes at log time. WithProject stores the
// project root in a context and ProjectExtractor reports it on every record
// logged with that context:
//
//	log := logger.New(cfg, logger.ProjectExtractor)
//	ctx := logger.WithProject(ctx, "/srv/app")
//	log.InfoContext(ctx, "stack loaded")
//	// level=INFO msg="stack loaded" project=/srv/app
//
// # Sentry Integration
//
// When Config.Sentry.DSN is set, warnings and errors are also forwarded to
// Sentry; errors create issues. Without a DSN, or when the SDK fails to
// initialize, only the local handler is used.
package logger
