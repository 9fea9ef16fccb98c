// Package logger builds *slog.Logger values from functional options and adds
// attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the format,
// applies static attributes, and, when any ContextExtractor is registered,
// wraps the handler so the extractors run on every record. That is
// how a run identifier stored in the context ends up on every log line:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "ordercheck"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "order accepted", logger.OrderID(id))
package logger
