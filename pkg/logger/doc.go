// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors so log keys stay consistent.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "mailforge"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "email rendered", logger.RenderID(id), logger.Bytes(len(html)))
//
// Context extractors run on every record, so values such as the request id
// are read from the context passed to the *Context logging methods.
package logger
