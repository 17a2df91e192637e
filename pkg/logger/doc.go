// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(logger.Component("signup")),
//	)
//	log.Debug("form rejected", logger.Fields(map[string][]string{"email": {"Email is required"}}))
//
// ContextExtractor callbacks registered with WithContextExtractors add
// request-scoped attributes, such as a request id, to every record logged
// through the *Context methods.
package logger
