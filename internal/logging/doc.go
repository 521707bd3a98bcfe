// Package logging provides structured JSON logging for datagrid.
//
// It wraps log/slog with persistent attributes so every controller can tag
// its output with a component name, plus a size-based [RotatingWriter] and
// helpers for reading logs back for the "datagrid logs" command.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Persistent attributes (component, source) on child loggers
//   - Log rotation with optional gzip compression of backups
//   - Reading, filtering, and exporting entries as JSON, text, or CSV
//
// # Thread Safety
//
// [Logger] and [RotatingWriter] are safe for concurrent use. Child loggers
// created via With* methods share the parent's destination; closing any of
// them closes the file for all.
//
// # Basic Usage
//
//	logger, err := logging.NewRotatingLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	resizeLog := logger.WithComponent("resize")
//	resizeLog.Debug("column resized", "index", 0, "width", 150)
//
// Reading logs back:
//
//	entries, err := logging.ReadEntries(dir)
//	errs := logging.FilterEntries(entries, logging.Filter{Level: "WARN"})
//	_ = logging.ExportEntries(os.Stdout, errs, "text")
package logging
