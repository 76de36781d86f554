package store

import "log/slog"

// LoggingObserver logs every store operation using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer.
// A nil logger falls back to slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	attrs := []any{
		"event", event.Type,
		"op_id", event.OpID,
		"timestamp", event.Timestamp,
	}
	if event.Table != "" {
		attrs = append(attrs, "table", event.Table)
	}
	if event.Data != nil {
		attrs = append(attrs, "data", event.Data)
	}

	if event.Err != nil {
		lo.logger.Warn("store_operation_failed", append(attrs, "error", event.Err)...)
		return
	}
	lo.logger.Debug("store_operation", attrs...)
}
