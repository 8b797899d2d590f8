package logging

import (
	"context"
	"log/slog"

	"subtext/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldPlatform is the standardized structured logging key for video platform names.
	FieldPlatform = "platform"
	// FieldOperation is the standardized structured logging key for operation labels.
	FieldOperation = "operation"
	// FieldURL is the standardized structured logging key for video URLs.
	FieldURL = "url"
	// FieldLanguage is the standardized structured logging key for caption language codes.
	FieldLanguage = "language"
	// FieldFormat is the standardized structured logging key for subtitle formats.
	FieldFormat = "format"
	// FieldEntryCount is the standardized structured logging key for parsed entry totals.
	FieldEntryCount = "entry_count"
	// FieldCorrelationID is the standardized structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	if platform, ok := services.PlatformFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldPlatform, platform))
	}
	if op, ok := services.OperationFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldOperation, op))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
