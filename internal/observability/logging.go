// Package observability provides logging, metrics, and tracing.
package observability

import (
	"context"
	"log/slog"
	"os"
	"sort"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger for the store and service helpers below.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is what the helpers in this package write to. The HTTP layer
// replaces it with its context-aware logger at startup.
var GlobalLogger = &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stdout, nil))}

// SetLogger replaces the logger behind GlobalLogger. Nil is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		GlobalLogger = &Logger{Logger: l}
	}
}

type correlationKey struct{}

// GenerateCorrelationID returns a new random correlation ID.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

// WithCorrelationID stores id in ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// ExtractCorrelationID returns the ID stored by WithCorrelationID, or "".
func ExtractCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// fieldAttrs turns a field map into slog attributes in key order so log
// lines are stable.
func fieldAttrs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	return attrs
}

// RepoLogger logs writes against one table.
type RepoLogger struct {
	log *slog.Logger
}

// NewRepoLogger returns a RepoLogger tagged with table.
func NewRepoLogger(table string) *RepoLogger {
	return &RepoLogger{log: GlobalLogger.With(slog.String("table", table))}
}

func (l *RepoLogger) write(ctx context.Context, op string, fields map[string]any) {
	attrs := append([]any{slog.String("operation", op)}, fieldAttrs(fields)...)
	l.log.DebugContext(ctx, "store write", attrs...)
}

// LogCreate logs an insert.
func (l *RepoLogger) LogCreate(ctx context.Context, fields map[string]any) {
	l.write(ctx, "create", fields)
}

// LogUpdate logs an update.
func (l *RepoLogger) LogUpdate(ctx context.Context, fields map[string]any) {
	l.write(ctx, "update", fields)
}

// LogDelete logs a delete.
func (l *RepoLogger) LogDelete(ctx context.Context, fields map[string]any) {
	l.write(ctx, "delete", fields)
}

// LogError logs a failed store call.
func (l *RepoLogger) LogError(ctx context.Context, err error, op string) {
	l.log.ErrorContext(ctx, "store error",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// LogServiceCall logs entry into a service method.
func LogServiceCall(ctx context.Context, service, method string, fields map[string]any) {
	attrs := append([]any{
		slog.String("service", service),
		slog.String("method", method),
	}, fieldAttrs(fields)...)
	GlobalLogger.InfoContext(ctx, "service call", attrs...)
}

// LogServiceError logs a best-effort side effect that failed after the main
// operation succeeded.
func LogServiceError(ctx context.Context, service, method string, err error) {
	GlobalLogger.WarnContext(ctx, "service side effect failed",
		slog.String("service", service),
		slog.String("method", method),
		slog.String("error", err.Error()),
	)
}
