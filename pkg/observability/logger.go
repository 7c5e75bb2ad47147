package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Log attribute keys.
const (
	AttrTraceID = "trace_id"
	AttrSpanID  = "span_id"
	AttrService = "service"
	AttrVersion = "version"
	AttrCommand = "command"
)

type commandKey struct{}

// WithCommand tags ctx with the CLI command being run. Records logged with
// that context carry it as the "command" attribute.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

// CommandFrom returns the command stored by WithCommand.
func CommandFrom(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(commandKey{}).(string)

	return name, ok && name != ""
}

// TracingHandler is an [slog.Handler] that enriches records from their
// context: the active span's trace_id and span_id, and the command set by
// WithCommand. Service and version are fixed at construction and attached to
// the inner handler, so they stay top level under WithGroup.
type TracingHandler struct {
	inner slog.Handler
}

// NewTracingHandler wraps inner. version is omitted when empty.
func NewTracingHandler(inner slog.Handler, service, version string) *TracingHandler {
	fixed := []slog.Attr{slog.String(AttrService, service)}

	if version != "" {
		fixed = append(fixed, slog.String(AttrVersion, version))
	}

	return &TracingHandler{inner: inner.WithAttrs(fixed)}
}

// Enabled reports whether the inner handler accepts level.
func (h *TracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle adds the context attributes and passes the record on.
func (h *TracingHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(contextAttrs(ctx)...)

	if err := h.inner.Handle(ctx, record); err != nil {
		return fmt.Errorf("tracing handler: %w", err)
	}

	return nil
}

// WithAttrs implements [slog.Handler].
func (h *TracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TracingHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup implements [slog.Handler].
func (h *TracingHandler) WithGroup(name string) slog.Handler {
	return &TracingHandler{inner: h.inner.WithGroup(name)}
}

func contextAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr

	if name, ok := CommandFrom(ctx); ok {
		attrs = append(attrs, slog.String(AttrCommand, name))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		attrs = append(attrs,
			slog.String(AttrTraceID, sc.TraceID().String()),
			slog.String(AttrSpanID, sc.SpanID().String()),
		)
	}

	return attrs
}
