package logging

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry configures the global Sentry client. An empty dsn leaves
// Sentry disabled.
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
}

// FlushSentry waits for buffered events to be delivered.
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}

// SentryHandler passes every record to the wrapped handler and additionally
// reports error-level records to Sentry. An "error" attribute holding an
// error value is captured as an exception, anything else as a message.
type SentryHandler struct {
	next  slog.Handler
	hub   *sentry.Hub
	attrs []slog.Attr
}

// NewSentryHandler wraps next. A nil hub means the global hub.
func NewSentryHandler(next slog.Handler, hub *sentry.Hub) *SentryHandler {
	return &SentryHandler{next: next, hub: hub}
}

func (h *SentryHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *SentryHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		h.capture(r)
	}
	return h.next.Handle(ctx, r)
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SentryHandler{
		next:  h.next.WithAttrs(attrs),
		hub:   h.hub,
		attrs: append(slices.Clip(h.attrs), attrs...),
	}
}

func (h *SentryHandler) WithGroup(name string) slog.Handler {
	return &SentryHandler{next: h.next.WithGroup(name), hub: h.hub, attrs: h.attrs}
}

func (h *SentryHandler) capture(r slog.Record) {
	hub := h.hub
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		var captured error
		tag := func(a slog.Attr) {
			a.Value = a.Value.Resolve()
			if err, ok := a.Value.Any().(error); ok && a.Key == "error" {
				captured = err
				return
			}
			scope.SetTag(a.Key, a.Value.String())
		}
		for _, a := range h.attrs {
			tag(a)
		}
		r.Attrs(func(a slog.Attr) bool {
			tag(a)
			return true
		})
		scope.SetLevel(sentry.LevelError)

		if captured != nil {
			scope.SetTag("log_message", r.Message)
			hub.CaptureException(captured)
			return
		}
		hub.CaptureMessage(r.Message)
	})
}
