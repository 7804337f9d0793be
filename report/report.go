package report

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jsphweid/pianolab/logging"
)

const flushTimeout = 2 * time.Second

var enabled atomic.Bool

// Init turns on error reporting. An empty dsn leaves it off.
func Init(dsn, release string) error {
	if dsn == "" {
		logging.GetGlobalLogger().Debug("Error reporting not configured")
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          "pianolab@" + release,
		EnableTracing:    true,
		TracesSampleRate: 0.2,
	}); err != nil {
		return fmt.Errorf("init error reporting: %w", err)
	}
	enabled.Store(true)
	logging.GetGlobalLogger().Info("Error reporting initialized", logging.Fields{"release": release})
	return nil
}

func Enabled() bool {
	return enabled.Load()
}

// Flush waits for queued reports. Call it before exiting.
func Flush() {
	if enabled.Load() {
		sentry.Flush(flushTimeout)
	}
}

// Notice records a recoverable failure. The user keeps going; the error is
// logged at warn level and forwarded when reporting is on.
func Notice(err error, msg string, fields ...logging.Fields) {
	if err == nil {
		return
	}
	logging.GetGlobalLogger().Warn(fmt.Sprintf("%s: %v", msg, err), fields...)
	if enabled.Load() {
		sentry.CaptureException(err)
	}
}

// StartRequest opens a span for a request on route. The returned context
// carries the span into the handler; finish closes it with the response
// status.
func StartRequest(ctx context.Context, route string) (context.Context, func(status int)) {
	if !enabled.Load() {
		return ctx, func(int) {}
	}
	span := sentry.StartSpan(ctx, "http.server")
	span.Description = route

	return span.Context(), func(status int) {
		span.SetTag("status_code", fmt.Sprintf("%d", status))
		span.Status = spanStatus(status)
		span.Finish()
	}
}

func spanStatus(status int) sentry.SpanStatus {
	switch {
	case status < http.StatusBadRequest:
		return sentry.SpanStatusOK
	case status == http.StatusNotFound:
		return sentry.SpanStatusNotFound
	case status < http.StatusInternalServerError:
		return sentry.SpanStatusInvalidArgument
	default:
		return sentry.SpanStatusInternalError
	}
}
