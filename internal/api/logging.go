package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogFormatter writes access log lines through slog. Requests are
// identified by their route pattern, never the raw URI, since tokens travel
// in paths and query strings.
type requestLogFormatter struct {
	logger *slog.Logger
}

func (f *requestLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &requestLogEntry{logger: f.logger, r: r}
}

type requestLogEntry struct {
	logger *slog.Logger
	r      *http.Request
}

func (e *requestLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	e.logger.Info("request served",
		"method", e.r.Method,
		"route", routePattern(e.r),
		"status", status,
		"bytes", bytes,
		"duration", elapsed,
		"remote_addr", e.r.RemoteAddr,
		"request_id", middleware.GetReqID(e.r.Context()),
	)
}

func (e *requestLogEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error("handler panicked",
		"method", e.r.Method,
		"route", routePattern(e.r),
		"panic", v,
		"stack", string(stack),
		"request_id", middleware.GetReqID(e.r.Context()),
	)
}

// routePattern is filled in by chi while routing, so it is read when the
// entry is written rather than when it is created.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
