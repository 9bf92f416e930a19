package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog mangles multi-line stack traces
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// viewer resolves the optional viewer identity for shift projections. An
// explicit userId query parameter always wins; the session cookie is only a
// fallback. No identity at all is a valid state (facility view).
func (h *Handler) viewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewerUserID := r.URL.Query().Get("userId")
		if viewerUserID == "" {
			if claims, err := h.parseSessionCookie(r); err == nil {
				viewerUserID = claims.Subject
			}
		}

		ctx := context.WithValue(r.Context(), ViewerCtxKey, viewerUserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) viewerUserID(r *http.Request) string {
	viewerUserID, _ := r.Context().Value(ViewerCtxKey).(string)
	return viewerUserID
}
