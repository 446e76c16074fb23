package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/novacast/nova-backend/pkg/log"
)

// Logging кладёт request-scoped логгер в контекст и пишет итоговую запись
// "http" по завершении обработки (method, path, status, dur, bytes).
//
// Идентификатор запроса берётся из заголовка X-Request-Id — мидлвар RequestID
// стоит раньше в цепочке и гарантирует его наличие, так что каждая запись
// сервисных слоёв (через log.From) несёт request_id без дополнительной
// прокидки. Статус и объём ответа снимаются обёрткой statusWriter.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := l
			if rid := r.Header.Get("X-Request-Id"); rid != "" {
				reqLogger = reqLogger.With(slog.String("request_id", rid))
			}

			r = r.WithContext(logctx.Into(r.Context(), reqLogger))

			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelInfo, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.count),
			)
		})
	}
}
