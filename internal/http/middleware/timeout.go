package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает время обработки запроса дедлайном d
// (config.TimeoutConfig.Service). Подключается последним в цепочке: дедлайн
// получает только бизнес-обработка, а не логирование/метрики.
//
// Контракт:
//   - d <= 0 — мидлвар не подключается (возвращается исходный handler);
//   - дедлайн уже задан во входящем контексте — не переопределяется;
//   - иначе контекст оборачивается в context.WithTimeout; по истечении
//     обработчики получают context.DeadlineExceeded, который маппится в 504.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Deadline(); ok {
				// Вышестоящий слой уже ограничил запрос.
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
