package middleware

import (
	"net/http"
	"strings"

	"github.com/novacast/nova-backend/internal/auth"
	apierrors "github.com/novacast/nova-backend/internal/errors"
)

// AuthBearer извлекает Bearer-токен из Authorization, проверяет подпись и
// кладёт личность вызывающего в контекст (auth.Into).
//
// Запрос без заголовка остаётся анонимным и проходит дальше: публичные
// эндпойнты доступны без токена, а права на админские операции проверяет
// сервисный слой. Предъявленный, но невалидный токен — это 401 сразу.
func AuthBearer(v *auth.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) || len(header) <= len(prefix) {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			id, err := v.Verify(token)
			if err != nil {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.Into(r.Context(), id)))
		})
	}
}
