// errors стандартизирует ответы об ошибках HTTP-слоя nova-backend.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинел-ошибки internal/service.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/novacast/nova-backend/internal/service"
)

// Нестандартный код, часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// ErrUnauthenticated — запрос без валидного bearer-токена там, где он обязателен.
// Сервисный слой про аутентификацию не знает, поэтому сентинел живёт здесь.
var ErrUnauthenticated = errors.New("unauthenticated")

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и
// унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - ErrInvalidArgument / ErrInvalidCursor -> 400;
//   - ErrNotFound -> 404;
//   - ErrUnauthenticated -> 401;
//   - ErrPermissionDenied -> 403;
//   - context.Canceled -> 499, context.DeadlineExceeded -> 504;
//   - прочее -> 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrInvalidCursor):
		return http.StatusBadRequest, "invalid_cursor", "invalid page token"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied", "permission denied"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
