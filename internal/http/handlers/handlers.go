package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/novacast/nova-backend/internal/service"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга -> 400 через маппинг сервисных ошибок.
func errInvalidArgument() error {
	return fmt.Errorf("handlers: %w", service.ErrInvalidArgument)
}
