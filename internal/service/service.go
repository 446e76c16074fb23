// service содержит бизнес-логику nova-backend.
package service

import (
	"errors"

	"github.com/novacast/nova-backend/internal/config"
	"github.com/novacast/nova-backend/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token.
	// Транспорт: 400.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPermissionDenied — вызывающему не хватает прав (админские операции).
	// Транспорт: 403.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInternal — прочие ошибки стораджа/БД/контекста.
	// Транспорт: 500, детали только в логах.
	ErrInternal = errors.New("internal error")
)

// Service — бизнес-логика nova-backend.
type Service struct {
	storage storage.Storage
	media   storage.MediaStorage
	cfg     config.Config
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, media storage.MediaStorage, cfg config.Config) *Service {
	return &Service{
		storage: st,
		media:   media,
		cfg:     cfg,
	}
}
