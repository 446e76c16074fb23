package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFoundObject — объект не найден в объектном хранилище.
	ErrNotFoundObject = errors.New("object not found")
)

// UploadInfo — результат выдачи presigned URL на загрузку медиа.
type UploadInfo struct {
	// UploadURL — подписанный PUT URL.
	UploadURL string
	// MediaKey — ключ объекта вида "media/<authorID>/<uuid>.<ext>".
	MediaKey string
	// Expires — срок действия ссылки.
	Expires time.Duration
	// RequiredHeader — заголовки, обязательные при PUT (проверяются при подтверждении).
	RequiredHeader map[string]string
}

// MediaStorage описывает операции с медиа-файлами контента (аудио/обложки).
type MediaStorage interface {
	// MediaUploadURL выдаёт presigned PUT URL для загрузки файла автора.
	// Некорректный contentType/contentLength — ErrInvalidArgument.
	MediaUploadURL(ctx context.Context, authorID uuid.UUID, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckMediaUpload подтверждает загрузку по ключу: объект существует и
	// удовлетворяет ограничениям. Возвращает публичный URL (или "").
	CheckMediaUpload(ctx context.Context, authorID uuid.UUID, key string) (string, error)
}
