package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/novacast/nova-backend/internal/storage"
	"github.com/novacast/nova-backend/pkg/log"
)

// MediaUploadURLInput — запрос presigned URL на загрузку медиа.
type MediaUploadURLInput struct {
	AuthorID      uuid.UUID
	ContentType   string
	ContentLength int64
}

// ConfirmMediaUploadInput — подтверждение загрузки по ключу.
type ConfirmMediaUploadInput struct {
	AuthorID uuid.UUID
	MediaKey string
}

// MediaUploadURL выдаёт presigned PUT URL для загрузки аудио/обложки.
//
// Валидация:
//   - AuthorID обязателен;
//   - contentType/contentLength проверяет слой объектного хранилища
//     (маппинг storage.ErrInvalidArgument -> ErrInvalidArgument).
func (s *Service) MediaUploadURL(ctx context.Context, in MediaUploadURLInput) (*storage.UploadInfo, error) {
	const op = "service/media/MediaUploadURL"

	lg := log.From(ctx).With("op", op, "author_id", in.AuthorID.String(), "content_type", in.ContentType)

	if in.AuthorID == uuid.Nil {
		lg.Warn("invalid argument: empty author_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if s.media == nil {
		lg.Error("media storage is not configured")
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	info, err := s.media.MediaUploadURL(ctx, in.AuthorID, in.ContentType, in.ContentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			lg.Warn("invalid content type or length")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("media storage error on MediaUploadURL", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return info, nil
}

// ConfirmMediaUpload подтверждает загрузку: объект существует и проходит
// ограничения. Возвращает публичный URL (или "" при непубличном бакете).
func (s *Service) ConfirmMediaUpload(ctx context.Context, in ConfirmMediaUploadInput) (string, error) {
	const op = "service/media/ConfirmMediaUpload"

	lg := log.From(ctx).With("op", op, "author_id", in.AuthorID.String())

	if in.AuthorID == uuid.Nil || strings.TrimSpace(in.MediaKey) == "" {
		lg.Warn("invalid argument")
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if s.media == nil {
		lg.Error("media storage is not configured")
		return "", fmt.Errorf("%s: %w", op, ErrInternal)
	}

	url, err := s.media.CheckMediaUpload(ctx, in.AuthorID, in.MediaKey)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundObject):
			lg.Warn("object not found")
			return "", fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("object fails constraints")
			return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("media storage error on ConfirmMediaUpload", "err", err)
			return "", fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("media_upload_confirmed")
	return url, nil
}
