package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/novacast/nova-backend/internal/storage"
)

// MediaUploadURL генерирует presigned PUT URL для загрузки файла.
// Валидирует contentType и contentLength согласно конфигу, формирует ключ вида
// "media/<authorID>/<uuid>.<ext>" и возвращает также набор заголовков,
// которые клиент должен передать при PUT (будут проверены при подтверждении).
func (s *MediaStorage) MediaUploadURL(ctx context.Context, authorID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	op := "storage/minio/media/MediaUploadURL"

	if contentLength <= 0 || contentLength > s.cfg.Media.MaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Media.AllowedContentTypes, contentType) {
		return nil, storage.ErrInvalidArgument
	}

	key := path.Join("media", authorID.String(), uuid.NewString()+extFor(contentType))

	url, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info := &storage.UploadInfo{
		UploadURL: url.String(),
		MediaKey:  key,
		Expires:   s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}

	return info, nil
}

// CheckMediaUpload подтверждает факт загрузки по key:
// проверяет, что объект существует и удовлетворяет ограничениям размера/типа.
// Возвращает публичный URL (если PublicBaseURL задан), иначе — пустую строку.
func (s *MediaStorage) CheckMediaUpload(ctx context.Context, authorID uuid.UUID, key string) (publicURL string, err error) {
	op := "storage/minio/media/CheckMediaUpload"

	prefix := "media/" + authorID.String() + "/"
	if !strings.HasPrefix(key, prefix) {
		return "", storage.ErrInvalidArgument
	}

	objInfo, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return "", storage.ErrNotFoundObject
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if objInfo.Size <= 0 || objInfo.Size > s.cfg.Media.MaxSizeBytes {
		return "", storage.ErrInvalidArgument
	}

	if ct := objInfo.ContentType; ct != "" && !isAllowedContentType(s.cfg.Media.AllowedContentTypes, ct) {
		return "", storage.ErrInvalidArgument
	}

	if s.cfg.S3.PublicBaseURL == "" {
		return "", nil
	}

	base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/")

	return base + "/" + key, nil
}

// extFor подбирает расширение файла по типу содержимого.
func extFor(contentType string) string {
	switch contentType {
	case "audio/mpeg":
		return ".mp3"
	case "audio/wav":
		return ".wav"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
