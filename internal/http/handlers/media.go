package handlers

import (
	"net/http"

	"github.com/novacast/nova-backend/internal/auth"
	apierrors "github.com/novacast/nova-backend/internal/errors"
	"github.com/novacast/nova-backend/internal/service"
)

// Загрузка медиа идёт в два шага: presign выдаёт подписанный PUT URL,
// confirm проверяет, что объект загружен и проходит ограничения.
// Оба шага требуют аутентификации: ключ объекта привязан к автору.

type mediaPresignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

// MediaPresign — POST /media/presign.
func (h *Handlers) MediaPresign(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.From(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return
	}

	var req mediaPresignRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.svc.MediaUploadURL(r.Context(), service.MediaUploadURLInput{
		AuthorID:      id.UserID,
		ContentType:   req.ContentType,
		ContentLength: req.ContentLength,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadInfoFromModel(info))
}

type mediaConfirmRequest struct {
	MediaKey string `json:"media_key"`
}

type mediaConfirmResponse struct {
	URL string `json:"url,omitempty"`
}

// MediaConfirm — POST /media/confirm.
func (h *Handlers) MediaConfirm(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.From(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return
	}

	var req mediaConfirmRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	url, err := h.svc.ConfirmMediaUpload(r.Context(), service.ConfirmMediaUploadInput{
		AuthorID: id.UserID,
		MediaKey: req.MediaKey,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mediaConfirmResponse{URL: url})
}
