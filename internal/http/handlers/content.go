package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/novacast/nova-backend/internal/auth"
	apierrors "github.com/novacast/nova-backend/internal/errors"
	"github.com/novacast/nova-backend/internal/models"
	"github.com/novacast/nova-backend/internal/service"
)

// ListContent — GET /content?q=<term>&category=<c1>&category=<c2>.
// Без параметров — листинг по убыванию просмотров, q включает поиск,
// category (повторяемый) — фильтр по категориям.
func (h *Handlers) ListContent(w http.ResponseWriter, r *http.Request) {
	opts := models.SearchOptions{
		Search:     r.URL.Query().Get("q"),
		Categories: r.URL.Query()["category"],
	}

	items, err := h.svc.SearchContent(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contentListFromModel(items))
}

// TrendingContent — GET /content/trending.
func (h *Handlers) TrendingContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListTrending(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contentListFromModel(items))
}

// GetContentByID — GET /content/{id}.
func (h *Handlers) GetContentByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	item, err := h.svc.ContentByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contentFromModel(*item))
}

type createContentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	AudioKey    string `json:"audio_key"`
	ImageKey    string `json:"image_key"`
}

// CreateContent — POST /content. Автором становится вызывающий:
// анонимные запросы отклоняются.
func (h *Handlers) CreateContent(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.From(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return
	}

	var req createContentRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	item, err := h.svc.CreateContent(r.Context(), service.CreateContentInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		AuthorID:    id.UserID,
		AudioKey:    req.AudioKey,
		ImageKey:    req.ImageKey,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, contentFromModel(*item))
}

// DeleteContent — DELETE /content/{id} (только админ).
func (h *Handlers) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.DeleteContent(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type recordViewRequest struct {
	Views int64 `json:"views"`
}

// RecordView — POST /content/{id}/view.
// Тело несёт счётчик, который клиент видел на момент просмотра.
func (h *Handlers) RecordView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var req recordViewRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.RecordView(r.Context(), service.RecordViewInput{
		ContentID: id,
		Views:     req.Views,
	}); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByAuthor — GET /authors/{id}/content.
func (h *Handlers) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	items, err := h.svc.ListByAuthor(r.Context(), authorID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contentListFromModel(items))
}
