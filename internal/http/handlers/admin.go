package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/novacast/nova-backend/internal/errors"
	"github.com/novacast/nova-backend/internal/models"
	"github.com/novacast/nova-backend/internal/service"
)

// Админская таблица пользователей и мутации тарифа/кредитов/подписки.
// Права проверяет сервисный слой; транспорт лишь парсит вход.

// ListUsers — GET /admin/users?filter=<s>&page_token=<t>&page_size=<n>.
//
// Курсор одноразовый и только «вперёд»: историю для кнопки «назад» держит
// клиент (стек пройденных токенов), сервер прошлые страницы не хранит.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	var opts models.ListUsersOptions

	opts.Filter = r.URL.Query().Get("filter")
	opts.PageToken = r.URL.Query().Get("page_token")

	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		opts.PageSize = int32(n)
	}

	page, err := h.svc.ListUsers(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, usersPageFromModel(page))
}

type updateTierRequest struct {
	Tier string `json:"tier"`
}

// UpdateTier — PATCH /admin/users/{id}/tier.
func (h *Handlers) UpdateTier(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var req updateTierRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.UpdateTier(r.Context(), service.UpdateTierInput{
		UserID: userID,
		Tier:   models.Tier(req.Tier),
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(*user))
}

type adjustCreditsRequest struct {
	Delta int64 `json:"delta"`
}

// AdjustCredits — POST /admin/users/{id}/credits.
func (h *Handlers) AdjustCredits(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var req adjustCreditsRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.AdjustCredits(r.Context(), service.AdjustCreditsInput{
		UserID: userID,
		Delta:  req.Delta,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(*user))
}

type extendSubscriptionRequest struct {
	Days int32 `json:"days"`
}

// ExtendSubscription — POST /admin/users/{id}/subscription.
func (h *Handlers) ExtendSubscription(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var req extendSubscriptionRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.ExtendSubscription(r.Context(), service.ExtendSubscriptionInput{
		UserID: userID,
		Days:   req.Days,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(*user))
}
