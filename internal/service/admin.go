package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/novacast/nova-backend/internal/auth"
	"github.com/novacast/nova-backend/internal/models"
	"github.com/novacast/nova-backend/internal/storage"
	"github.com/novacast/nova-backend/pkg/log"
)

// Входные структуры админских операций.

// UpdateTierInput — смена тарифа пользователя.
type UpdateTierInput struct {
	UserID uuid.UUID
	Tier   models.Tier
}

// AdjustCreditsInput — изменение баланса кредитов на Delta (знак любой).
type AdjustCreditsInput struct {
	UserID uuid.UUID
	Delta  int64
}

// ExtendSubscriptionInput — продление подписки на Days суток.
type ExtendSubscriptionInput struct {
	UserID uuid.UUID
	Days   int32
}

// requireAdmin проверяет, что вызывающий аутентифицирован и обладает ролью
// admin. Вызывается первым в каждой админской операции — до обращения к данным.
func (s *Service) requireAdmin(ctx context.Context) error {
	id, ok := auth.From(ctx)
	if !ok || !id.IsAdmin() {
		return ErrPermissionDenied
	}

	return nil
}

// ListUsers возвращает страницу админской таблицы пользователей.
//
// Каждая строка обогащается производными полями: числом публикаций и суммой
// просмотров (одна агрегация на страницу) и вычисленным статусом подписки.
// Курсор «вперёд» выдаёт сторадж; историю для навигации «назад» держит клиент.
//
// Ошибки:
//   - ErrPermissionDenied — вызывающий не админ (до обращения к данным);
//   - ErrInvalidCursor — битый page_token;
//   - прочие ошибки стораджа — ErrInternal.
func (s *Service) ListUsers(ctx context.Context, opts models.ListUsersOptions) (*models.UsersPage, error) {
	const op = "service/admin/ListUsers"

	lg := log.From(ctx).With(
		"op", op,
		"has_filter", opts.Filter != "",
		"has_page_token", opts.PageToken != "",
		"page_size", opts.PageSize,
	)

	if err := s.requireAdmin(ctx); err != nil {
		lg.Warn("permission denied")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users, next, hasMore, err := s.storage.ListUsers(ctx, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("invalid page token")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("storage error on ListUsers", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	authorIDs := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		authorIDs = append(authorIDs, u.ID)
	}

	stats, err := s.storage.AuthorStatsFor(ctx, authorIDs)
	if err != nil {
		lg.Error("storage error on AuthorStatsFor", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	now := time.Now().UTC()
	items := make([]models.AdminUser, 0, len(users))
	for _, u := range users {
		st := stats[u.ID]
		items = append(items, models.AdminUser{
			User:         u,
			ContentCount: st.ContentCount,
			TotalViews:   st.TotalViews,
			Subscription: u.SubscriptionStatusAt(now),
		})
	}

	lg.Info("list_users_ok", "items", len(items), "has_more", hasMore)

	return &models.UsersPage{
		Items:         items,
		NextPageToken: next,
		HasMore:       hasMore,
	}, nil
}

// UpdateTier меняет тариф пользователя.
//
// Ошибки:
//   - ErrPermissionDenied — вызывающий не админ;
//   - ErrInvalidArgument — нулевой id или неизвестный тариф;
//   - ErrNotFound — пользователя нет.
func (s *Service) UpdateTier(ctx context.Context, in UpdateTierInput) (*models.User, error) {
	const op = "service/admin/UpdateTier"

	lg := log.From(ctx).With("op", op, "user_id", in.UserID.String(), "tier", string(in.Tier))

	if err := s.requireAdmin(ctx); err != nil {
		lg.Warn("permission denied")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Tier != models.TierFree && in.Tier != models.TierPremium {
		lg.Warn("invalid argument: unknown tier")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UpdateTier(ctx, in.UserID, in.Tier)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on UpdateTier", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("tier_updated")
	return user, nil
}

// AdjustCredits изменяет баланс кредитов пользователя.
// Итоговый баланс не может уйти ниже нуля — иначе ErrInvalidArgument.
func (s *Service) AdjustCredits(ctx context.Context, in AdjustCreditsInput) (*models.User, error) {
	const op = "service/admin/AdjustCredits"

	lg := log.From(ctx).With("op", op, "user_id", in.UserID.String(), "delta", in.Delta)

	if err := s.requireAdmin(ctx); err != nil {
		lg.Warn("permission denied")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Delta == 0 {
		lg.Warn("invalid argument: zero delta")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.AdjustCredits(ctx, in.UserID, in.Delta)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("insufficient credits")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on AdjustCredits", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("credits_adjusted", "credits", user.Credits)
	return user, nil
}

// ExtendSubscription продлевает подписку на заданное число суток.
// Days валидируется до мутации: неположительное значение — ErrInvalidArgument.
func (s *Service) ExtendSubscription(ctx context.Context, in ExtendSubscriptionInput) (*models.User, error) {
	const op = "service/admin/ExtendSubscription"

	lg := log.From(ctx).With("op", op, "user_id", in.UserID.String(), "days", in.Days)

	if err := s.requireAdmin(ctx); err != nil {
		lg.Warn("permission denied")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Days <= 0 {
		lg.Warn("invalid argument: non-positive days")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.ExtendSubscription(ctx, in.UserID, in.Days)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on ExtendSubscription", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("subscription_extended", "ends_on", user.SubscriptionEndsOn)
	return user, nil
}
