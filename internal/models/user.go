package models

import (
	"time"

	"github.com/google/uuid"
)

// Tier — тариф пользователя.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// SubscriptionStatus — вычисляемый статус подписки (не хранится в БД).
type SubscriptionStatus string

const (
	// SubscriptionActive — подписка оплачена и не истекла.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionExpired — подписка когда-то была, но срок вышел.
	SubscriptionExpired SubscriptionStatus = "expired"
	// SubscriptionFree — подписки никогда не было.
	SubscriptionFree SubscriptionStatus = "free"
)

// User — доменная сущность пользователя.
//
// Создаётся внешним identity-провайдером; админские операции меняют
// тариф, баланс кредитов и срок подписки.
type User struct {
	// ID — идентификатор пользователя (совпадает с identity-провайдером).
	ID uuid.UUID
	// Username — отображаемое имя.
	Username string
	// Email — адрес почты.
	Email string
	// Tier — текущий тариф.
	Tier Tier
	// SubscriptionID — идентификатор подписки у платёжного провайдера ("" — не было).
	SubscriptionID string
	// SubscriptionEndsOn — момент окончания подписки (zero — не задан).
	SubscriptionEndsOn time.Time
	// Credits — баланс кредитов генерации (>= 0).
	Credits int64
	// CreatedAt — время создания записи (UTC).
	CreatedAt time.Time
}

// SubscriptionStatusAt возвращает статус подписки на момент now.
// Статус выводится из данных, а не хранится:
//   - ends_on > now            -> active;
//   - подписка когда-то была   -> expired;
//   - иначе                    -> free.
func (u User) SubscriptionStatusAt(now time.Time) SubscriptionStatus {
	if !u.SubscriptionEndsOn.IsZero() && u.SubscriptionEndsOn.After(now) {
		return SubscriptionActive
	}

	if u.SubscriptionID != "" {
		return SubscriptionExpired
	}

	return SubscriptionFree
}

// AuthorStats — агрегаты по контенту автора (для обогащения админской таблицы).
type AuthorStats struct {
	// ContentCount — число опубликованных элементов.
	ContentCount int64
	// TotalViews — суммарные просмотры по всем элементам.
	TotalViews int64
}

// AdminUser — строка админской таблицы: пользователь + производные поля.
type AdminUser struct {
	User
	// ContentCount — число элементов контента, опубликованных пользователем.
	ContentCount int64
	// TotalViews — суммарные просмотры контента пользователя.
	TotalViews int64
	// Subscription — вычисленный статус подписки.
	Subscription SubscriptionStatus
}

// ListUsersOptions — параметры постраничной выдачи пользователей.
//
// Особенности:
//   - Filter — подстрочный фильтр по username/email (без учёта регистра);
//   - PageToken == "" -> первая страница;
//   - PageSize <= 0 -> серверный default (config.LimitsConfig.DefaultPageSize).
type ListUsersOptions struct {
	Filter    string
	PageToken string
	PageSize  int32
}

// UsersPage — страница админской таблицы.
type UsersPage struct {
	Items []AdminUser
	// NextPageToken — курсор продолжения ("" — страниц больше нет).
	NextPageToken string
	// HasMore — есть ли данные за пределами этой страницы.
	HasMore bool
}
