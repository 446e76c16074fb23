// storage определяет контракты доступа к хранилищам для nova-backend.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/novacast/nova-backend/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidArgument — некорректные входные данные на уровне стораджа.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ContentStorage описывает операции над сущностью models.ContentItem.
type ContentStorage interface {
	// CreateContent сохраняет новый элемент; ID, Views, TrendingScore и
	// временные метки проставляет хранилище. Возвращает созданную запись.
	CreateContent(ctx context.Context, item models.ContentItem) (*models.ContentItem, error)
	// ContentByID возвращает элемент по идентификатору.
	// Если запись не найдена — ErrNotFound.
	ContentByID(ctx context.Context, id string) (*models.ContentItem, error)
	// DeleteContent удаляет элемент. Если записи нет — ErrNotFound.
	DeleteContent(ctx context.Context, id string) error
	// ApplyView атомарно записывает новый счётчик просмотров, новый рейтинг
	// и updated_at одним обновлением документа. Если записи нет — ErrNotFound.
	ApplyView(ctx context.Context, id string, views int64, score float64, now time.Time) error
	// ListByViews возвращает до limit элементов по убыванию просмотров
	// (вторичный ключ — created_at desc).
	ListByViews(ctx context.Context, limit int64) ([]models.ContentItem, error)
	// ListByCategories — как ListByViews, но только элементы указанных категорий.
	ListByCategories(ctx context.Context, categories []string, limit int64) ([]models.ContentItem, error)
	// ListTrending возвращает до limit элементов по убыванию trending_score
	// (вторичный ключ — views desc).
	ListTrending(ctx context.Context, limit int64) ([]models.ContentItem, error)
	// ListByAuthor возвращает элементы автора по убыванию created_at.
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int64) ([]models.ContentItem, error)
	// SearchByTitle — индексный (текстовый) поиск по заголовку.
	// Пустой результат — не ошибка: вызывающая сторона решает, уходить ли в скан.
	SearchByTitle(ctx context.Context, term string, limit int64) ([]models.ContentItem, error)
	// ScanContent — медленный подстрочный поиск без учёта регистра по
	// title/description/category (откат, когда индексный поиск пуст).
	ScanContent(ctx context.Context, term string, limit int64) ([]models.ContentItem, error)
}

// UsersStorage описывает операции над сущностью models.User.
type UsersStorage interface {
	// UserByID возвращает пользователя. Если записи нет — ErrNotFound.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// ListUsers возвращает страницу пользователей, отсортированных по
	// created_at desc. При некорректном page_token — ErrInvalidCursor.
	// Обогащение производными полями выполняет сервисный слой.
	ListUsers(ctx context.Context, opts models.ListUsersOptions) ([]models.User, string, bool, error)
	// AuthorStatsFor возвращает агрегаты по контенту для набора авторов
	// (число публикаций, сумма просмотров). Авторы без контента в карте отсутствуют.
	AuthorStatsFor(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID]models.AuthorStats, error)
	// UpdateTier меняет тариф. Если записи нет — ErrNotFound.
	UpdateTier(ctx context.Context, id uuid.UUID, tier models.Tier) (*models.User, error)
	// AdjustCredits изменяет баланс кредитов на delta (может быть отрицательным);
	// итоговый баланс не опускается ниже нуля — иначе ErrInvalidArgument.
	AdjustCredits(ctx context.Context, id uuid.UUID, delta int64) (*models.User, error)
	// ExtendSubscription продлевает подписку на days суток от max(now, ends_on).
	ExtendSubscription(ctx context.Context, id uuid.UUID, days int32) (*models.User, error)
}

// Storage задаёт полный контракт доступа к документной БД.
type Storage interface {
	ContentStorage
	UsersStorage
	Close(ctx context.Context) error
}
