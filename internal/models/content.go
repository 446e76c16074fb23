// models содержит доменные сущности nova-backend.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Категории контента. Категория хранится строкой: помимо фиксированного
// набора допускаются произвольные значения от генератора контента.
const (
	CategorySports        = "sports"
	CategoryEntertainment = "entertainment"
	CategoryTechnology    = "technology"
	CategoryBusiness      = "business"
)

// ContentItem — доменная сущность единицы контента (эпизод/новость).
//
// Особенности:
//   - ID — hex ObjectID документа (непрозрачный для клиентов);
//   - TrendingScore всегда пересчитывается вместе с Views в одной записи
//     и никогда не выставляется независимо от события просмотра;
//   - Временные метки — в UTC.
type ContentItem struct {
	// ID — уникальный идентификатор контента.
	ID string
	// Title — заголовок.
	Title string
	// Description — описание/тизер.
	Description string
	// Category — категория (sports/entertainment/technology/business или произвольная).
	Category string
	// AuthorID — идентификатор автора (слабая ссылка на User).
	AuthorID uuid.UUID
	// AudioKey — ключ аудио-файла в объектном хранилище.
	AudioKey string
	// ImageKey — ключ обложки в объектном хранилище.
	ImageKey string
	// Views — счётчик просмотров (>= 0).
	Views int64
	// TrendingScore — рейтинг «популярность+свежесть», пересчитывается на каждый просмотр.
	TrendingScore float64
	// CreatedAt — время публикации (UTC).
	CreatedAt time.Time
	// UpdatedAt — время последнего изменения (UTC).
	UpdatedAt time.Time
}

// SearchOptions — параметры выборки контента.
//
// Комбинации полей задают ветку поиска:
//   - Search == "" и len(Categories) == 0 — все элементы по убыванию просмотров;
//   - только Categories — фильтр по категориям;
//   - Search != "" — индексный поиск по заголовку с откатом
//     на подстрочный скан по title/description/category.
type SearchOptions struct {
	Search     string
	Categories []string
}

// HasSearch сообщает, задан ли поисковый запрос.
func (o SearchOptions) HasSearch() bool {
	return o.Search != ""
}

// HasCategories сообщает, задан ли фильтр по категориям.
func (o SearchOptions) HasCategories() bool {
	return len(o.Categories) > 0
}
