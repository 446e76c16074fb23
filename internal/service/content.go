package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/novacast/nova-backend/internal/models"
	"github.com/novacast/nova-backend/internal/ranking"
	"github.com/novacast/nova-backend/internal/storage"
	"github.com/novacast/nova-backend/pkg/log"
)

// Входные структуры сервисного слоя.

// CreateContentInput — публикация нового элемента контента.
type CreateContentInput struct {
	Title       string
	Description string
	Category    string
	AuthorID    uuid.UUID
	AudioKey    string
	ImageKey    string
}

// RecordViewInput — событие просмотра.
// Views — счётчик, который видел клиент на момент просмотра (ещё без текущего).
type RecordViewInput struct {
	ContentID string
	Views     int64
}

// CreateContent публикует новый элемент.
//
// Валидация:
//   - AuthorID обязателен (uuid.Nil -> ErrInvalidArgument);
//   - Title нормализуется (TrimSpace) и не должен быть пустым;
//   - пустая Category не запрещена: генератор может прислать произвольную строку.
//
// Серверные поля (Views=0, рейтинг ranking.InitialScore, метки времени)
// проставляет хранилище.
func (s *Service) CreateContent(ctx context.Context, in CreateContentInput) (*models.ContentItem, error) {
	const op = "service/content/CreateContent"

	lg := log.From(ctx).With("op", op, "author_id", in.AuthorID.String())

	if in.AuthorID == uuid.Nil {
		lg.Warn("invalid argument: empty author_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	item := models.ContentItem{
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.ToLower(strings.TrimSpace(in.Category)),
		AuthorID:    in.AuthorID,
		AudioKey:    in.AudioKey,
		ImageKey:    in.ImageKey,
	}

	result, err := s.storage.CreateContent(ctx, item)
	if err != nil {
		lg.Error("storage error on CreateContent", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("content_created", "content_id", result.ID)
	return result, nil
}

// ContentByID возвращает элемент по идентификатору.
//
// Ошибки:
//   - ErrNotFound — если запись отсутствует (маппинг storage.ErrNotFound);
//   - прочие ошибки стораджа — ErrInternal.
func (s *Service) ContentByID(ctx context.Context, id string) (*models.ContentItem, error) {
	const op = "service/content/ContentByID"

	lg := log.From(ctx).With("op", op, "content_id", id)

	if strings.TrimSpace(id) == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	item, err := s.storage.ContentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("content not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on ContentByID", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return item, nil
}

// DeleteContent удаляет элемент. Операция админская: личность вызывающего
// проверяется до обращения к данным.
func (s *Service) DeleteContent(ctx context.Context, id string) error {
	const op = "service/content/DeleteContent"

	lg := log.From(ctx).With("op", op, "content_id", id)

	if err := s.requireAdmin(ctx); err != nil {
		lg.Warn("permission denied")
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteContent(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("content not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on DeleteContent", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("content_deleted")
	return nil
}

// RecordView фиксирует просмотр: новый счётчик и рейтинг, рассчитанный от
// этого же счётчика, записываются одним обновлением документа. Рейтинг никогда
// не пересчитывается на чтении и не выставляется отдельно от просмотра.
//
// Ошибки:
//   - ErrInvalidArgument — пустой id или отрицательный счётчик;
//   - ErrNotFound — элемент отсутствует (частичного обновления не происходит).
func (s *Service) RecordView(ctx context.Context, in RecordViewInput) error {
	const op = "service/content/RecordView"

	lg := log.From(ctx).With("op", op, "content_id", in.ContentID)

	if strings.TrimSpace(in.ContentID) == "" {
		lg.Warn("invalid argument: empty content_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Views < 0 {
		lg.Warn("invalid argument: negative views", "views", in.Views)
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	// created_at неизменяем, поэтому чтение до записи не делает рейтинг
	// «устаревшим»: score считается от того же счётчика, что попадёт в запись.
	item, err := s.storage.ContentByID(ctx, in.ContentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("content not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on RecordView read", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	now := time.Now().UTC()
	views := in.Views + 1
	score := ranking.Score(views, item.CreatedAt, now)

	if err := s.storage.ApplyView(ctx, in.ContentID, views, score, now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("content vanished before apply")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on ApplyView", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("view_recorded", "views", views)
	return nil
}

// SearchContent разрешает запрос листинга в ранжированный список.
//
// Ветки (в порядке приоритета):
//  1. ни поиска, ни категорий — все элементы по убыванию просмотров;
//  2. только категории — фильтр по категориям, по убыванию просмотров;
//  3. поисковый запрос — сначала индексный поиск по заголовку; при нуле
//     результатов — откат на подстрочный скан по title/description/category;
//  4. поиск + категории — результат индексного поиска дофильтровывается
//     по категориям в памяти (фильтр не уходит в индексный запрос).
//
// Выдача всегда обрезается лимитом cfg.Limits.SearchLimit; результаты
// отсортированы по views desc, created_at desc. «Нет результатов» — не
// ошибка: возвращается пустой срез во всех ветках.
func (s *Service) SearchContent(ctx context.Context, opts models.SearchOptions) ([]models.ContentItem, error) {
	const op = "service/content/SearchContent"

	lg := log.From(ctx).With(
		"op", op,
		"has_search", opts.HasSearch(),
		"categories", len(opts.Categories),
	)

	limit := s.cfg.Limits.SearchLimit
	opts.Search = strings.TrimSpace(opts.Search)
	categories := normalizeCategories(opts.Categories)

	var (
		items []models.ContentItem
		err   error
	)

	switch {
	case opts.Search == "" && len(categories) == 0:
		items, err = s.storage.ListByViews(ctx, limit)

	case opts.Search == "":
		items, err = s.storage.ListByCategories(ctx, categories, limit)

	default:
		items, err = s.searchWithFallback(ctx, opts.Search, categories, limit)
	}

	if err != nil {
		lg.Error("storage error on SearchContent", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if items == nil {
		items = []models.ContentItem{}
	}

	lg.Info("search_content_ok", "items", len(items))
	return items, nil
}

// searchWithFallback — ветка с поисковым запросом.
// Откат на скан происходит только когда индексный поиск вернул ноль
// результатов ДО фильтрации по категориям: быстрый путь остаётся
// авторитетным, даже если после фильтра ничего не осталось.
func (s *Service) searchWithFallback(ctx context.Context, term string, categories []string, limit int64) ([]models.ContentItem, error) {
	items, err := s.storage.SearchByTitle(ctx, term, limit)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		items, err = s.storage.ScanContent(ctx, term, limit)
		if err != nil {
			return nil, err
		}
	}

	if len(categories) > 0 {
		items = filterByCategories(items, categories)
	}

	sortByViews(items)
	if int64(len(items)) > limit {
		items = items[:limit]
	}

	return items, nil
}

// ListTrending возвращает трендовую выборку фиксированного размера
// (cfg.Limits.TrendingLimit): по убыванию рейтинга, при равенстве — по просмотрам.
func (s *Service) ListTrending(ctx context.Context) ([]models.ContentItem, error) {
	const op = "service/content/ListTrending"

	lg := log.From(ctx).With("op", op)

	items, err := s.storage.ListTrending(ctx, s.cfg.Limits.TrendingLimit)
	if err != nil {
		lg.Error("storage error on ListTrending", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if items == nil {
		items = []models.ContentItem{}
	}

	return items, nil
}

// ListByAuthor возвращает публикации автора (новые сверху).
func (s *Service) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.ContentItem, error) {
	const op = "service/content/ListByAuthor"

	lg := log.From(ctx).With("op", op, "author_id", authorID.String())

	if authorID == uuid.Nil {
		lg.Warn("invalid argument: empty author_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	items, err := s.storage.ListByAuthor(ctx, authorID, s.cfg.Limits.AuthorLimit)
	if err != nil {
		lg.Error("storage error on ListByAuthor", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if items == nil {
		items = []models.ContentItem{}
	}

	return items, nil
}

// normalizeCategories чистит фильтр: trim, нижний регистр, без пустых и дублей.
func normalizeCategories(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}

// filterByCategories оставляет только элементы перечисленных категорий.
// Выполняется в памяти, после поиска: индексный запрос про категории не знает.
func filterByCategories(items []models.ContentItem, categories []string) []models.ContentItem {
	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}

	out := items[:0]
	for _, it := range items {
		if _, ok := allowed[strings.ToLower(it.Category)]; ok {
			out = append(out, it)
		}
	}

	return out
}

// sortByViews — детерминированный порядок выдачи: views desc, created_at desc.
func sortByViews(items []models.ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Views != items[j].Views {
			return items[i].Views > items[j].Views
		}

		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
