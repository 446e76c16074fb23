package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/novacast/nova-backend/internal/models"
	"github.com/novacast/nova-backend/internal/ranking"
	"github.com/novacast/nova-backend/internal/storage"
)

// contentDoc — представление элемента контента в коллекции.
type contentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description"`
	Category      string             `bson:"category"`
	AuthorID      uuid.UUID          `bson:"author_id"`
	AudioKey      string             `bson:"audio_key"`
	ImageKey      string             `bson:"image_key"`
	Views         int64              `bson:"views"`
	TrendingScore float64            `bson:"trending_score"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// toModel конвертирует документ в доменную модель (временные метки — в UTC).
func (d contentDoc) toModel() models.ContentItem {
	return models.ContentItem{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		Category:      d.Category,
		AuthorID:      d.AuthorID,
		AudioKey:      d.AudioKey,
		ImageKey:      d.ImageKey,
		Views:         d.Views,
		TrendingScore: d.TrendingScore,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

// byViewsDesc — порядок листингов по популярности: views desc, created_at desc.
var byViewsDesc = bson.D{{Key: "views", Value: -1}, {Key: "created_at", Value: -1}}

// CreateContent вставляет новый элемент.
// Серверные поля: Views=0, TrendingScore=ranking.InitialScore, временные метки UTC.
func (m *Mongo) CreateContent(ctx context.Context, item models.ContentItem) (*models.ContentItem, error) {
	const op = "storage/mongo/CreateContent"

	// MongoDB DateTime хранит миллисекунды.
	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := contentDoc{
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		AuthorID:    item.AuthorID,
		AudioKey:    item.AudioKey,
		ImageKey:    item.ImageKey,
		Views:       0,
		// Новый элемент ещё не проходил через формулу: фиксированный рейтинг,
		// чтобы быть обнаружимым до первого просмотра.
		TrendingScore: ranking.InitialScore,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res, err := m.content.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := doc.toModel()
	return &out, nil
}

// ContentByID возвращает элемент по идентификатору.
// Некорректный формат id трактуется как «нет такой записи».
func (m *Mongo) ContentByID(ctx context.Context, id string) (*models.ContentItem, error) {
	const op = "storage/mongo/ContentByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc contentDoc
	if err := m.content.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// DeleteContent удаляет элемент. Если записи нет — storage.ErrNotFound.
func (m *Mongo) DeleteContent(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteContent"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.content.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ApplyView записывает счётчик, рейтинг и updated_at одним обновлением документа:
// счётчик и рейтинг, рассчитанный от него, попадают в БД в одной записи.
// Если записи нет — storage.ErrNotFound (частичного обновления не происходит).
func (m *Mongo) ApplyView(ctx context.Context, id string, views int64, score float64, now time.Time) error {
	const op = "storage/mongo/ApplyView"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.content.UpdateByID(ctx, oid, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "views", Value: views},
			{Key: "trending_score", Value: score},
			{Key: "updated_at", Value: now.UTC().Truncate(time.Millisecond)},
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListByViews возвращает до limit элементов по убыванию просмотров.
func (m *Mongo) ListByViews(ctx context.Context, limit int64) ([]models.ContentItem, error) {
	const op = "storage/mongo/ListByViews"

	return m.findContent(ctx, op, bson.D{}, byViewsDesc, limit)
}

// ListByCategories возвращает элементы указанных категорий по убыванию просмотров.
func (m *Mongo) ListByCategories(ctx context.Context, categories []string, limit int64) ([]models.ContentItem, error) {
	const op = "storage/mongo/ListByCategories"

	filter := bson.D{{Key: "category", Value: bson.D{{Key: "$in", Value: categories}}}}
	return m.findContent(ctx, op, filter, byViewsDesc, limit)
}

// ListTrending возвращает до limit элементов по убыванию trending_score
// (вторичный ключ — views desc).
func (m *Mongo) ListTrending(ctx context.Context, limit int64) ([]models.ContentItem, error) {
	const op = "storage/mongo/ListTrending"

	sort := bson.D{{Key: "trending_score", Value: -1}, {Key: "views", Value: -1}}
	return m.findContent(ctx, op, bson.D{}, sort, limit)
}

// ListByAuthor возвращает элементы автора по убыванию created_at.
func (m *Mongo) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int64) ([]models.ContentItem, error) {
	const op = "storage/mongo/ListByAuthor"

	filter := bson.D{{Key: "author_id", Value: authorID}}
	sort := bson.D{{Key: "created_at", Value: -1}}
	return m.findContent(ctx, op, filter, sort, limit)
}

// SearchByTitle — «быстрая» ветка поиска: текстовый индекс по title.
// Индекс матчит только целые токены/префиксы стемов, поэтому пустой результат
// здесь — повод для отката на ScanContent, а не ошибка.
func (m *Mongo) SearchByTitle(ctx context.Context, term string, limit int64) ([]models.ContentItem, error) {
	const op = "storage/mongo/SearchByTitle"

	filter := bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: term}}}}
	return m.findContent(ctx, op, filter, byViewsDesc, limit)
}

// ScanContent — откатный линейный поиск: подстрока без учёта регистра
// в любом из полей title/description/category.
func (m *Mongo) ScanContent(ctx context.Context, term string, limit int64) ([]models.ContentItem, error) {
	const op = "storage/mongo/ScanContent"

	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "title", Value: re}},
		bson.D{{Key: "description", Value: re}},
		bson.D{{Key: "category", Value: re}},
	}}}

	return m.findContent(ctx, op, filter, byViewsDesc, limit)
}

// findContent — общий путь выборки списка контента.
func (m *Mongo) findContent(ctx context.Context, op string, filter bson.D, sort bson.D, limit int64) ([]models.ContentItem, error) {
	findOpts := options.Find().SetSort(sort)
	if limit > 0 {
		findOpts = findOpts.SetLimit(limit)
	}

	cur, err := m.content.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.ContentItem
	for cur.Next(ctx) {
		var doc contentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}
