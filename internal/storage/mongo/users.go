package mongo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/novacast/nova-backend/internal/models"
	"github.com/novacast/nova-backend/internal/storage"
)

// userDoc — представление пользователя в коллекции.
// _id совпадает с идентификатором identity-провайдера.
type userDoc struct {
	ID                 uuid.UUID `bson:"_id"`
	Username           string    `bson:"username"`
	Email              string    `bson:"email"`
	Tier               string    `bson:"tier"`
	SubscriptionID     string    `bson:"subscription_id"`
	SubscriptionEndsOn time.Time `bson:"subscription_ends_on"`
	Credits            int64     `bson:"credits"`
	CreatedAt          time.Time `bson:"created_at"`
}

func (d userDoc) toModel() models.User {
	return models.User{
		ID:                 d.ID,
		Username:           d.Username,
		Email:              d.Email,
		Tier:               models.Tier(d.Tier),
		SubscriptionID:     d.SubscriptionID,
		SubscriptionEndsOn: d.SubscriptionEndsOn.UTC(),
		Credits:            d.Credits,
		CreatedAt:          d.CreatedAt.UTC(),
	}
}

// encodeUserCursor кодирует пару (created_at, _id) в непрозрачный токен для клиента.
func encodeUserCursor(t time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%d|%s", t.UTC().UnixNano(), id.String())

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeUserCursor декодирует токен обратно в пару ключей.
func decodeUserCursor(token string) (time.Time, uuid.UUID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("bad parts")
	}

	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	return time.Unix(0, nanos).UTC(), id, nil
}

// listUsersFilter собирает фильтр выборки пользователей.
// Подстрочный фильтр и курсорный keyset — оба $or-выражения; в одном документе
// два ключа "$or" дают дубликат имени поля, поведение которого Mongo не
// определяет, поэтому несколько предикатов объединяются явным $and.
func listUsersFilter(opts models.ListUsersOptions) (bson.D, error) {
	var preds bson.A

	if term := strings.TrimSpace(opts.Filter); term != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		preds = append(preds, bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "username", Value: re}},
			bson.D{{Key: "email", Value: re}},
		}}})
	}

	// Курсор "меньше" для DESC сортировки.
	if strings.TrimSpace(opts.PageToken) != "" {
		t, id, err := decodeUserCursor(opts.PageToken)
		if err != nil {
			return nil, err
		}

		preds = append(preds, bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "created_at", Value: bson.D{{Key: "$lt", Value: t}}}},
			bson.D{
				{Key: "created_at", Value: t},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: id}}},
			},
		}}})
	}

	switch len(preds) {
	case 0:
		return bson.D{}, nil
	case 1:
		return preds[0].(bson.D), nil
	default:
		return bson.D{{Key: "$and", Value: preds}}, nil
	}
}

// UserByID возвращает пользователя по идентификатору.
func (m *Mongo) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage/mongo/UserByID"

	var doc userDoc
	if err := m.users.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// ListUsers возвращает страницу пользователей.
// Сортировка: created_at DESC, _id DESC; курсор — пара (created_at, _id).
// Сервер не хранит историю страниц: откат «назад» — забота клиента
// (он переиспользует ранее выданные токены). При некорректном page_token —
// storage.ErrInvalidCursor.
//
// Третий результат (hasMore) вычисляется пробой limit+1: лишний документ
// отбрасывается и сигнализирует о наличии следующей страницы.
func (m *Mongo) ListUsers(ctx context.Context, opts models.ListUsersOptions) ([]models.User, string, bool, error) {
	const op = "storage/mongo/ListUsers"

	limit := int64(opts.PageSize)
	if limit <= 0 {
		limit = int64(m.cfg.Limits.DefaultPageSize)
	}

	if max := int64(m.cfg.Limits.MaxPageSize); max > 0 && limit > max {
		limit = max
	}

	filter, err := listUsersFilter(opts)
	if err != nil {
		return nil, "", false, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit + 1) // проба на наличие следующей страницы

	cur, err := m.users.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, "", false, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, "", false, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, "", false, fmt.Errorf("%s: cursor: %w", op, err)
	}

	hasMore := int64(len(items)) > limit
	if hasMore {
		items = items[:limit]
	}

	var next string
	if n := len(items); n > 0 && hasMore {
		last := items[n-1]
		next = encodeUserCursor(last.CreatedAt, last.ID)
	}

	return items, next, hasMore, nil
}

// AuthorStatsFor одной агрегацией считает число публикаций и сумму просмотров
// для набора авторов (страницы админской таблицы).
func (m *Mongo) AuthorStatsFor(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID]models.AuthorStats, error) {
	const op = "storage/mongo/AuthorStatsFor"

	out := make(map[uuid.UUID]models.AuthorStats, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}

	pipeline := mongodriver.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "author_id", Value: bson.D{{Key: "$in", Value: authorIDs}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author_id"},
			{Key: "content_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}

	cur, err := m.content.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			AuthorID     uuid.UUID `bson:"_id"`
			ContentCount int64     `bson:"content_count"`
			TotalViews   int64     `bson:"total_views"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		out[row.AuthorID] = models.AuthorStats{
			ContentCount: row.ContentCount,
			TotalViews:   row.TotalViews,
		}
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return out, nil
}

// UpdateTier меняет тариф пользователя и возвращает обновлённую запись.
func (m *Mongo) UpdateTier(ctx context.Context, id uuid.UUID, tier models.Tier) (*models.User, error) {
	const op = "storage/mongo/UpdateTier"

	var doc userDoc
	err := m.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "tier", Value: string(tier)}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// AdjustCredits изменяет баланс кредитов на delta.
// Для отрицательной delta фильтр требует credits >= -delta: итоговый баланс
// никогда не уходит ниже нуля (проверка и запись — одно атомарное обновление).
func (m *Mongo) AdjustCredits(ctx context.Context, id uuid.UUID, delta int64) (*models.User, error) {
	const op = "storage/mongo/AdjustCredits"

	filter := bson.D{{Key: "_id", Value: id}}
	if delta < 0 {
		filter = append(filter, bson.E{Key: "credits", Value: bson.D{{Key: "$gte", Value: -delta}}})
	}

	var doc userDoc
	err := m.users.FindOneAndUpdate(ctx,
		filter,
		bson.D{{Key: "$inc", Value: bson.D{{Key: "credits", Value: delta}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			// Либо пользователя нет, либо не хватает кредитов — различаем.
			if _, uerr := m.UserByID(ctx, id); uerr != nil {
				return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
			}

			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// ExtendSubscription продлевает подписку на days суток от max(now, ends_on).
// Read-modify-write по одному документу; last-writer-wins допустим.
func (m *Mongo) ExtendSubscription(ctx context.Context, id uuid.UUID, days int32) (*models.User, error) {
	const op = "storage/mongo/ExtendSubscription"

	var current userDoc
	if err := m.users.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&current); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	base := now
	if current.SubscriptionEndsOn.After(now) {
		base = current.SubscriptionEndsOn.UTC()
	}
	endsOn := base.Add(time.Duration(days) * 24 * time.Hour)

	var doc userDoc
	err := m.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "subscription_ends_on", Value: endsOn}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}
