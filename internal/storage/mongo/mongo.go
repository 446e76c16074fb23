package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/novacast/nova-backend/internal/config"
)

const (
	contentCollection = "content"
	usersCollection   = "users"
	defaultDBName     = "nova"
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	cfg     *config.Config
	client  *mongodriver.Client
	db      *mongodriver.Database
	content *mongodriver.Collection
	users   *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции
// и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	dbName := databaseFromURI(cfg.DB.URL)
	db := cli.Database(dbName)

	m := &Mongo{
		cfg:     cfg,
		client:  cli,
		db:      db,
		content: db.Collection(contentCollection),
		users:   db.Collection(usersCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые сервису.
//
// content:
//   - текстовый индекс по title — «быстрая» ветка поиска;
//   - views desc + created_at desc — листинги по популярности;
//   - trending_score desc + views desc — выборка трендов;
//   - category + views desc — фильтр по категориям;
//   - author_id + created_at desc — выдача по автору и агрегаты.
//
// users:
//   - created_at desc + _id desc — ключ курсорной пагинации админской таблицы.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	contentModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: "text"}},
			Options: options.Index().SetName("title_text"),
		},
		{
			Keys:    bson.D{{Key: "views", Value: -1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("views_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "trending_score", Value: -1}, {Key: "views", Value: -1}},
			Options: options.Index().SetName("trending_views_desc"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "views", Value: -1}},
			Options: options.Index().SetName("category_views_desc"),
		},
		{
			Keys:    bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("author_created_desc"),
		},
	}

	if _, err := m.content.Indexes().CreateMany(ctx, contentModels); err != nil {
		return fmt.Errorf("mongo ensure content indexes: %w", err)
	}

	userModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("created_desc_id_desc"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_asc"),
		},
	}

	if _, err := m.users.Indexes().CreateMany(ctx, userModels); err != nil {
		return fmt.Errorf("mongo ensure users indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся расшифровке, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
