package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/novacast/nova-backend/internal/config"
	"github.com/novacast/nova-backend/internal/models"
	"github.com/novacast/nova-backend/internal/ranking"
	"github.com/novacast/nova-backend/internal/storage"
	"github.com/novacast/nova-backend/mocks"
)

// Файл unit-тестов для сервисного слоя (content.go).
//
// Покрываем ключевую бизнес-логику:
//  - CreateContent:
//      * валидация author_id/title;
//      * нормализация полей (trim, нижний регистр категории);
//  - RecordView:
//      * счётчик и рейтинг считаются от одного значения и уходят одной записью;
//      * маппинг storage.ErrNotFound -> service.ErrNotFound;
//      * валидация входа до обращения к стораджу;
//  - SearchContent:
//      * выбор ветки (все / категории / поиск);
//      * откат на скан только при нуле результатов индексного поиска;
//      * дофильтрация по категориям в памяти;
//      * пустой результат — пустой срез, не nil;
//  - ListTrending / ListByAuthor: лимиты из конфига и маппинг ошибок.

// newSvcForTest — фабрика Service с контролируемым cfg и мок-хранилищами.
func newSvcForTest(t *testing.T, st storage.Storage, media storage.MediaStorage) *Service {
	t.Helper()
	cfg := config.Config{
		Limits: config.LimitsConfig{
			SearchLimit:     50,
			TrendingLimit:   20,
			DefaultPageSize: 10,
			MaxPageSize:     100,
			AuthorLimit:     100,
		},
	}

	return New(st, media, cfg)
}

// TestCreateContent_Validation — пустой author_id/title -> ErrInvalidArgument,
// сторадж не вызывается.
func TestCreateContent_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, mockSt, nil)

	_, err := svc.CreateContent(context.Background(), CreateContentInput{
		Title: "title",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.CreateContent(context.Background(), CreateContentInput{
		AuthorID: uuid.New(),
		Title:    "   ",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestCreateContent_Normalizes — trim заголовка/описания, нижний регистр категории.
func TestCreateContent_Normalizes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	author := uuid.New()

	var captured models.ContentItem
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		CreateContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item models.ContentItem) (*models.ContentItem, error) {
			captured = item
			return &item, nil
		})

	svc := newSvcForTest(t, mockSt, nil)

	_, err := svc.CreateContent(context.Background(), CreateContentInput{
		Title:       "  Neural Radio  ",
		Description: " weekly digest ",
		Category:    " Tech ",
		AuthorID:    author,
	})
	require.NoError(t, err)
	require.Equal(t, "Neural Radio", captured.Title)
	require.Equal(t, "weekly digest", captured.Description)
	require.Equal(t, "tech", captured.Category)
	require.Equal(t, author, captured.AuthorID)
}

// TestContentByID_NotFound_Mapped — storage.ErrNotFound -> ErrNotFound сервиса.
func TestContentByID_NotFound_Mapped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ContentByID(gomock.Any(), "id-404").
		Return(nil, storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt, nil)

	_, err := svc.ContentByID(context.Background(), "id-404")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestRecordView_WritesCountAndScoreTogether — счётчик инкрементируется от
// клиентского значения, рейтинг считается от того же счётчика, запись одна.
func TestRecordView_WritesCountAndScoreTogether(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	createdAt := time.Now().UTC().Add(-10 * 24 * time.Hour)
	item := &models.ContentItem{
		ID:        "68b0c1d2e3f4a5b6c7d8e9f0",
		CreatedAt: createdAt,
	}

	var gotViews int64
	var gotScore float64
	var gotNow time.Time

	mockSt := mocks.NewMockStorage(ctrl)
	gomock.InOrder(
		mockSt.EXPECT().
			ContentByID(gomock.Any(), item.ID).
			Return(item, nil),
		mockSt.EXPECT().
			ApplyView(gomock.Any(), item.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, views int64, score float64, now time.Time) error {
				gotViews = views
				gotScore = score
				gotNow = now
				return nil
			}),
	)

	svc := newSvcForTest(t, mockSt, nil)

	err := svc.RecordView(context.Background(), RecordViewInput{ContentID: item.ID, Views: 41})
	require.NoError(t, err)
	require.Equal(t, int64(42), gotViews)
	require.InDelta(t, ranking.Score(42, createdAt, gotNow), gotScore, 1e-12)
}

// TestRecordView_Validation — пустой id и отрицательный счётчик отклоняются
// до обращения к стораджу.
func TestRecordView_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, mockSt, nil)

	err := svc.RecordView(context.Background(), RecordViewInput{ContentID: "", Views: 1})
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = svc.RecordView(context.Background(), RecordViewInput{ContentID: "id", Views: -1})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestRecordView_NotFound_Mapped — отсутствующий элемент: ErrNotFound, записи нет.
func TestRecordView_NotFound_Mapped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ContentByID(gomock.Any(), "id-404").
		Return(nil, storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt, nil)

	err := svc.RecordView(context.Background(), RecordViewInput{ContentID: "id-404", Views: 5})
	require.ErrorIs(t, err, ErrNotFound)
}

// TestSearchContent_NoFilters — ни поиска, ни категорий: листинг по просмотрам
// с лимитом из конфига.
func TestSearchContent_NoFilters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := []models.ContentItem{{Title: "a"}, {Title: "b"}}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListByViews(gomock.Any(), int64(50)).
		Return(want, nil)

	svc := newSvcForTest(t, mockSt, nil)

	got, err := svc.SearchContent(context.Background(), models.SearchOptions{})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestSearchContent_CategoriesOnly — фильтр уходит в сторадж нормализованным.
func TestSearchContent_CategoriesOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var captured []string
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListByCategories(gomock.Any(), gomock.Any(), int64(50)).
		DoAndReturn(func(_ context.Context, categories []string, _ int64) ([]models.ContentItem, error) {
			captured = categories
			return nil, nil
		})

	svc := newSvcForTest(t, mockSt, nil)

	got, err := svc.SearchContent(context.Background(), models.SearchOptions{
		Categories: []string{" Tech ", "tech", "", "Science"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"tech", "science"}, captured)
	require.NotNil(t, got, "empty result must be a slice, not nil")
	require.Empty(t, got)
}

// TestSearchContent_IndexHit_NoFallback — индексный поиск вернул результаты:
// скан не вызывается.
func TestSearchContent_IndexHit_NoFallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	found := []models.ContentItem{
		{Title: "GPT digest", Views: 5},
		{Title: "GPT weekly", Views: 9},
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		SearchByTitle(gomock.Any(), "gpt", int64(50)).
		Return(found, nil)

	svc := newSvcForTest(t, mockSt, nil)

	got, err := svc.SearchContent(context.Background(), models.SearchOptions{Search: "gpt"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Порядок детерминированный: views desc.
	require.Equal(t, "GPT weekly", got[0].Title)
	require.Equal(t, "GPT digest", got[1].Title)
}

// TestSearchContent_FallbackOnEmptyIndex — ноль результатов индексного поиска
// включает подстрочный скан.
func TestSearchContent_FallbackOnEmptyIndex(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanned := []models.ContentItem{{Title: "partial match", Views: 3}}

	mockSt := mocks.NewMockStorage(ctrl)
	gomock.InOrder(
		mockSt.EXPECT().
			SearchByTitle(gomock.Any(), "part", int64(50)).
			Return(nil, nil),
		mockSt.EXPECT().
			ScanContent(gomock.Any(), "part", int64(50)).
			Return(scanned, nil),
	)

	svc := newSvcForTest(t, mockSt, nil)

	got, err := svc.SearchContent(context.Background(), models.SearchOptions{Search: "part"})
	require.NoError(t, err)
	require.Equal(t, scanned, got)
}

// TestSearchContent_NoFallbackAfterCategoryFilter — индексный поиск нашёл
// результаты, но фильтр по категориям всё отсеял: скан НЕ включается,
// возвращается пустой срез.
func TestSearchContent_NoFallbackAfterCategoryFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	found := []models.ContentItem{{Title: "GPT digest", Category: "tech"}}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		SearchByTitle(gomock.Any(), "gpt", int64(50)).
		Return(found, nil)

	svc := newSvcForTest(t, mockSt, nil)

	got, err := svc.SearchContent(context.Background(), models.SearchOptions{
		Search:     "gpt",
		Categories: []string{"science"},
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

// TestSearchContent_SearchWithCategories — дофильтрация по категориям в памяти.
func TestSearchContent_SearchWithCategories(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	found := []models.ContentItem{
		{Title: "a", Category: "tech", Views: 1},
		{Title: "b", Category: "science", Views: 7},
		{Title: "c", Category: "tech", Views: 4},
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		SearchByTitle(gomock.Any(), "x", int64(50)).
		Return(found, nil)

	svc := newSvcForTest(t, mockSt, nil)

	got, err := svc.SearchContent(context.Background(), models.SearchOptions{
		Search:     "x",
		Categories: []string{"TECH"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "c", got[0].Title)
	require.Equal(t, "a", got[1].Title)
}

// TestSearchContent_StorageError — ошибка стораджа -> ErrInternal.
func TestSearchContent_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListByViews(gomock.Any(), int64(50)).
		Return(nil, errors.New("db fail"))

	svc := newSvcForTest(t, mockSt, nil)

	_, err := svc.SearchContent(context.Background(), models.SearchOptions{})
	require.ErrorIs(t, err, ErrInternal)
}

// TestListTrending_UsesConfigLimit — лимит трендовой выборки берётся из конфига.
func TestListTrending_UsesConfigLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ListTrending(gomock.Any(), int64(20)).
		Return(nil, nil)

	svc := newSvcForTest(t, mockSt, nil)

	got, err := svc.ListTrending(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

// TestListByAuthor_Validation — нулевой author_id отклоняется до стораджа.
func TestListByAuthor_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, mockSt, nil)

	_, err := svc.ListByAuthor(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
