package cursorstack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Файл unit-тестов истории курсоров.
//
// Покрываем:
//   - свежая история: одна запись "" и первая страница;
//   - Push/Back: переходы туда-обратно восстанавливают прежние токены;
//   - Back с первой страницы невозможен;
//   - пустой next не двигает историю;
//   - Reset возвращает к глубине 1 (смена фильтра);
//   - повторный заход вперёд после отката переиспользует хвост,
//     несовпавший токен хвост обрезает.

// TestNew_StartsAtFirstPage — свежая история указывает на первую страницу.
func TestNew_StartsAtFirstPage(t *testing.T) {
	t.Parallel()

	h := New()
	require.Equal(t, "", h.Current())
	require.Equal(t, 1, h.Page())
	require.Equal(t, 1, h.Depth())
}

// TestPushBack_RoundTrip — вперёд-вперёд-назад восстанавливает курсор страницы 2.
func TestPushBack_RoundTrip(t *testing.T) {
	t.Parallel()

	h := New()

	require.True(t, h.Push("c1")) // -> страница 2
	require.Equal(t, "c1", h.Current())
	require.Equal(t, 2, h.Page())

	require.True(t, h.Push("c2")) // -> страница 3
	require.Equal(t, "c2", h.Current())
	require.Equal(t, 3, h.Page())

	tok, ok := h.Back() // -> страница 2
	require.True(t, ok)
	require.Equal(t, "c1", tok)
	require.Equal(t, 2, h.Page())

	tok, ok = h.Back() // -> страница 1
	require.True(t, ok)
	require.Equal(t, "", tok)
	require.Equal(t, 1, h.Page())
}

// TestBack_FromFirstPage — с первой страницы откатываться некуда.
func TestBack_FromFirstPage(t *testing.T) {
	t.Parallel()

	h := New()
	_, ok := h.Back()
	require.False(t, ok)
	require.Equal(t, 1, h.Page())
}

// TestPush_EmptyNextIgnored — пустой курсор продолжения не двигает историю.
func TestPush_EmptyNextIgnored(t *testing.T) {
	t.Parallel()

	h := New()
	require.False(t, h.Push(""))
	require.Equal(t, 1, h.Page())
	require.Equal(t, 1, h.Depth())
}

// TestReset_OnFilterChange — Reset всегда возвращает к [""] глубины 1.
func TestReset_OnFilterChange(t *testing.T) {
	t.Parallel()

	h := New()
	h.Push("c1")
	h.Push("c2")
	require.Equal(t, 3, h.Depth())

	h.Reset()
	require.Equal(t, 1, h.Depth())
	require.Equal(t, "", h.Current())
	require.Equal(t, 1, h.Page())
}

// TestPush_AfterBack_ReusesTail — после отката повторный переход вперёд
// с тем же токеном переиспользует хвост истории.
func TestPush_AfterBack_ReusesTail(t *testing.T) {
	t.Parallel()

	h := New()
	h.Push("c1")
	h.Push("c2")
	h.Back()
	require.Equal(t, 2, h.Page())
	require.Equal(t, 3, h.Depth())

	require.True(t, h.Push("c2"))
	require.Equal(t, 3, h.Page())
	require.Equal(t, 3, h.Depth(), "хвост не должен дублироваться")
}

// TestPush_AfterBack_TruncatesStaleTail — несовпавший токен обрезает хвост.
func TestPush_AfterBack_TruncatesStaleTail(t *testing.T) {
	t.Parallel()

	h := New()
	h.Push("c1")
	h.Push("c2")
	h.Back()

	require.True(t, h.Push("c2-new"))
	require.Equal(t, 3, h.Page())
	require.Equal(t, "c2-new", h.Current())
	require.Equal(t, 3, h.Depth())
}
