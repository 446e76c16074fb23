package log

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// Пакет тестов для pkg/log (logctx.go).
//
// Покрытие:
//   - From без логгера в контексте -> возвращает slog.Default();
//   - Into/From round-trip с явным *slog.Logger;
//   - устойчивость к «мусорным» значениям и *slog.Logger(nil) в контексте;
//   - «перекрытие» логгера дочерним контекстом без влияния на родительский.
//
// Важно: тесты меняют slog.Default(), поэтому намеренно НЕ используют t.Parallel().

func newSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestFrom_ReturnsDefault_WhenNoLoggerInContext —
// если логгер не положен в контекст, From возвращает текущий slog.Default().
func TestFrom_ReturnsDefault_WhenNoLoggerInContext(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	require.Equal(t, def, From(context.Background()))
}

// TestIntoAndFrom_RoundTrip —
// Into кладёт логгер в контекст, From извлекает его 1:1.
func TestIntoAndFrom_RoundTrip(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	l := newSilent()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
	require.Equal(t, def, From(context.Background()))
}

// TestFrom_ReturnsDefault_WhenStoredValueIsWrongTypeOrNil —
// From устойчив к «мусорным» значениям по нашему ключу и к *slog.Logger(nil).
func TestFrom_ReturnsDefault_WhenStoredValueIsWrongTypeOrNil(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
	def := newSilent()
	slog.SetDefault(def)

	ctxWrong := context.WithValue(context.Background(), ctxKey{}, "not-a-logger")
	require.Equal(t, def, From(ctxWrong))

	var nilLogger *slog.Logger
	ctxNil := context.WithValue(context.Background(), ctxKey{}, nilLogger)
	require.Equal(t, def, From(ctxNil))
}

// TestInto_ShadowParentLogger —
// дочерний контекст может «перекрыть» логгер родителя, не влияя на него.
func TestInto_ShadowParentLogger(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	parentL := newSilent()
	childL := newSilent()

	parent := Into(context.Background(), parentL)
	require.Equal(t, parentL, From(parent))

	child := Into(parent, childL)
	require.Equal(t, childL, From(child))
	require.Equal(t, parentL, From(parent))
}
