// ranking содержит расчёт trending-рейтинга контента.
//
// Рейтинг — чистая функция от (просмотры, возраст публикации):
// логарифм просмотров гасит эффект «вирусного» элемента, линейный
// 30-дневный спад свежести даёт новым публикациям шанс против старых
// многопросмотровых. Вызывается ровно один раз на событие просмотра,
// вместе с записью нового счётчика; на чтении рейтинг не пересчитывается.
package ranking

import (
	"math"
	"time"
)

const (
	// viewWeight — вес популярности в итоговом рейтинге.
	viewWeight = 0.7
	// recencyWeight — вес свежести.
	recencyWeight = 0.3
	// freshnessWindowDays — окно, за пределами которого свежесть равна нулю.
	freshnessWindowDays = 30.0

	// InitialScore — рейтинг только что опубликованного элемента (ни одного
	// просмотра). Выставляется константой, а не формулой, чтобы новый контент
	// был обнаружим до первого просмотра.
	InitialScore = recencyWeight
)

// Score возвращает рейтинг для элемента с views просмотрами (счётчик уже
// включает текущий просмотр), опубликованного в createdAt, на момент now.
//
// Формула:
//
//	score = log10(views+1)*0.7 + max(0, 1 - ageDays/30)*0.3
//
// Граничные случаи:
//   - views == 0 -> log10(1) == 0, рейтинг определяется только свежестью;
//   - возраст > 30 дней -> компонент свежести равен нулю.
func Score(views int64, createdAt, now time.Time) float64 {
	if views < 0 {
		views = 0
	}

	popularity := math.Log10(float64(views)+1) * viewWeight

	ageDays := now.Sub(createdAt).Hours() / 24
	recency := 1 - ageDays/freshnessWindowDays
	if recency < 0 {
		recency = 0
	}

	return popularity + recency*recencyWeight
}
