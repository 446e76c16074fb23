// cursorstack — клиентская история курсоров для навигации «назад» поверх
// forward-only пагинации сервера.
//
// Сервер выдаёт только курсор продолжения; понятия «предыдущая страница»
// у него нет. Клиент придерживает все выданные токены: история — это
// append-only список курсоров плюс указатель текущей страницы, переход
// назад — декремент указателя и переиспользование ранее выданного токена.
//
// Инварианты:
//   - элемент 0 всегда "" (нулевой курсор первой страницы);
//   - элемент i — курсор, который выдаёт страницу i+1;
//   - смена фильтра сбрасывает историю к [""].
package cursorstack

// History — история курсоров одной таблицы/листинга.
// Тип не потокобезопасен: он живёт в одном UI-потоке/одной горутине клиента.
type History struct {
	tokens []string
	pos    int
}

// New создаёт историю, указывающую на первую страницу.
func New() *History {
	return &History{tokens: []string{""}}
}

// Current возвращает курсор текущей страницы ("" — первая).
func (h *History) Current() string {
	return h.tokens[h.pos]
}

// Page возвращает номер текущей страницы (с единицы).
func (h *History) Page() int {
	return h.pos + 1
}

// Depth возвращает глубину истории (число известных курсоров).
func (h *History) Depth() int {
	return len(h.tokens)
}

// Push фиксирует переход вперёд: сервер выдал next как курсор следующей
// страницы. Пустой next означает «дальше ничего нет» и не запоминается.
// Повторный заход вперёд после отката переиспользует хвост истории,
// если токен совпал, иначе хвост обрезается.
func (h *History) Push(next string) bool {
	if next == "" {
		return false
	}

	if h.pos+1 < len(h.tokens) {
		if h.tokens[h.pos+1] == next {
			h.pos++
			return true
		}
		// Хвост устарел (данные изменились между заходами) — обрезаем.
		h.tokens = h.tokens[:h.pos+1]
	}

	h.tokens = append(h.tokens, next)
	h.pos++
	return true
}

// Back откатывается на предыдущую страницу и возвращает её курсор.
// С первой страницы откатываться некуда: ok == false.
func (h *History) Back() (token string, ok bool) {
	if h.pos == 0 {
		return "", false
	}

	h.pos--
	return h.tokens[h.pos], true
}

// Reset сбрасывает историю к первой странице. Вызывается при каждой смене
// фильтра: навигация назад никогда не пересекает границу смены фильтра.
func (h *History) Reset() {
	h.tokens = h.tokens[:1]
	h.pos = 0
}
