// auth отвечает за проверку bearer-токенов identity-провайдера
// и прокидывание личности вызывающего через контекст запроса.
//
// Сессии/выдача токенов — зона ответственности внешнего провайдера;
// здесь только валидация подписи и извлечение клеймов.
package auth

import (
	"context"

	"github.com/google/uuid"
)

// Role — роль вызывающего.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity — личность вызывающего, извлечённая из токена.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// IsAdmin сообщает, обладает ли вызывающий админскими правами.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type ctxKey struct{}

// Into кладёт личность в контекст.
func Into(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// From достаёт личность из контекста.
// Второй результат false — запрос анонимный (токена не было или он не прошёл проверку).
func From(ctx context.Context) (Identity, bool) {
	v := ctx.Value(ctxKey{})
	if v == nil {
		return Identity{}, false
	}

	id, ok := v.(Identity)
	return id, ok
}
