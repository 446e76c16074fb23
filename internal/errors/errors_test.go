package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novacast/nova-backend/internal/service"
)

// Тесты маппинга ошибок сервисного слоя в HTTP-ответы:
//   - таблица сентинел -> статус/код;
//   - обёрнутые ошибки (fmt.Errorf %w) распознаются;
//   - nil и неизвестные ошибки -> 500 без утечки деталей;
//   - WriteError прокидывает request_id из заголовка.

func TestToHTTP_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"invalid_cursor", service.ErrInvalidCursor, http.StatusBadRequest, "invalid_cursor"},
		{"not_found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"permission_denied", service.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{"canceled", context.Canceled, StatusClientClosedRequest, "canceled"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "internal"},
		{"unknown", stderrors.New("db fail: password=secret"), http.StatusInternalServerError, "internal"},
		{"nil", nil, http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
			// Детали исходной ошибки не должны утекать в message.
			require.NotContains(t, resp.Error.Message, "password")
		})
	}
}

func TestToHTTP_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service/admin/ListUsers: %w", service.ErrInvalidCursor)

	status, resp := ToHTTP(wrapped)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid_cursor", resp.Error.Code)
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "rid-123")
	rr := httptest.NewRecorder()

	WriteError(rr, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var env ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "not_found", env.Error.Code)
	require.Equal(t, "rid-123", env.Error.RequestID)
}

func TestWriteError_NoRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rr := httptest.NewRecorder()

	WriteError(rr, req, service.ErrPermissionDenied)

	var env ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Empty(t, env.Error.RequestID)
}
