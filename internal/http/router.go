package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/novacast/nova-backend/internal/auth"
	"github.com/novacast/nova-backend/internal/http/handlers"
	"github.com/novacast/nova-backend/internal/http/middleware"
	"github.com/novacast/nova-backend/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, verifier *auth.Verifier, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),              // безопасно ловим паники
		middleware.RequestID(),            // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),   // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),              // счётчики/гистограммы по шаблону маршрута
		middleware.AuthBearer(verifier),   // проверяем Bearer токен и кладём личность в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// content
	r.Get("/content", h.ListContent)
	r.Get("/content/trending", h.TrendingContent)
	r.Get("/content/{id}", h.GetContentByID)
	r.Post("/content", h.CreateContent)
	r.Delete("/content/{id}", h.DeleteContent)
	r.Post("/content/{id}/view", h.RecordView)

	// authors
	r.Get("/authors/{id}/content", h.ListByAuthor)

	// media
	r.Post("/media/presign", h.MediaPresign)
	r.Post("/media/confirm", h.MediaConfirm)

	// admin
	r.Get("/admin/users", h.ListUsers)
	r.Patch("/admin/users/{id}/tier", h.UpdateTier)
	r.Post("/admin/users/{id}/credits", h.AdjustCredits)
	r.Post("/admin/users/{id}/subscription", h.ExtendSubscription)
}
