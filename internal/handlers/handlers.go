package handlers

import (
	"ShoppingList/internal/middleware"
	"ShoppingList/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	listService *service.ListService,
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithCORS())
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	listHandler := NewListHandler(listService, logger)
	itemHandler := NewItemHandler(itemService, logger)
	healthHandler := NewHealthHandler(logger)

	// Health
	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)

	// List routes
	r.Get("/lists", listHandler.List)
	r.Post("/lists", listHandler.Create)
	r.Put("/lists/{list_id}", listHandler.Update)
	r.Delete("/lists/{list_id}", listHandler.Delete)

	// Item routes
	r.Get("/items", itemHandler.List)
	r.Post("/items", itemHandler.Create)
	r.Put("/items/{item_id}", itemHandler.Update)
	r.Delete("/items/{item_id}", itemHandler.Delete)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found", logger)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", logger)
	})

	return &Handler{Router: r}
}
