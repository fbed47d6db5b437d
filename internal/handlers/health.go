package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// HealthHandler liveness-эндпоинты.
type HealthHandler struct {
	Logger *zap.SugaredLogger
}

func NewHealthHandler(logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{Logger: logger}
}

// Root GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok", Message: "Shopping List API is running"}, h.Logger)
}

// Health GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Status: "healthy"}, h.Logger)
}
