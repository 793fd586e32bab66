package handler

import (
	"net/http"

	"github.com/dfberenson/ob-resident-scheduler/internal/repository"
)

type HealthHandler struct {
	db *repository.DB
}

func NewHealthHandler(db *repository.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
