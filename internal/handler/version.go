package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/service"
)

type VersionHandler struct {
	schedules *service.ScheduleService
}

func NewVersionHandler(schedules *service.ScheduleService) *VersionHandler {
	return &VersionHandler{schedules: schedules}
}

func (h *VersionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid version ID")
		return
	}
	version, err := h.schedules.GetVersion(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Schedule version not found")
		return
	}
	respondJSON(w, http.StatusOK, version)
}

func (h *VersionHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid version ID")
		return
	}
	if err := h.schedules.Publish(r.Context(), id); err != nil {
		respondError(w, http.StatusConflict, "Schedule version is not a publishable draft")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
