package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/service"
)

type PeriodHandler struct {
	periods   *service.PeriodService
	jobs      *service.JobService
	schedules *service.ScheduleService
}

func NewPeriodHandler(periods *service.PeriodService, jobs *service.JobService, schedules *service.ScheduleService) *PeriodHandler {
	return &PeriodHandler{periods: periods, jobs: jobs, schedules: schedules}
}

type createPeriodBody struct {
	Label       string          `json:"label"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Constraints json.RawMessage `json:"constraints,omitempty"`
}

func (h *PeriodHandler) List(w http.ResponseWriter, r *http.Request) {
	periods, err := h.periods.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list schedule periods")
		return
	}
	respondJSON(w, http.StatusOK, periods)
}

func (h *PeriodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid period ID")
		return
	}
	period, err := h.periods.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Schedule period not found")
		return
	}
	respondJSON(w, http.StatusOK, period)
}

func (h *PeriodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createPeriodBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	start, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid start_date (use YYYY-MM-DD)")
		return
	}
	end, err := time.Parse("2006-01-02", body.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid end_date (use YYYY-MM-DD)")
		return
	}

	period, err := h.periods.Create(r.Context(), service.CreatePeriodInput{
		Label:       body.Label,
		StartDate:   start,
		EndDate:     end,
		Constraints: body.Constraints,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPeriodLabelRequired),
			errors.Is(err, service.ErrPeriodDateRangeInvalid),
			errors.Is(err, service.ErrPeriodConstraintsInvalid):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Failed to create schedule period")
		}
		return
	}
	respondJSON(w, http.StatusCreated, period)
}

// Generate enqueues a background solve for this period and returns the
// QUEUED job immediately; callers poll GET /jobs/{id} for completion.
func (h *PeriodHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid period ID")
		return
	}

	job, err := h.jobs.Enqueue(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to enqueue schedule generation")
		return
	}
	respondJSON(w, http.StatusAccepted, job)
}

func (h *PeriodHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid period ID")
		return
	}
	versions, err := h.schedules.ListVersions(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list schedule versions")
		return
	}
	respondJSON(w, http.StatusOK, versions)
}
