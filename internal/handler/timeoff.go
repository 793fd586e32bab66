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

type TimeOffHandler struct {
	timeOff *service.TimeOffService
}

func NewTimeOffHandler(timeOff *service.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{timeOff: timeOff}
}

type createTimeOffBody struct {
	ResidentID uuid.UUID `json:"resident_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	BlockType  string    `json:"block_type"`
}

func (h *TimeOffHandler) List(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.timeOff.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list time off blocks")
		return
	}
	respondJSON(w, http.StatusOK, blocks)
}

func (h *TimeOffHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid time off ID")
		return
	}
	block, err := h.timeOff.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Time off block not found")
		return
	}
	respondJSON(w, http.StatusOK, block)
}

func (h *TimeOffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createTimeOffBody
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

	block, err := h.timeOff.Create(r.Context(), service.CreateTimeOffInput{
		ResidentID: body.ResidentID,
		StartDate:  start,
		EndDate:    end,
		BlockType:  body.BlockType,
	})
	if err != nil {
		if errors.Is(err, service.ErrTimeOffDateRangeInvalid) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create time off block")
		return
	}
	respondJSON(w, http.StatusCreated, block)
}

func (h *TimeOffHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid time off ID")
		return
	}
	if err := h.timeOff.Approve(r.Context(), id); err != nil {
		respondApprovalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TimeOffHandler) Deny(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid time off ID")
		return
	}
	if err := h.timeOff.Deny(r.Context(), id); err != nil {
		respondApprovalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
