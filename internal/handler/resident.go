package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/repository"
	"github.com/dfberenson/ob-resident-scheduler/internal/service"
)

type ResidentHandler struct {
	residents *service.ResidentService
}

func NewResidentHandler(residents *service.ResidentService) *ResidentHandler {
	return &ResidentHandler{residents: residents}
}

type createResidentRequest struct {
	Name              string `json:"name"`
	Tier              int    `json:"tier"`
	OBMonthsCompleted int    `json:"ob_months_completed"`
}

func (h *ResidentHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		residents any
		err       error
	)
	if r.URL.Query().Get("active") == "true" {
		residents, err = h.residents.ListActive(r.Context())
	} else {
		residents, err = h.residents.List(r.Context())
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list residents")
		return
	}
	respondJSON(w, http.StatusOK, residents)
}

func (h *ResidentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid resident ID")
		return
	}

	resident, err := h.residents.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Resident not found")
		return
	}
	respondJSON(w, http.StatusOK, resident)
}

func (h *ResidentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resident, err := h.residents.Create(r.Context(), service.CreateResidentInput{
		Name:              req.Name,
		Tier:              req.Tier,
		OBMonthsCompleted: req.OBMonthsCompleted,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResidentNameRequired), errors.Is(err, service.ErrResidentTierInvalid):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Failed to create resident")
		}
		return
	}
	respondJSON(w, http.StatusCreated, resident)
}

type updateResidentRequest struct {
	Name              *string `json:"name"`
	Tier              *int    `json:"tier"`
	OBMonthsCompleted *int    `json:"ob_months_completed"`
	Active            *bool   `json:"active"`
}

func (h *ResidentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid resident ID")
		return
	}

	var req updateResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resident, err := h.residents.Update(r.Context(), id, service.UpdateResidentInput{
		Name:              req.Name,
		Tier:              req.Tier,
		OBMonthsCompleted: req.OBMonthsCompleted,
		Active:            req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrResidentNotFound):
			respondError(w, http.StatusNotFound, "Resident not found")
		case errors.Is(err, service.ErrResidentNameRequired), errors.Is(err, service.ErrResidentTierInvalid):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Failed to update resident")
		}
		return
	}
	respondJSON(w, http.StatusOK, resident)
}
