package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/repository"
	"github.com/dfberenson/ob-resident-scheduler/internal/service"
)

type RequestHandler struct {
	requests *service.RequestService
}

func NewRequestHandler(requests *service.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type createRequestBody struct {
	ResidentID uuid.UUID `json:"resident_id"`
	Kind       string    `json:"kind"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requests.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list requests")
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}
	req, err := h.requests.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Request not found")
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
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

	req, err := h.requests.Create(r.Context(), service.CreateRequestInput{
		ResidentID: body.ResidentID,
		Kind:       body.Kind,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestKindInvalid), errors.Is(err, service.ErrRequestDateRangeInvalid):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Failed to create request")
		}
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}
	if err := h.requests.Approve(r.Context(), id); err != nil {
		respondApprovalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RequestHandler) Deny(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}
	if err := h.requests.Deny(r.Context(), id); err != nil {
		respondApprovalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondApprovalError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrRequestNotFound) || errors.Is(err, repository.ErrTimeOffNotFound) {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}
	respondError(w, http.StatusInternalServerError, "Failed to update status")
}
