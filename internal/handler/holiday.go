package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/service"
)

type HolidayHandler struct {
	holidays *service.HolidayService
}

func NewHolidayHandler(holidays *service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidays: holidays}
}

func (h *HolidayHandler) List(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid year parameter")
			return
		}
		year = parsed
	}

	holidays, err := h.holidays.ListByYear(r.Context(), year)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list holidays")
		return
	}
	respondJSON(w, http.StatusOK, holidays)
}

type createHolidayBody struct {
	Date         string `json:"date"`
	Name         string `json:"name"`
	Jurisdiction string `json:"jurisdiction"`
}

func (h *HolidayHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createHolidayBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)")
		return
	}

	holiday, err := h.holidays.Create(r.Context(), service.CreateHolidayInput{Date: date, Name: body.Name, Jurisdiction: body.Jurisdiction})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create holiday")
		return
	}
	respondJSON(w, http.StatusCreated, holiday)
}

func (h *HolidayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid holiday ID")
		return
	}
	if err := h.holidays.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusNotFound, "Holiday not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type generateHolidaysBody struct {
	Year         int    `json:"year"`
	Jurisdiction string `json:"jurisdiction"`
}

func (h *HolidayHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateHolidaysBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	holidays, err := h.holidays.GenerateForYear(r.Context(), body.Year, body.Jurisdiction)
	if err != nil {
		switch err {
		case service.ErrHolidayYearInvalid, service.ErrHolidayJurisdiction:
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "Failed to generate holiday calendar")
		}
		return
	}
	respondJSON(w, http.StatusOK, holidays)
}
