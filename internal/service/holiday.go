package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/holiday"
	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

var (
	ErrHolidayNotFound     = errors.New("holiday not found")
	ErrHolidayYearInvalid  = errors.New("holiday year is invalid")
	ErrHolidayJurisdiction = errors.New("holiday jurisdiction is invalid")
)

type holidayRepository interface {
	Create(ctx context.Context, h *model.HolidayRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.HolidayRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListOverlapping(ctx context.Context, from, to time.Time) ([]model.HolidayRecord, error)
	ListByYear(ctx context.Context, year int) ([]model.HolidayRecord, error)
	Upsert(ctx context.Context, h *model.HolidayRecord) error
}

// HolidayService is CRUD over hospital-flagged holidays, plus calendar
// seeding from internal/holiday's generated statutory calendar.
type HolidayService struct {
	repo holidayRepository
}

func NewHolidayService(repo holidayRepository) *HolidayService {
	return &HolidayService{repo: repo}
}

type CreateHolidayInput struct {
	Date         time.Time
	Name         string
	Jurisdiction string
}

func (s *HolidayService) Create(ctx context.Context, input CreateHolidayInput) (*model.HolidayRecord, error) {
	h := &model.HolidayRecord{Date: input.Date, Name: input.Name, Jurisdiction: input.Jurisdiction}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HolidayService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// GenerateForYear seeds the year's statutory calendar, skipping any date
// already flagged.
func (s *HolidayService) GenerateForYear(ctx context.Context, year int, jurisdiction string) ([]model.HolidayRecord, error) {
	if year < 1900 || year > 2200 {
		return nil, ErrHolidayYearInvalid
	}

	j, err := holiday.ParseJurisdiction(jurisdiction)
	if err != nil {
		return nil, ErrHolidayJurisdiction
	}

	definitions, err := holiday.Generate(year, j)
	if err != nil {
		return nil, err
	}

	created := make([]model.HolidayRecord, 0, len(definitions))
	for _, def := range definitions {
		record := model.HolidayRecord{Date: def.Date, Name: def.Name, Jurisdiction: string(j)}
		if err := s.repo.Upsert(ctx, &record); err != nil {
			return nil, err
		}
		created = append(created, record)
	}
	return created, nil
}

// ListOverlapping returns every flagged holiday in [from, to] as the flat
// date-string set scheduler.ScheduleInput expects.
func (s *HolidayService) ListOverlapping(ctx context.Context, from, to time.Time) (map[string]bool, error) {
	records, err := s.repo.ListOverlapping(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(records))
	for _, h := range records {
		out[h.Date.Format("2006-01-02")] = true
	}
	return out, nil
}

func (s *HolidayService) ListByYear(ctx context.Context, year int) ([]model.HolidayRecord, error) {
	return s.repo.ListByYear(ctx, year)
}
