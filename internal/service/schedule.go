package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
	"github.com/dfberenson/ob-resident-scheduler/internal/scheduler"
)

type versionRepository interface {
	Create(ctx context.Context, version *model.ScheduleVersion) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ScheduleVersion, error)
	ListByPeriod(ctx context.Context, periodID uuid.UUID) ([]model.ScheduleVersion, error)
	Publish(ctx context.Context, id uuid.UUID) error
}

// ScheduleService is the seam between persistence and the pure scheduler
// engine: it is the only component that loads a period's inputs, calls
// scheduler.Generate, and writes back a versioned result.
type ScheduleService struct {
	periodRepo   periodRepository
	residentRepo residentRepository
	requestRepo  requestRepository
	timeOffRepo  timeOffRepository
	holidayRepo  holidayRepository
	versionRepo  versionRepository
}

func NewScheduleService(
	periodRepo periodRepository,
	residentRepo residentRepository,
	requestRepo requestRepository,
	timeOffRepo timeOffRepository,
	holidayRepo holidayRepository,
	versionRepo versionRepository,
) *ScheduleService {
	return &ScheduleService{
		periodRepo:   periodRepo,
		residentRepo: residentRepo,
		requestRepo:  requestRepo,
		timeOffRepo:  timeOffRepo,
		holidayRepo:  holidayRepo,
		versionRepo:  versionRepo,
	}
}

// GenerateVersion loads periodID's inputs, invokes the engine, and persists
// a new DRAFT ScheduleVersion with the result.
func (s *ScheduleService) GenerateVersion(ctx context.Context, periodID uuid.UUID) (*model.ScheduleVersion, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("loading period: %w", err)
	}

	residents, err := s.residentRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	requestRecords, err := s.requestRepo.ListApprovedOverlapping(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("loading requests: %w", err)
	}

	timeOffRecords, err := s.timeOffRepo.ListApprovedOverlapping(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("loading time off: %w", err)
	}

	holidayRecords, err := s.holidayRepo.ListOverlapping(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("loading holidays: %w", err)
	}

	var constraints *scheduler.Constraints
	if len(period.Constraints) > 0 {
		constraints = &scheduler.Constraints{}
		if err := json.Unmarshal(period.Constraints, constraints); err != nil {
			return nil, fmt.Errorf("parsing period constraint overrides: %w", err)
		}
	}

	input := scheduler.ScheduleInput{
		StartDate:   period.StartDate,
		EndDate:     period.EndDate,
		Residents:   toEngineResidents(residents),
		Requests:    toEngineRequests(requestRecords),
		TimeOff:     toEngineTimeOff(timeOffRecords),
		Holidays:    toHolidaySet(holidayRecords),
		Constraints: constraints,
	}

	output, err := scheduler.Generate(input)
	if err != nil {
		return nil, fmt.Errorf("generating schedule: %w", err)
	}

	assignmentsJSON, err := json.Marshal(output.Assignments)
	if err != nil {
		return nil, fmt.Errorf("marshaling assignments: %w", err)
	}
	alertsJSON, err := json.Marshal(output.Alerts)
	if err != nil {
		return nil, fmt.Errorf("marshaling alerts: %w", err)
	}
	fairnessJSON, err := json.Marshal(output.Fairness)
	if err != nil {
		return nil, fmt.Errorf("marshaling fairness: %w", err)
	}
	unmetJSON, err := json.Marshal(output.UnmetRequests)
	if err != nil {
		return nil, fmt.Errorf("marshaling unmet requests: %w", err)
	}

	version := &model.ScheduleVersion{
		PeriodID:      periodID,
		Status:        model.VersionDraft,
		GeneratedAt:   time.Now().UTC(),
		Assignments:   datatypes.JSON(assignmentsJSON),
		Alerts:        datatypes.JSON(alertsJSON),
		Fairness:      datatypes.JSON(fairnessJSON),
		UnmetRequests: datatypes.JSON(unmetJSON),
	}

	if err := s.versionRepo.Create(ctx, version); err != nil {
		return nil, fmt.Errorf("persisting schedule version: %w", err)
	}

	return version, nil
}

// Publish flips a version DRAFT -> PUBLISHED without re-running the engine.
func (s *ScheduleService) Publish(ctx context.Context, versionID uuid.UUID) error {
	return s.versionRepo.Publish(ctx, versionID)
}

func (s *ScheduleService) GetVersion(ctx context.Context, id uuid.UUID) (*model.ScheduleVersion, error) {
	return s.versionRepo.GetByID(ctx, id)
}

func (s *ScheduleService) ListVersions(ctx context.Context, periodID uuid.UUID) ([]model.ScheduleVersion, error) {
	return s.versionRepo.ListByPeriod(ctx, periodID)
}

func toEngineResidents(records []model.ResidentRecord) []scheduler.Resident {
	out := make([]scheduler.Resident, len(records))
	for i, r := range records {
		out[i] = scheduler.Resident{ID: r.ID.String(), Tier: r.Tier, OBMonthsCompleted: r.OBMonthsCompleted}
	}
	return out
}

func toEngineRequests(records []model.RequestRecord) []scheduler.Request {
	out := make([]scheduler.Request, len(records))
	for i, r := range records {
		out[i] = scheduler.Request{
			ResidentID: r.ResidentID.String(),
			Kind:       scheduler.RequestType(r.Kind),
			StartDate:  r.StartDate,
			EndDate:    r.EndDate,
		}
	}
	return out
}

func toEngineTimeOff(records []model.TimeOffRecord) []scheduler.TimeOff {
	out := make([]scheduler.TimeOff, len(records))
	for i, r := range records {
		out[i] = scheduler.TimeOff{
			ResidentID: r.ResidentID.String(),
			StartDate:  r.StartDate,
			EndDate:    r.EndDate,
			BlockType:  scheduler.ShiftType(r.BlockType),
		}
	}
	return out
}

func toHolidaySet(records []model.HolidayRecord) map[string]bool {
	out := make(map[string]bool, len(records))
	for _, h := range records {
		out[h.Date.Format("2006-01-02")] = true
	}
	return out
}
