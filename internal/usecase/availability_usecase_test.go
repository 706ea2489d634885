package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"slot-availability/internal/availability"
	"slot-availability/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fakeEventRepo struct {
	rows        []entity.CalendarEventRow
	err         error
	calls       int
	filter      *entity.CalendarEventFilter
	hasDeadline bool
}

func (f *fakeEventRepo) FindForAvailability(ctx context.Context, db *gorm.DB, filter *entity.CalendarEventFilter) ([]entity.CalendarEventRow, error) {
	f.calls++
	f.filter = filter
	_, f.hasDeadline = ctx.Deadline()
	return f.rows, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func request(durationMinutes int) *availability.Request {
	return &availability.Request{
		ProviderID:      "aid123",
		FacilityID:      "fid456",
		DateFrom:        time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC),
		DateTo:          time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
		DurationMinutes: durationMinutes,
	}
}

func TestAvailabilityUsecase_GetAvailableSlots(t *testing.T) {
	repo := &fakeEventRepo{rows: []entity.CalendarEventRow{
		{EventDate: "2025-12-08", StartTime: "09:00:00", EndTime: "10:00:00", CategoryID: 2},
		{EventDate: "2025-12-08", StartTime: "09:30:00", EndTime: "09:45:00", CategoryID: 1},
		{EventDate: "2025-12-09", StartTime: "13:00:00", EndTime: "14:00:00", CategoryID: 2},
		{EventDate: "2025-12-10", StartTime: "09:00:00", EndTime: "10:00:00", CategoryID: 2},
		{EventDate: "2025-12-10", StartTime: "09:00:00", EndTime: "10:00:00", CategoryID: 3},
	}}
	u := NewAvailabilityUsecase(nil, quietLogger(), repo, time.Second)

	days, err := u.GetAvailableSlots(context.Background(), request(15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.filter.ProviderID != "aid123" || repo.filter.FacilityID != "fid456" ||
		repo.filter.DateFrom != "2025-12-08" || repo.filter.DateTo != "2025-12-10" {
		t.Fatalf("unexpected filter: %+v", repo.filter)
	}
	if !repo.hasDeadline {
		t.Fatal("expected query context with deadline")
	}

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d: %+v", len(days), days)
	}
	if days[0].Date != "2025-12-08" || len(days[0].Slots) != 3 || days[0].Slots[2].StartTime != "09:45" {
		t.Fatalf("unexpected first day: %+v", days[0])
	}
	if days[1].Date != "2025-12-09" || len(days[1].Slots) != 4 || days[1].Slots[3].EndTime != "14:00" {
		t.Fatalf("unexpected second day: %+v", days[1])
	}
}

func TestAvailabilityUsecase_NoEvents(t *testing.T) {
	u := NewAvailabilityUsecase(nil, quietLogger(), &fakeEventRepo{}, 0)

	days, err := u.GetAvailableSlots(context.Background(), request(30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days == nil || len(days) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", days)
	}
}

func TestAvailabilityUsecase_InvalidDurationSkipsQuery(t *testing.T) {
	repo := &fakeEventRepo{}
	u := NewAvailabilityUsecase(nil, quietLogger(), repo, time.Second)

	_, err := u.GetAvailableSlots(context.Background(), request(17))
	if !errors.Is(err, availability.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("expected no repository call, got %d", repo.calls)
	}
}

func TestAvailabilityUsecase_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	u := NewAvailabilityUsecase(nil, quietLogger(), &fakeEventRepo{err: repoErr}, time.Second)

	if _, err := u.GetAvailableSlots(context.Background(), request(15)); !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAvailabilityUsecase_MalformedEvent(t *testing.T) {
	repo := &fakeEventRepo{rows: []entity.CalendarEventRow{
		{EventDate: "2025-12-08", StartTime: "09:00:00", EndTime: "10:00:00", CategoryID: 2},
		{EventDate: "2025-12-08", StartTime: "11:00:00", EndTime: "10:00:00", CategoryID: 1},
	}}
	u := NewAvailabilityUsecase(nil, quietLogger(), repo, time.Second)

	if _, err := u.GetAvailableSlots(context.Background(), request(15)); !errors.Is(err, availability.ErrDataIntegrity) {
		t.Fatalf("expected data integrity error, got %v", err)
	}
}
