package usecase

import (
	"context"
	"time"

	"slot-availability/internal/availability"
	"slot-availability/internal/converter"
	"slot-availability/internal/delivery/dto"
	"slot-availability/internal/domain/entity"
	"slot-availability/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, req *availability.Request) ([]dto.DailyAvailabilityResponse, error)
}

type availabilityUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	eventRepo      repository.CalendarEventRepository
	requestTimeout time.Duration
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	eventRepo repository.CalendarEventRepository,
	requestTimeout time.Duration,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:             db,
		log:            log,
		eventRepo:      eventRepo,
		requestTimeout: requestTimeout,
	}
}

// GetAvailableSlots returns the bookable slots of the requested provider and
// facility for every date in the range that has any.
func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, req *availability.Request) ([]dto.DailyAvailabilityResponse, error) {
	// Reject before touching the database
	if err := availability.CheckDuration(req.Duration()); err != nil {
		u.log.Errorf("Availability requested with out-of-contract duration %d: %+v", req.DurationMinutes, err)
		return nil, err
	}

	queryCtx := ctx
	if u.requestTimeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, u.requestTimeout)
		defer cancel()
	}

	rows, err := u.eventRepo.FindForAvailability(queryCtx, u.db, &entity.CalendarEventFilter{
		ProviderID: req.ProviderID,
		FacilityID: req.FacilityID,
		DateFrom:   req.DateFrom.Format(availability.DateLayout),
		DateTo:     req.DateTo.Format(availability.DateLayout),
	})
	if err != nil {
		u.log.Warnf("Failed to find calendar events for provider %s at facility %s: %+v", req.ProviderID, req.FacilityID, err)
		return nil, err
	}

	days, err := availability.ComputeAvailability(converter.CalendarEventRowsToEvents(rows), req.Duration())
	if err != nil {
		u.log.Errorf("Failed to compute availability for provider %s at facility %s: %+v", req.ProviderID, req.FacilityID, err)
		return nil, err
	}

	u.log.Debugf("Computed availability for provider %s at facility %s: %d events, %d days", req.ProviderID, req.FacilityID, len(rows), len(days))

	return converter.DailyAvailabilitiesToResponses(days), nil
}
