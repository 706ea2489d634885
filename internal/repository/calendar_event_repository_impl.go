package repository

import (
	"context"

	"slot-availability/internal/domain/entity"
	domainRepo "slot-availability/internal/domain/repository"

	"gorm.io/gorm"
)

type calendarEventRepository struct{}

func NewCalendarEventRepository() domainRepo.CalendarEventRepository {
	return &calendarEventRepository{}
}

// FindForAvailability returns the provider's events at the facility within the
// inclusive date range, ordered by date and start time.
func (r *calendarEventRepository) FindForAvailability(ctx context.Context, db *gorm.DB, filter *entity.CalendarEventFilter) ([]entity.CalendarEventRow, error) {
	var rows []entity.CalendarEventRow
	err := db.WithContext(ctx).
		Model(&entity.CalendarEvent{}).
		Select(`to_char("pc_eventDate", 'YYYY-MM-DD') AS event_date,
			"pc_startTime"::text AS start_time,
			"pc_endTime"::text AS end_time,
			pc_catid AS category_id`).
		Where("pc_aid = ? AND pc_facility = ?", filter.ProviderID, filter.FacilityID).
		Where(`"pc_eventDate" BETWEEN ? AND ?`, filter.DateFrom, filter.DateTo).
		Order(`"pc_eventDate" ASC, "pc_startTime" ASC`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
