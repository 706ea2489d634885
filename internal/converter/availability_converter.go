package converter

import (
	"slot-availability/internal/availability"
	"slot-availability/internal/delivery/dto"
	"slot-availability/internal/domain/entity"
)

// CalendarEventRowsToEvents converts stored calendar rows to availability input
func CalendarEventRowsToEvents(rows []entity.CalendarEventRow) []availability.CalendarEvent {
	events := make([]availability.CalendarEvent, len(rows))
	for i, row := range rows {
		events[i] = availability.CalendarEvent{
			Date:      row.EventDate,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			Category:  availability.Category(row.CategoryID),
		}
	}
	return events
}

// DailyAvailabilitiesToResponses converts computed availability to response DTOs.
// The result is never nil so an empty availability encodes as [].
func DailyAvailabilitiesToResponses(days []availability.DailyAvailability) []dto.DailyAvailabilityResponse {
	responses := make([]dto.DailyAvailabilityResponse, len(days))
	for i, day := range days {
		slots := make([]dto.SlotResponse, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = dto.SlotResponse{
				StartTime: slot.Start.Format(availability.ClockLayout),
				EndTime:   slot.End.Format(availability.ClockLayout),
			}
		}

		responses[i] = dto.DailyAvailabilityResponse{
			Date:  day.Date.Format(availability.DateLayout),
			Slots: slots,
		}
	}
	return responses
}
