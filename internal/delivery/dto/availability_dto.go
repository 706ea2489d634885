package dto

// Response DTOs

type SlotResponse struct {
	StartTime string `json:"start_time"` // Format: HH:MM
	EndTime   string `json:"end_time"`   // Format: HH:MM
}

type DailyAvailabilityResponse struct {
	Date  string         `json:"date"` // Format: YYYY-MM-DD
	Slots []SlotResponse `json:"slots"`
}
