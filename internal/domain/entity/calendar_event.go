package entity

// CalendarEvent is a provider calendar entry from the EMR calendar table.
// Column names follow the EMR schema, which is owned by the host system.
type CalendarEvent struct {
	ID         int    `gorm:"column:pc_eid;primaryKey;autoIncrement" json:"id"`
	ProviderID string `gorm:"column:pc_aid;index" json:"provider_id"`
	FacilityID string `gorm:"column:pc_facility;index" json:"facility_id"`
	EventDate  string `gorm:"column:pc_eventDate;type:date;index" json:"event_date"`
	StartTime  string `gorm:"column:pc_startTime;type:time" json:"start_time"`
	EndTime    string `gorm:"column:pc_endTime;type:time" json:"end_time"`
	CategoryID int    `gorm:"column:pc_catid" json:"category_id"`
}

func (CalendarEvent) TableName() string {
	return "openemr_postcalendar_events"
}

// CalendarEventRow is the projection read for availability: date and times
// rendered as text so no time zone is attached on the way out of the database.
type CalendarEventRow struct {
	EventDate  string
	StartTime  string
	EndTime    string
	CategoryID int
}

// CalendarEventFilter selects one provider's events at one facility.
type CalendarEventFilter struct {
	ProviderID string
	FacilityID string
	DateFrom   string // Format: YYYY-MM-DD, inclusive
	DateTo     string // Format: YYYY-MM-DD, inclusive
}
