package repository

import (
	"context"

	"slot-availability/internal/domain/entity"

	"gorm.io/gorm"
)

type CalendarEventRepository interface {
	FindForAvailability(ctx context.Context, db *gorm.DB, filter *entity.CalendarEventFilter) ([]entity.CalendarEventRow, error)
}
