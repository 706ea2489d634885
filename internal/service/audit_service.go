package service

import (
	"context"

	"slot-availability/internal/domain/entity"
	"slot-availability/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditEntry describes one audited API action.
type AuditEntry struct {
	Event     string
	User      string
	Group     string
	Success   bool
	Comments  string
	RequestID string
	Metadata  entity.JSON
}

type AuditService interface {
	LogEvent(ctx context.Context, entry AuditEntry) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogEvent writes an audit row under the availability category
func (s *auditService) LogEvent(ctx context.Context, entry AuditEntry) error {
	auditLog := &entity.AuditLog{
		Event:     entry.Event,
		User:      entry.User,
		GroupName: entry.Group,
		Success:   entry.Success,
		Comments:  entry.Comments,
		Category:  entity.AuditCategoryAvailability,
		RequestID: entry.RequestID,
		Metadata:  entry.Metadata,
	}

	if err := s.auditRepo.Create(ctx, s.db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
