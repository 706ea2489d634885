package usecase

import (
	"context"
	"errors"
	"testing"

	"slot-availability/internal/domain/entity"

	"gorm.io/gorm"
)

type fakeAuditLogRepo struct {
	logs   []entity.AuditLog
	err    error
	filter *entity.AuditLogFilter
}

func (f *fakeAuditLogRepo) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return f.err
}

func (f *fakeAuditLogRepo) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, error) {
	f.filter = filter
	return f.logs, f.err
}

func (f *fakeAuditLogRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.logs {
		if f.logs[i].ID == id {
			return &f.logs[i], nil
		}
	}
	return nil, nil
}

func TestAuditLogUsecase_GetAllAuditLogs(t *testing.T) {
	repo := &fakeAuditLogRepo{logs: []entity.AuditLog{
		{ID: 2, Event: entity.AuditEventAPI, User: "admin", GroupName: "Default", Success: true, RequestID: "req-2"},
		{ID: 1, Event: entity.AuditEventAPI, User: "admin", GroupName: "Default", Success: false},
	}}
	uc := NewAuditLogUsecase(nil, quietLogger(), repo)

	got, err := uc.GetAllAuditLogs(context.Background(), &entity.AuditLogFilter{User: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 2 || len(got.Logs) != 2 {
		t.Fatalf("expected 2 logs, got %+v", got)
	}
	if got.Logs[0].ID != 2 || got.Logs[0].Group != "Default" || got.Logs[0].RequestID != "req-2" {
		t.Errorf("unexpected first log: %+v", got.Logs[0])
	}
	if repo.filter.Limit != DefaultAuditLogLimit {
		t.Errorf("limit = %d, want default %d", repo.filter.Limit, DefaultAuditLogLimit)
	}
}

func TestAuditLogUsecase_GetAllAuditLogsCapsLimit(t *testing.T) {
	repo := &fakeAuditLogRepo{}
	uc := NewAuditLogUsecase(nil, quietLogger(), repo)

	got, err := uc.GetAllAuditLogs(context.Background(), &entity.AuditLogFilter{Limit: 10000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.filter.Limit != MaxAuditLogLimit {
		t.Errorf("limit = %d, want %d", repo.filter.Limit, MaxAuditLogLimit)
	}
	if got.Logs == nil || got.Total != 0 {
		t.Errorf("expected empty non-nil list, got %+v", got)
	}
}

func TestAuditLogUsecase_GetAuditLog(t *testing.T) {
	repo := &fakeAuditLogRepo{logs: []entity.AuditLog{{ID: 7, Comments: "/api/v1/available_slots response"}}}
	uc := NewAuditLogUsecase(nil, quietLogger(), repo)

	got, err := uc.GetAuditLog(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 7 || got.Comments != "/api/v1/available_slots response" {
		t.Errorf("unexpected log: %+v", got)
	}

	if _, err := uc.GetAuditLog(context.Background(), 8); !errors.Is(err, ErrAuditLogNotFound) {
		t.Errorf("expected ErrAuditLogNotFound, got %v", err)
	}

	repo.err = errors.New("connection reset")
	if _, err := uc.GetAuditLog(context.Background(), 7); !errors.Is(err, repo.err) {
		t.Errorf("expected repository error, got %v", err)
	}
}
