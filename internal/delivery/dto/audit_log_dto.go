package dto

import (
	"slot-availability/internal/domain/entity"
	"time"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Event     string      `json:"event"`
	User      string      `json:"user"`
	Group     string      `json:"group"`
	Success   bool        `json:"success"`
	Comments  string      `json:"comments"`
	RequestID string      `json:"request_id,omitempty"`
	Metadata  entity.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
