package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog is one entry of the API audit trail
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Event     string    `gorm:"type:varchar(100);not null;index" json:"event"`
	User      string    `gorm:"type:varchar(255)" json:"user"`
	GroupName string    `gorm:"type:varchar(255)" json:"group_name"`
	Success   bool      `gorm:"not null" json:"success"`
	Comments  string    `gorm:"type:text" json:"comments"`
	Category  string    `gorm:"type:varchar(100);index" json:"category"`
	RequestID string    `gorm:"type:varchar(64);index" json:"request_id,omitempty"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Audit events and category written by the availability API
const (
	AuditCategoryAvailability = "slot-availability"

	AuditEventAPI       = "api"
	AuditEventBootstrap = "slot-availability-bootstrap"
)

// AuditLogFilter narrows an audit trail listing; empty fields match everything.
type AuditLogFilter struct {
	RequestID string
	User      string
	Success   *bool
	Limit     int
}
