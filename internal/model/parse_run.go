package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ParseRun is the stored outcome of checking one circuit definition
type ParseRun struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Source      string         `json:"source" gorm:"index"`
	Success     bool           `json:"success"`
	Fatal       bool           `json:"fatal"`
	ErrorCount  int            `json:"error_count"`
	Devices     int            `json:"devices"`
	Connections int            `json:"connections"`
	Monitors    int            `json:"monitors"`
	Unconnected []string       `json:"unconnected,omitempty" gorm:"serializer:json;type:jsonb"`
	Diagnostics DiagnosticList `json:"diagnostics" gorm:"type:jsonb"`
	CreatedAt   time.Time      `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for ParseRun
func (ParseRun) TableName() string {
	return "parse_runs"
}

// DiagnosticRecord is one stored diagnostic
type DiagnosticRecord struct {
	Code       int    `json:"code"`
	Kind       string `json:"kind"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	SourceLine string `json:"source_line"`
	Caret      string `json:"caret"`
	Message    string `json:"message"`
}

// DiagnosticList is stored as JSONB in the database
type DiagnosticList []DiagnosticRecord

// Value implements the driver.Valuer interface for DiagnosticList
func (l DiagnosticList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface for DiagnosticList
func (l *DiagnosticList) Scan(value interface{}) error {
	if value == nil {
		*l = DiagnosticList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, l)
}
