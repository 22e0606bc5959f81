package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	ImportStatusCompleted = "completed"
	ImportStatusPartial   = "partial" // some rows rejected
	ImportStatusFailed    = "failed"
)

// ImportRowError records a single rejected CSV row
type ImportRowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportErrorList is stored as JSONB
type ImportErrorList []ImportRowError

func (l ImportErrorList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *ImportErrorList) Scan(value interface{}) error {
	if value == nil {
		*l = ImportErrorList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for ImportErrorList")
	}
	return json.Unmarshal(b, l)
}

// ImportJob is the audit record for one CSV upload
type ImportJob struct {
	ID           string          `json:"id" gorm:"primaryKey"`
	RestaurantID string          `json:"restaurant_id" gorm:"index"`
	Filename     string          `json:"filename"`
	Status       string          `json:"status"`
	RowCount     int             `json:"row_count"`    // data rows seen
	OrderCount   int             `json:"order_count"`  // distinct orders created
	ItemCount    int             `json:"item_count"`   // order items created
	ErrorCount   int             `json:"error_count"`  // rejected rows
	Errors       ImportErrorList `json:"errors" gorm:"type:jsonb"`
	UploadedBy   string          `json:"uploaded_by"`
	CreatedAt    time.Time       `json:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}

func (ImportJob) TableName() string {
	return "import_jobs"
}
