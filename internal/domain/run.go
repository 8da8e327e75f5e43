package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// RunStatus represents the lifecycle of a full generation run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// VariantStatus represents the per-variant render/capture lifecycle:
// pending → rendering → {ready | failed}.
type VariantStatus string

const (
	VariantStatusPending   VariantStatus = "pending"
	VariantStatusRendering VariantStatus = "rendering"
	VariantStatusReady     VariantStatus = "ready"
	VariantStatusFailed    VariantStatus = "failed"
)

// StringArray stores a string slice as JSON in a text column.
type StringArray []string

// Value implements driver.Valuer.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan StringArray")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, a)
}

// LoopRun is the persisted record of one prompt → winner pipeline execution.
type LoopRun struct {
	ID           string      `gorm:"type:text;primaryKey" json:"id"`
	Prompt       string      `gorm:"type:text;not null" json:"prompt"`
	TriggerID    string      `gorm:"type:text;index:idx_loop_runs_trigger" json:"trigger_id"`
	Vibe         string      `gorm:"type:text" json:"vibe"`
	Seed         int64       `json:"seed"`
	Status       RunStatus   `gorm:"type:text;index:idx_loop_runs_status;default:pending" json:"status"`
	WinnerID     string      `gorm:"type:text" json:"winner_id,omitempty"`
	Caption      string      `gorm:"type:text" json:"caption,omitempty"`
	Hashtags     StringArray `gorm:"type:text" json:"hashtags,omitempty"`
	Keywords     StringArray `gorm:"type:text" json:"keywords,omitempty"`
	Confirmation string      `gorm:"type:text" json:"confirmation,omitempty"`
	PublishedAt  *time.Time  `json:"published_at,omitempty"`
	Error        string      `gorm:"type:text" json:"error,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	Variants []LoopVariant `gorm:"foreignKey:RunID" json:"variants,omitempty"`
}

// TableName returns the database table name for LoopRun.
func (LoopRun) TableName() string {
	return "loop_runs"
}

// LoopVariant is the persisted record of one of a run's three blueprints.
type LoopVariant struct {
	ID          string        `gorm:"type:text;primaryKey" json:"id"`
	RunID       string        `gorm:"type:text;not null;index:idx_loop_variants_run" json:"run_id"`
	VariantID   string        `gorm:"type:text;not null" json:"variant_id"` // e.g. "slime-2"
	Title       string        `gorm:"type:text" json:"title"`
	NoiseColor  string        `gorm:"type:text" json:"noise_color"`
	DurationSec float64       `json:"duration_sec"`
	Score       float64       `json:"score"`
	LoopNote    string        `gorm:"type:text" json:"loop_note"`
	Status      VariantStatus `gorm:"type:text;default:pending" json:"status"`
	VideoURL    string        `gorm:"type:text" json:"video_url,omitempty"`
	AudioURL    string        `gorm:"type:text" json:"audio_url,omitempty"`
	Error       string        `gorm:"type:text" json:"error,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TableName returns the database table name for LoopVariant.
func (LoopVariant) TableName() string {
	return "loop_variants"
}
