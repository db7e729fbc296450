package models

import (
	"time"

	"gorm.io/datatypes"
)

// Candidate is one scored submission. Rows are append-only: the score is
// computed once by the pipeline and never updated, and the only delete is the
// bulk clear.
type Candidate struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename  string         `gorm:"type:text" json:"filename"`
	Score     float64        `gorm:"not null;index" json:"score"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}
