package models

import (
	"time"

	"github.com/google/uuid"
)

// Interview is one persisted question/answer exchange shown on the dashboard.
type Interview struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserQuestion string    `gorm:"type:text" json:"user_question"`
	AIResponse   string    `gorm:"type:text" json:"ai_response"`
	Score        int       `gorm:"not null;default:0" json:"score"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now();index" json:"created_at"`
}

func (Interview) TableName() string {
	return "interviews"
}
