package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Goal struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	ParentID        *uuid.UUID     `json:"parentId" gorm:"type:uuid;index"`
	TemplateID      string         `json:"templateId" gorm:"index"`
	Title           string         `json:"title" gorm:"not null"`
	GoalLevel       int            `json:"goal_level" gorm:"not null"`
	GoalType        string         `json:"goal_type"` // milestone_ladder, habit_ramp
	TargetValue     float64        `json:"target_value"`
	CurrentValue    float64        `json:"current_value" gorm:"default:0"`
	DisplayCategory string         `json:"display_category"`
	LinkedMetric    string         `json:"linked_metric"` // progress synced from tracked activity, not check-ins
	Status          string         `json:"status" gorm:"not null;default:'active'"` // active, completed, archived
	IsCompleted     bool           `json:"isCompleted" gorm:"default:false"`
	CompletedAt     *time.Time     `json:"completedAt"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
	Children        []Goal         `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type UpdateGoalRequest struct {
	Title        *string  `json:"title"`
	TargetValue  *float64 `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	Status       *string  `json:"status"`
}
