package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription backs the settings page. Plan changes here update the
// record only; charging happens with the external payments provider.
type Subscription struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID      `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	// Plan: free, coaching, premium. Status: active, canceled, past_due.
	Plan             string         `json:"plan" gorm:"not null;default:'free'"`
	Status           string         `json:"status" gorm:"not null;default:'active'"`
	CurrentPeriodEnd *time.Time     `json:"currentPeriodEnd"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type UpdateSubscriptionRequest struct {
	Plan   *string `json:"plan"`
	Status *string `json:"status"`
}
