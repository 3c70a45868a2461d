package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"not null"`
	Description string
	StartDate   time.Time      `gorm:"not null"`
	EndDate     time.Time      `gorm:"not null"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid"`
	Category    *EventCategory `gorm:"foreignKey:CategoryID"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	User        User
	Location    string
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

// IsFutureEvent reports whether the event starts strictly after now.
func (event *Event) IsFutureEvent() bool {
	return event.StartDate.After(time.Now())
}

// IsSingleDay reports whether start and end fall on the same calendar day
// in the event's stored timezone.
func (event *Event) IsSingleDay() bool {
	sy, sm, sd := event.StartDate.Date()
	ey, em, ed := event.EndDate.Date()
	return sy == ey && sm == em && sd == ed
}
