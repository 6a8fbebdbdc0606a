package db_models

import (
	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusScheduled  SessionStatus = "scheduled"
	SessionStatusInProgress SessionStatus = "in-progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusCancelled  SessionStatus = "cancelled"
)

// Terminal reports whether the status accepts no further transitions.
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

// SessionFeedback is set exactly once, when the session completes.
type SessionFeedback struct {
	Wellness int    `json:"wellness"`
	Energy   int    `json:"energy"`
	Sleep    int    `json:"sleep"`
	Comments string `json:"comments,omitempty"`
}

type TherapySession struct {
	BaseModel
	AccountID       uuid.UUID        `gorm:"type:uuid;index" json:"account_id"`
	PractitionerID  *uuid.UUID       `gorm:"type:uuid" json:"practitioner_id,omitempty"`
	Name            string           `json:"name"`
	TherapyType     string           `json:"therapy_type"`
	ScheduledDate   string           `json:"scheduled_date"`
	ScheduledTime   string           `json:"scheduled_time"`
	DurationMinutes int              `json:"duration_minutes"`
	Status          SessionStatus    `gorm:"type:varchar(16);default:scheduled" json:"status"`
	Progress        int              `json:"progress"`
	Feedback        *SessionFeedback `gorm:"serializer:json" json:"feedback,omitempty"`
}
