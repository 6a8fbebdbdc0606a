package db_models

import (
	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationKindPre         NotificationKind = "pre"
	NotificationKindPost        NotificationKind = "post"
	NotificationKindReminder    NotificationKind = "reminder"
	NotificationKindAppointment NotificationKind = "appointment"
	NotificationKindGeneral     NotificationKind = "general"
)

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// Notification is only ever created as a side effect of domain events
// (signup, session creation, feedback submission).
type Notification struct {
	BaseModel
	AccountID    uuid.UUID            `gorm:"type:uuid;index" json:"account_id"`
	Title        string               `json:"title"`
	Message      string               `json:"message"`
	Kind         NotificationKind     `gorm:"type:varchar(16)" json:"kind"`
	Priority     NotificationPriority `gorm:"type:varchar(8);default:medium" json:"priority"`
	Read         bool                 `gorm:"default:false" json:"read"`
	ScheduledFor *int64               `json:"scheduled_for,omitempty"`
}
