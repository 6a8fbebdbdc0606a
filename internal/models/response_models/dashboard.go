package response_models

import (
	"serenity/internal/models/db_models"
)

// DashboardResponse bundles everything the home screen renders in one pull.
// Progress is nil for practitioner accounts.
type DashboardResponse struct {
	Progress         *db_models.ProgressRecord  `json:"progress,omitempty"`
	Notifications    []db_models.Notification   `json:"notifications"`
	UpcomingSessions []db_models.TherapySession `json:"upcoming_sessions"`
	WellnessMetrics  db_models.WellnessSnapshot `json:"wellness_metrics"`
}

// FeedbackResponse returns the completed session together with the progress
// record it advanced.
type FeedbackResponse struct {
	Session  *db_models.TherapySession `json:"session"`
	Progress *db_models.ProgressRecord `json:"progress,omitempty"`
}
