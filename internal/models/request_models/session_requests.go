package request_models

import (
	"strings"
	"time"

	"serenity/pkg/utils"
)

type CreateSessionRequest struct {
	Name            string `json:"name"`
	TherapyType     string `json:"therapy_type"`
	ScheduledDate   string `json:"scheduled_date"`
	ScheduledTime   string `json:"scheduled_time"`
	DurationMinutes int    `json:"duration_minutes"`
	PractitionerID  string `json:"practitioner_id,omitempty"`
}

func (r *CreateSessionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.TherapyType) == "" {
		errs = append(errs, "therapy_type is required")
	}
	if _, err := time.Parse(utils.ScheduleDateLayout, r.ScheduledDate); err != nil {
		errs = append(errs, "scheduled_date must be formatted YYYY-MM-DD")
	}
	if _, err := time.Parse(utils.ScheduleTimeLayout, r.ScheduledTime); err != nil {
		errs = append(errs, "scheduled_time must be formatted HH:MM")
	}
	if r.DurationMinutes <= 0 {
		errs = append(errs, "duration_minutes must be positive")
	}
	return errs
}

type FeedbackRequest struct {
	Wellness int    `json:"wellness"`
	Energy   int    `json:"energy"`
	Sleep    int    `json:"sleep"`
	Comments string `json:"comments,omitempty"`
}

func (r *FeedbackRequest) Validate() []string {
	var errs []string
	if r.Wellness < 1 || r.Wellness > 10 {
		errs = append(errs, "wellness must be between 1 and 10")
	}
	if r.Energy < 1 || r.Energy > 10 {
		errs = append(errs, "energy must be between 1 and 10")
	}
	if r.Sleep < 1 || r.Sleep > 10 {
		errs = append(errs, "sleep must be between 1 and 10")
	}
	return errs
}
