package db_models

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

const DefaultTotalSessions = 21

// WellnessScoreEntry is one point of the patient's score history, dated by
// unix seconds.
type WellnessScoreEntry struct {
	Date     int64 `json:"date"`
	Wellness int   `json:"wellness"`
	Energy   int   `json:"energy"`
	Sleep    int   `json:"sleep"`
}

// ProgressRecord tracks a patient's treatment plan. One per patient account.
type ProgressRecord struct {
	BaseModel
	AccountID         uuid.UUID            `gorm:"type:uuid;uniqueIndex" json:"account_id"`
	OverallProgress   float64              `json:"overall_progress"`
	CompletedSessions int                  `json:"completed_sessions"`
	TotalSessions     int                  `gorm:"default:21" json:"total_sessions"`
	NextMilestone     string               `json:"next_milestone"`
	ScoreHistory      []WellnessScoreEntry `gorm:"serializer:json" json:"wellness_score_history"`
}

// ApplyCompletedSession folds one completed session into the record.
// OverallProgress is always derived from the completion counters; any seeded
// starting value is overwritten on the first completion.
func (p *ProgressRecord) ApplyCompletedSession(entry WellnessScoreEntry) {
	p.CompletedSessions++
	if p.TotalSessions > 0 {
		p.OverallProgress = math.Min(100, float64(p.CompletedSessions)/float64(p.TotalSessions)*100)
	}
	p.ScoreHistory = append(p.ScoreHistory, entry)
	if p.CompletedSessions >= p.TotalSessions {
		p.NextMilestone = "Treatment plan complete"
	} else {
		p.NextMilestone = fmt.Sprintf("Complete session %d of %d", p.CompletedSessions+1, p.TotalSessions)
	}
}
