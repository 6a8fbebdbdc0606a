package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCompletedSessionDerivesProgress(t *testing.T) {
	record := &ProgressRecord{
		OverallProgress: 17.5, // seeded starting value
		TotalSessions:   DefaultTotalSessions,
	}

	record.ApplyCompletedSession(WellnessScoreEntry{Date: 1, Wellness: 9, Energy: 8, Sleep: 9})

	assert.Equal(t, 1, record.CompletedSessions)
	assert.InDelta(t, 4.7619, record.OverallProgress, 0.001)
	assert.Len(t, record.ScoreHistory, 1)
}

func TestApplyCompletedSessionMonotonic(t *testing.T) {
	record := &ProgressRecord{TotalSessions: DefaultTotalSessions}

	previous := 0.0
	for i := 1; i <= 10; i++ {
		record.ApplyCompletedSession(WellnessScoreEntry{Date: int64(i)})
		assert.Equal(t, i, record.CompletedSessions)
		assert.Greater(t, record.OverallProgress, previous)
		previous = record.OverallProgress
	}
	assert.Len(t, record.ScoreHistory, 10)
}

func TestApplyCompletedSessionCapsAtHundred(t *testing.T) {
	record := &ProgressRecord{TotalSessions: 3}

	for i := 0; i < 5; i++ {
		record.ApplyCompletedSession(WellnessScoreEntry{})
	}

	assert.Equal(t, 5, record.CompletedSessions)
	assert.Equal(t, 100.0, record.OverallProgress)
	assert.Equal(t, "Treatment plan complete", record.NextMilestone)
}
