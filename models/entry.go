package models

import "time"

// Entry is a single journal entry. AIInsight, MoodFollowUp and the
// capability snapshot are appended after creation, never required at it.
type Entry struct {
	ID                   string              `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID               string              `gorm:"type:varchar(50);index" json:"userId"`
	Content              string              `gorm:"type:text" json:"content"`
	Mood                 string              `gorm:"type:varchar(50)" json:"mood"`
	Tags                 []string            `gorm:"serializer:json" json:"tags"`
	Timestamp            time.Time           `json:"timestamp"`
	AIInsight            string              `gorm:"type:text" json:"aiInsight"`
	MoodFollowUp         map[string]string   `gorm:"serializer:json" json:"moodFollowUp"`
	CapabilityAssessment *CapabilitySnapshot `gorm:"serializer:json" json:"capabilityAssessment,omitempty"`
}

// CapabilitySnapshot is the persisted result of a capability assessment.
type CapabilitySnapshot struct {
	Score      float64   `json:"score"`
	Situation  string    `json:"situation"`
	Severity   string    `json:"severity"`
	Intensity  int       `json:"intensity"`
	AssessedAt time.Time `json:"assessedAt"`
}

// FeelingBetter reports whether the mood follow-up recorded a positive outcome.
func (e *Entry) FeelingBetter() bool {
	if e.MoodFollowUp == nil {
		return false
	}
	return e.MoodFollowUp["feeling_better"] == "yes"
}

// WhatHelped returns the free-text follow-up answer, if any.
func (e *Entry) WhatHelped() string {
	if e.MoodFollowUp == nil {
		return ""
	}
	return e.MoodFollowUp["what_helped"]
}
