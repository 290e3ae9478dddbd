package controllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"JournalGo/config"
	"JournalGo/models"
	"JournalGo/services"
)

// CoachingController serves the four coaching/assessment endpoints. Every
// one builds a CoachingContext from the entry and the user's history, asks
// the generation service and persists the resulting insight where the
// endpoint calls for it. Generation failures never reach the caller; the
// service's fallback path handles them.
type CoachingController struct {
	service *services.CoachingService
}

func NewCoachingController(service *services.CoachingService) *CoachingController {
	return &CoachingController{service: service}
}

// loadEntryWithHistory fetches the target entry and the user's full entry
// collection in one query.
func (cc *CoachingController) loadEntryWithHistory(c *gin.Context) (models.Entry, []models.Entry, bool) {
	uid := c.GetString("uid")
	entryID := c.Param("entryId")

	var entries []models.Entry
	if err := config.DB.Where("user_id = ?", uid).Order("timestamp desc").Find(&entries).Error; err != nil {
		config.Logger.Errorw("failed to fetch entries", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return models.Entry{}, nil, false
	}

	for _, entry := range entries {
		if entry.ID == entryID {
			return entry, entries, true
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
	return models.Entry{}, nil, false
}

func (cc *CoachingController) saveInsight(c *gin.Context, entry models.Entry, insight string) bool {
	err := config.DB.Model(&models.Entry{}).
		Where("id = ?", entry.ID).
		Update("ai_insight", insight).Error
	if err != nil {
		config.Logger.Errorw("failed to persist insight", "error", err, "entryID", entry.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get coaching advice"})
		return false
	}
	return true
}

// Coaching generates coaching advice for an entry and persists it as the
// entry's insight.
func (cc *CoachingController) Coaching(c *gin.Context) {
	entry, history, ok := cc.loadEntryWithHistory(c)
	if !ok {
		return
	}

	coachingCtx := services.BuildCoachingContext(entry, history)
	advice := cc.service.CoachingAdvice(c.Request.Context(), coachingCtx)

	if !cc.saveInsight(c, entry, advice) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"coachingAdvice": advice})
}

// CoachingFollowUp answers a follow-up question about an entry's insight.
// Nothing is persisted.
func (cc *CoachingController) CoachingFollowUp(c *gin.Context) {
	var req models.CoachingFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, history, ok := cc.loadEntryWithHistory(c)
	if !ok {
		return
	}

	coachingCtx := services.BuildCoachingContext(entry, history)
	answer := cc.service.FollowUpAnswer(c.Request.Context(), coachingCtx, req.Question)

	c.JSON(http.StatusOK, gin.H{"followUpResponse": answer})
}

// PersonalizedCoaching generates advice grounded in the user's similar
// past entries and persists it as the entry's insight.
func (cc *CoachingController) PersonalizedCoaching(c *gin.Context) {
	entry, history, ok := cc.loadEntryWithHistory(c)
	if !ok {
		return
	}

	coachingCtx := services.BuildCoachingContext(entry, history)
	advice := cc.service.PersonalizedAdvice(c.Request.Context(), coachingCtx)

	if !cc.saveInsight(c, entry, advice) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"coachingAdvice": advice})
}

// CapabilityAssessment scores how difficult the situation is for this user
// and returns the score with its contributing factors.
func (cc *CoachingController) CapabilityAssessment(c *gin.Context) {
	entry, history, ok := cc.loadEntryWithHistory(c)
	if !ok {
		return
	}

	coachingCtx := services.BuildCoachingContext(entry, history)
	score, assessment := cc.service.AssessCapability(c.Request.Context(), coachingCtx)
	rounded := math.Round(score*10) / 10

	entry.CapabilityAssessment = &models.CapabilitySnapshot{
		Score:      rounded,
		Situation:  coachingCtx.Context.Situation,
		Severity:   coachingCtx.Context.Severity,
		Intensity:  coachingCtx.Context.EmotionalIntensity,
		AssessedAt: time.Now(),
	}
	if err := config.DB.Save(&entry).Error; err != nil {
		config.Logger.Errorw("failed to persist capability snapshot", "error", err, "entryID", entry.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get capability assessment"})
		return
	}

	c.JSON(http.StatusOK, models.CapabilityAssessmentResponse{
		CapabilityScore: rounded,
		Assessment:      assessment,
		ContentAnalysis: models.ContentAnalysisResponse{
			Situation:          coachingCtx.Context.Situation,
			Severity:           coachingCtx.Context.Severity,
			EmotionalIntensity: coachingCtx.Context.EmotionalIntensity,
			KeyConcerns:        coachingCtx.Context.KeyConcerns,
		},
		SimilarResult: models.SimilarResultResponse{
			Count:   len(coachingCtx.Similar),
			Summary: coachingCtx.SimilarSummary(),
		},
	})
}
