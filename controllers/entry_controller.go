package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"JournalGo/config"
	"JournalGo/models"
	"JournalGo/utils"
)

// EntryController handles journal-entry CRUD and mood follow-ups.
type EntryController struct{}

// ListEntries returns the user's entries, newest first.
func (ec *EntryController) ListEntries(c *gin.Context) {
	uid := c.GetString("uid")

	var entries []models.Entry
	if err := config.DB.Where("user_id = ?", uid).Order("timestamp desc").Find(&entries).Error; err != nil {
		config.Logger.Errorw("failed to fetch entries", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateEntry stores a new journal entry. Insight and follow-up fields are
// appended later, never at creation.
func (ec *EntryController) CreateEntry(c *gin.Context) {
	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetString("uid")

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	entry := models.Entry{
		ID:        utils.GenerateID(),
		UserID:    uid,
		Content:   req.Content,
		Mood:      req.Mood,
		Tags:      tags,
		Timestamp: time.Now(),
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		config.Logger.Errorw("entry creation failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes one of the user's entries.
func (ec *EntryController) DeleteEntry(c *gin.Context) {
	uid := c.GetString("uid")
	entryID := c.Param("entryId")

	result := config.DB.Where("id = ? AND user_id = ?", entryID, uid).Delete(&models.Entry{})
	if result.Error != nil {
		config.Logger.Errorw("entry deletion failed", "error", result.Error, "entryID", entryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Entry deleted successfully"})
}

// MoodFollowUp appends one question/answer pair to an entry's follow-up
// map, e.g. feeling_better=yes or what_helped=<free text>.
func (ec *EntryController) MoodFollowUp(c *gin.Context) {
	var req models.MoodFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetString("uid")
	entryID := c.Param("entryId")

	var entry models.Entry
	if err := config.DB.Where("id = ? AND user_id = ?", entryID, uid).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	if entry.MoodFollowUp == nil {
		entry.MoodFollowUp = make(map[string]string)
	}
	entry.MoodFollowUp[req.Question] = req.Answer

	if err := config.DB.Save(&entry).Error; err != nil {
		config.Logger.Errorw("mood follow-up save failed", "error", err, "entryID", entryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save follow-up response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Follow-up response saved"})
}

// MoodAnalytics returns mood -> entry count for the user.
func (ec *EntryController) MoodAnalytics(c *gin.Context) {
	uid := c.GetString("uid")

	var rows []struct {
		Mood  string
		Count int
	}
	err := config.DB.Model(&models.Entry{}).
		Select("mood, count(*) as count").
		Where("user_id = ? AND mood <> ''", uid).
		Group("mood").
		Scan(&rows).Error
	if err != nil {
		config.Logger.Errorw("mood analytics query failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mood analytics"})
		return
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Mood] = row.Count
	}

	c.JSON(http.StatusOK, counts)
}

// Insights returns the user's last 5 entries carrying an insight.
func (ec *EntryController) Insights(c *gin.Context) {
	uid := c.GetString("uid")

	var entries []models.Entry
	err := config.DB.Where("user_id = ? AND ai_insight <> ''", uid).
		Order("timestamp desc").
		Limit(5).
		Find(&entries).Error
	if err != nil {
		config.Logger.Errorw("insights query failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch insights"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
