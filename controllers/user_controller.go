package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"JournalGo/config"
	"JournalGo/models"
)

// UserController serves the authenticated user's identity and profile.
type UserController struct{}

func (uc *UserController) loadUser(c *gin.Context) (models.User, bool) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return models.User{}, false
	}
	return user, true
}

// Me returns the basic identity of the authenticated user.
func (uc *UserController) Me(c *gin.Context) {
	user, ok := uc.loadUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"phoneNumber": user.PhoneNumber,
		"email":       user.Email,
		"name":        user.Name,
		"picture":     user.Picture,
		"createdAt":   user.CreatedAt.Format(time.RFC3339),
	})
}

// GetProfile returns the full profile.
func (uc *UserController) GetProfile(c *gin.Context) {
	user, ok := uc.loadUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		UserResponse: models.UserResponse{
			ID:          user.ID,
			PhoneNumber: user.PhoneNumber,
			Email:       user.Email,
			Name:        user.Name,
			Picture:     user.Picture,
			CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		},
		DateOfBirth: user.DateOfBirth,
		Location:    user.Location,
		Occupation:  user.Occupation,
		Education:   user.Education,
		Bio:         user.Bio,
	})
}

// UpdateProfile applies a partial update; empty fields keep stored values.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := uc.loadUser(c)
	if !ok {
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.DateOfBirth != "" {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Occupation != "" {
		user.Occupation = req.Occupation
	}
	if req.Education != "" {
		user.Education = req.Education
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}

	if err := config.DB.Save(&user).Error; err != nil {
		config.Logger.Errorw("profile update failed", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	uc.GetProfile(c)
}

// DeleteAccount removes the user and every entry they own.
func (uc *UserController) DeleteAccount(c *gin.Context) {
	user, ok := uc.loadUser(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Entry{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", user.ID).Delete(&models.User{}).Error
	})
	if err != nil {
		config.Logger.Errorw("account deletion failed", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	config.Logger.Infow("account deleted", "userID", user.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted successfully"})
}
