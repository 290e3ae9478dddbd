package models

// SendOTPRequest starts a phone login.
type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// VerifyOTPRequest completes a phone login.
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token issued to the frontend.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UpdateProfileRequest is a partial profile update; empty fields keep
// their stored values. The phone number is fixed at OTP verification and
// is not editable here.
type UpdateProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	Location    string `json:"location"`
	Occupation  string `json:"occupation"`
	Education   string `json:"education"`
	Bio         string `json:"bio"`
}

// CreateEntryRequest creates a journal entry.
type CreateEntryRequest struct {
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

// MoodFollowUpRequest appends one question/answer pair to an entry's
// follow-up map (e.g. feeling_better=yes, what_helped=...).
type MoodFollowUpRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// CoachingFollowUpRequest asks a follow-up question about an insight.
type CoachingFollowUpRequest struct {
	Question string `json:"question" binding:"required"`
}
