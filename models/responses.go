package models

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	Picture     string `json:"picture,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// ProfileResponse extends UserResponse with the editable profile fields.
type ProfileResponse struct {
	UserResponse
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Location    string `json:"location,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
	Education   string `json:"education,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// CapabilityAssessmentResponse is returned by the assessment endpoint.
type CapabilityAssessmentResponse struct {
	CapabilityScore float64                 `json:"capabilityScore"`
	Assessment      string                  `json:"assessment"`
	ContentAnalysis ContentAnalysisResponse `json:"contentAnalysis"`
	SimilarResult   SimilarResultResponse   `json:"similarSituations"`
}

// ContentAnalysisResponse is the classified-context breakdown.
type ContentAnalysisResponse struct {
	Situation          string `json:"situation"`
	Severity           string `json:"severity"`
	EmotionalIntensity int    `json:"emotionalIntensity"`
	KeyConcerns        string `json:"keyConcerns"`
}

// SimilarResultResponse summarises the similar-entry retrieval.
type SimilarResultResponse struct {
	Count   int    `json:"count"`
	Summary string `json:"summary"`
}
