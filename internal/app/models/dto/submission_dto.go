package dto

import "github.com/yigit/ojtportal/internal/app/models"

// SubmitRequirementRequest names the requirement a file is submitted for
type SubmitRequirementRequest struct {
	NameOfDocs string `form:"nameOfDocs" json:"nameOfDocs"`
}

// SubmitRequirementResponse is the API answer to a submission
type SubmitRequirementResponse struct {
	Message string                      `json:"message"`
	Data    models.SubmittedRequirement `json:"data"`
}

// SubmissionOverviewResponse is what the submissions page loads
type SubmissionOverviewResponse struct {
	Available []models.AvailableRequirement `json:"available"`
	Submitted []models.SubmittedRequirement `json:"submitted"`
}
