package models

// SubmittedRequirement is a document a student already turned in
type SubmittedRequirement struct {
	ID             string `json:"id"`
	NameOfDocs     string `json:"nameOfDocs" example:"Weekly Report"`
	Student        string `json:"student"`
	SubmittedFile  string `json:"submitted_file"`
	SubmissionDate string `json:"submission_date"`
	DueDate        string `json:"due_date"`
}

// AvailableRequirement is a document template students can submit against
type AvailableRequirement struct {
	ID         string `json:"id"`
	NameOfFile string `json:"nameOfFile" example:"Weekly Report"`
	Document   string `json:"document"`
	UploadDate string `json:"upload_date"`
}
