package dto

import "github.com/yigit/ojtportal/internal/app/models"

// RegistrationForm is the self-registration payload in the shape POST /students/register expects.
// It doubles as the form state the browser edits field by field.
type RegistrationForm struct {
	StudentID      string `json:"pendingStudentId" example:"18-0-2132"`
	FirstName      string `json:"pendingFirstname" example:"Juan"`
	MiddleName     string `json:"pendingMiddlename,omitempty"`
	LastName       string `json:"pendingLastname" example:"Dela Cruz"`
	Prefix         string `json:"pendingPrefix,omitempty"`
	Email          string `json:"pendingEmail" example:"juan@school.edu.ph"`
	Address        string `json:"pendingAddress"`
	PhoneNumber    string `json:"pendingNumber" example:"09171234567"`
	Course         string `json:"pendingCourse" example:"BSIT"`
	Year           string `json:"pendingYear,omitempty"`
	Username       string `json:"pendingUsername"`
	Password       string `json:"pendingPassword"`
	SupervisorName string `json:"nameOfSupervisor,omitempty"`
	HTEAddress     string `json:"hteAddress,omitempty"`
	ContactNumber  string `json:"contactNumber,omitempty"`
	Department     string `json:"department,omitempty"`
}

// RegistrationRequest is the form plus the separately tracked password confirmation
type RegistrationRequest struct {
	RegistrationForm
	ConfirmPassword string `json:"confirmPassword"`
}

// RegistrationChangeRequest is one field edit applied to the current form state
type RegistrationChangeRequest struct {
	RegistrationRequest
	Errors map[string]string `json:"errors,omitempty"`
	Name   string            `json:"name" binding:"required" example:"studentId"`
	Value  string            `json:"value" example:"1802132"`
}

// RegistrationStateResponse is the form state after a change or a validation pass
type RegistrationStateResponse struct {
	Form        RegistrationRequest `json:"form"`
	Errors      map[string]string   `json:"errors"`
	Submittable bool                `json:"submittable"`
}

// MessageResponse is the bare {message} body several endpoints answer with
type MessageResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// StudentProfileUpdateRequest holds the profile fields a student may change
type StudentProfileUpdateRequest struct {
	Address          string `json:"address,omitempty"`
	Number           string `json:"number,omitempty" binding:"omitempty,ph_mobile"`
	NameOfSupervisor string `json:"nameOfSupervisor,omitempty"`
	HTEAddress       string `json:"hteAddress,omitempty"`
	ContactNumber    string `json:"contactNumber,omitempty" binding:"omitempty,ph_mobile"`
	Department       string `json:"department,omitempty"`
}

// StudentRequest is a partial student record used by coordinator create/update
type StudentRequest struct {
	StudentID        string `json:"studentId,omitempty" binding:"omitempty,student_id"`
	Firstname        string `json:"firstname,omitempty"`
	Middlename       string `json:"middlename,omitempty"`
	Lastname         string `json:"lastname,omitempty"`
	Prefix           string `json:"prefix,omitempty"`
	Email            string `json:"email,omitempty" binding:"omitempty,email"`
	Address          string `json:"address,omitempty"`
	Number           string `json:"number,omitempty" binding:"omitempty,ph_mobile"`
	Course           string `json:"course,omitempty"`
	Year             string `json:"year,omitempty"`
	NameOfSupervisor string `json:"nameOfSupervisor,omitempty"`
	HTEAddress       string `json:"hteAddress,omitempty"`
	ContactNumber    string `json:"contactNumber,omitempty" binding:"omitempty,ph_mobile"`
	Department       string `json:"department,omitempty"`
	Username         string `json:"username,omitempty"`
	Status           string `json:"status,omitempty"`
}

// StudentFilterRequest narrows the coordinator student list
type StudentFilterRequest struct {
	Search string `form:"search"`
	Status string `form:"status,default=all"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Size   int    `form:"size,default=10" binding:"min=1,max=100"`
}

// StudentListResponse is one page of the filtered student list
type StudentListResponse struct {
	Students   []models.Student `json:"students"`
	Pagination PaginationInfo   `json:"pagination"`
}
