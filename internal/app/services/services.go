package services

import (
	"context"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apiclient"
	"github.com/yigit/ojtportal/internal/pkg/session"
)

// User-facing banner texts used when the API gives no message of its own
const (
	MsgLoginFailed          = "Invalid username or password"
	MsgRegistrationFailed   = "Registration failed"
	MsgRegistrationSuccess  = "Registration submitted successfully! Please wait for admin approval."
	MsgSubmissionLoadFailed = "Failed to load submission data"
	MsgSubmissionFailed     = "Submission failed"
	MsgSubmissionIncomplete = "Please select a requirement and file"
	MsgTimeLogsLoadFailed   = "Failed to load time logs"
	MsgClockFailed          = "Clock action failed"
	MsgProfileLoadFailed    = "Failed to load profile"
	MsgProfileUpdateFailed  = "Failed to update profile"
	MsgStudentsLoadFailed   = "Failed to load students"
	MsgStudentSaveFailed    = "Failed to save student"
	MsgStudentDeleteFailed  = "Failed to delete student"
)

// API is the part of the OJT REST API the services call
type API interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	RegisterStudent(ctx context.Context, form dto.RegistrationForm) (*dto.MessageResponse, error)
	GetProfile(ctx context.Context) (*models.Student, error)
	UpdateProfile(ctx context.Context, req dto.StudentProfileUpdateRequest) (*models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, req dto.StudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, req dto.StudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error

	SubmitRequirement(ctx context.Context, nameOfDocs string, file *apiclient.Upload) (*dto.SubmitRequirementResponse, error)
	ListSubmissions(ctx context.Context) ([]models.SubmittedRequirement, error)
	ListAvailableRequirements(ctx context.Context) ([]models.AvailableRequirement, error)

	Clock(ctx context.Context, req dto.ClockRequest) (*dto.ClockResponse, error)
	ListTimeLogs(ctx context.Context, filter dto.TimeLogFilterRequest) (*dto.TimeLogsSummary, error)
	TodayTimeLogs(ctx context.Context) ([]models.TimeLog, error)
}

// APIFactory returns the API authenticated as the session carried by ctx
type APIFactory func(ctx context.Context) API

// SessionAPI authenticates base with the session store installed in ctx.
// Without a store the calls go out anonymously.
func SessionAPI(base *apiclient.Client) APIFactory {
	return func(ctx context.Context) API {
		if store, ok := session.FromContext(ctx); ok {
			return base.WithTokenSource(store)
		}
		return base
	}
}

// Services bundles every service the portal exposes
type Services struct {
	Auth         *AuthService
	Registration *RegistrationService
	Student      *StudentService
	Submission   *SubmissionService
	TimeLog      *TimeLogService
	Dashboard    *DashboardService
}
