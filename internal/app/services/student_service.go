package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
	"github.com/yigit/ojtportal/internal/pkg/helpers"
)

// StudentStatusAll disables the status filter
const StudentStatusAll = "all"

// StudentService handles the student profile and the coordinator student list
type StudentService struct {
	api    APIFactory
	logger zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(api APIFactory, logger zerolog.Logger) *StudentService {
	return &StudentService{
		api:    api,
		logger: logger,
	}
}

// GetProfile returns the signed-in student's record
func (s *StudentService) GetProfile(ctx context.Context) (*models.Student, error) {
	student, err := s.api(ctx).GetProfile(ctx)
	if err != nil {
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgProfileLoadFailed))
	}
	return student, nil
}

// UpdateProfile changes the signed-in student's editable fields
func (s *StudentService) UpdateProfile(ctx context.Context, req dto.StudentProfileUpdateRequest) (*models.Student, error) {
	student, err := s.api(ctx).UpdateProfile(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Profile update failed")
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgProfileUpdateFailed))
	}
	return student, nil
}

// ListStudents returns one page of students matching the search text and status
func (s *StudentService) ListStudents(ctx context.Context, filter dto.StudentFilterRequest) (*dto.StudentListResponse, error) {
	students, err := s.api(ctx).ListStudents(ctx)
	if err != nil {
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgStudentsLoadFailed))
	}

	matched := FilterStudents(students, filter.Search, filter.Status)
	page, info := helpers.Paginate(matched, filter.Page, filter.Size)
	return &dto.StudentListResponse{
		Students:   page,
		Pagination: info,
	}, nil
}

// FilterStudents keeps the students whose name, student ID or course contains search (case-insensitive)
// and whose status equals status. An empty status or "all" keeps every status.
func FilterStudents(students []models.Student, search, status string) []models.Student {
	search = strings.ToLower(strings.TrimSpace(search))
	status = strings.TrimSpace(status)

	matched := make([]models.Student, 0, len(students))
	for _, student := range students {
		if status != "" && !strings.EqualFold(status, StudentStatusAll) && !strings.EqualFold(student.Status, status) {
			continue
		}
		if search != "" && !studentMatches(student, search) {
			continue
		}
		matched = append(matched, student)
	}
	return matched
}

func studentMatches(student models.Student, search string) bool {
	for _, field := range []string{student.FullName(), student.StudentID, student.Course, student.Email} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// GetStudent returns one student
func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.api(ctx).GetStudent(ctx, id)
	if err != nil {
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgStudentsLoadFailed))
	}
	return student, nil
}

// CreateStudent adds a student record
func (s *StudentService) CreateStudent(ctx context.Context, req dto.StudentRequest) (*models.Student, error) {
	student, err := s.api(ctx).CreateStudent(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("studentID", req.StudentID).Msg("Student create failed")
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgStudentSaveFailed))
	}
	return student, nil
}

// UpdateStudent changes a student record
func (s *StudentService) UpdateStudent(ctx context.Context, id string, req dto.StudentRequest) (*models.Student, error) {
	student, err := s.api(ctx).UpdateStudent(ctx, id, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("id", id).Msg("Student update failed")
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgStudentSaveFailed))
	}
	return student, nil
}

// DeleteStudent removes a student record
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.api(ctx).DeleteStudent(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("id", id).Msg("Student delete failed")
		return apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgStudentDeleteFailed))
	}
	s.logger.Info().Str("id", id).Msg("Student deleted")
	return nil
}
