package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
	"github.com/yigit/ojtportal/internal/pkg/validation"
)

// RegistrationService drives the student self-registration form
type RegistrationService struct {
	api       APIFactory
	loginPath string
	logger    zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService. loginPath is where the browser goes after a
// successful submission.
func NewRegistrationService(api APIFactory, loginPath string, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		api:       api,
		loginPath: loginPath,
		logger:    logger,
	}
}

func newState(req dto.RegistrationRequest, errs validation.Errors) *dto.RegistrationStateResponse {
	if errs == nil {
		errs = validation.Errors{}
	}
	return &dto.RegistrationStateResponse{
		Form:        req,
		Errors:      errs,
		Submittable: errs.Submittable(),
	}
}

// Validate runs every registration rule against the form
func (s *RegistrationService) Validate(req dto.RegistrationRequest) *dto.RegistrationStateResponse {
	return newState(req, validation.ValidateRegistration(req.RegistrationForm, req.ConfirmPassword))
}

// ApplyChange applies one field edit to the submitted form state.
// The edited field's error is cleared; other errors are kept until the next validation.
func (s *RegistrationService) ApplyChange(change dto.RegistrationChangeRequest) (*dto.RegistrationStateResponse, error) {
	req := change.RegistrationRequest
	errs := validation.Errors{}
	for field, msg := range change.Errors {
		errs[field] = msg
	}

	if !validation.ApplyChange(&req, errs, change.Name, change.Value) {
		return nil, apperrors.NewBadRequestError("Unknown registration field: " + change.Name)
	}

	state := newState(req, errs)
	// clearing an error does not make the form valid
	state.Submittable = validation.ValidateRegistration(req.RegistrationForm, req.ConfirmPassword).Submittable()
	return state, nil
}

// Submit validates the form and, when valid, sends it for admin approval.
// Validation failures come back as *validation.FormError and nothing is sent.
func (s *RegistrationService) Submit(ctx context.Context, req dto.RegistrationRequest) (*dto.MessageResponse, error) {
	if errs := validation.ValidateRegistration(req.RegistrationForm, req.ConfirmPassword); !errs.Submittable() {
		return nil, validation.NewFormError(errs)
	}

	payload := req.RegistrationForm
	payload.Username = validation.DefaultUsername(payload)

	if _, err := s.api(ctx).RegisterStudent(ctx, payload); err != nil {
		s.logger.Warn().Err(err).Str("studentID", payload.StudentID).Msg("Student registration failed")
		return nil, apperrors.NewCustomError(err, apperrors.BannerMessage(err, MsgRegistrationFailed))
	}

	s.logger.Info().Str("studentID", payload.StudentID).Msg("Student registration submitted")
	return &dto.MessageResponse{
		Message:  MsgRegistrationSuccess,
		Redirect: s.loginPath,
	}, nil
}
