package validation

import (
	"sort"
	"strings"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
)

// Input names used as error keys
const (
	FieldStudentID       = "studentId"
	FieldFirstName       = "firstName"
	FieldMiddleName      = "middleName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldAddress         = "address"
	FieldPhoneNumber     = "phoneNumber"
	FieldCourse          = "course"
	FieldYear            = "year"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldContactNumber   = "contactNumber"
)

// Registration error messages
const (
	MsgStudentIDRequired       = "Student ID is required"
	MsgFirstNameRequired       = "First name is required"
	MsgLastNameRequired        = "Last name is required"
	MsgEmailRequired           = "Email is required"
	MsgAddressRequired         = "Address is required"
	MsgCourseRequired          = "Course is required"
	MsgPasswordRequired        = "Password is required"
	MsgConfirmPasswordRequired = "Please confirm your password"
	MsgEmailInvalid            = "Please enter a valid email address"
	MsgPhoneInvalid            = "Phone number must be 11 digits starting with 09"
	MsgContactNumberInvalid    = "Contact number must be 11 digits starting with 09"
	MsgPasswordTooShort        = "Password must be at least 6 characters long"
	MsgPasswordMismatch        = "Passwords do not match"
	MsgStudentIDFormat         = "Student ID format: YY-NNNN or YY-N-NNNN"
)

// Errors maps an input name to its message. Only invalid fields have a key.
type Errors map[string]string

// Submittable reports whether the validated form may be sent
func (e Errors) Submittable() bool {
	return len(e) == 0
}

// Fields returns the invalid input names in a stable order
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Clear drops the error of a single field, the optimistic reset done while the user edits it
func (e Errors) Clear(field string) {
	delete(e, field)
}

// FormError carries field errors through an error return
type FormError struct {
	Errors Errors
}

// NewFormError wraps errs as an error
func NewFormError(errs Errors) *FormError {
	return &FormError{Errors: errs}
}

// Error implements error interface
func (e *FormError) Error() string {
	return "validation failed: " + strings.Join(e.Errors.Fields(), ", ")
}

// Unwrap implements errors.Unwrap interface
func (e *FormError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

type requiredRule struct {
	field   string
	value   func(form dto.RegistrationForm, confirm string) string
	message string
}

var requiredRules = []requiredRule{
	{FieldStudentID, func(f dto.RegistrationForm, _ string) string { return f.StudentID }, MsgStudentIDRequired},
	{FieldFirstName, func(f dto.RegistrationForm, _ string) string { return f.FirstName }, MsgFirstNameRequired},
	{FieldLastName, func(f dto.RegistrationForm, _ string) string { return f.LastName }, MsgLastNameRequired},
	{FieldEmail, func(f dto.RegistrationForm, _ string) string { return f.Email }, MsgEmailRequired},
	{FieldAddress, func(f dto.RegistrationForm, _ string) string { return f.Address }, MsgAddressRequired},
	{FieldCourse, func(f dto.RegistrationForm, _ string) string { return f.Course }, MsgCourseRequired},
	{FieldPassword, func(f dto.RegistrationForm, _ string) string { return f.Password }, MsgPasswordRequired},
	{FieldConfirmPassword, func(_ dto.RegistrationForm, c string) string { return c }, MsgConfirmPasswordRequired},
}

// ValidateRegistration runs every registration rule against form and returns the errors found.
// Rules run in a fixed order and a later rule overwrites the message of an earlier one for the
// same field.
func ValidateRegistration(form dto.RegistrationForm, confirmPassword string) Errors {
	errs := Errors{}

	for _, rule := range requiredRules {
		if !NewStringValidation(rule.value(form, confirmPassword)).WithTrim().Validate() {
			errs[rule.field] = rule.message
		}
	}

	if !NewStringValidation(form.Email).WithRequired(false).WithPattern(CompiledPatterns.Email).Validate() {
		errs[FieldEmail] = MsgEmailInvalid
	}

	if !NewStringValidation(form.PhoneNumber).WithRequired(false).WithPattern(CompiledPatterns.Phone).Validate() {
		errs[FieldPhoneNumber] = MsgPhoneInvalid
	}

	if !NewStringValidation(form.ContactNumber).WithRequired(false).WithPattern(CompiledPatterns.Phone).Validate() {
		errs[FieldContactNumber] = MsgContactNumberInvalid
	}

	if !NewStringValidation(form.Password).WithRequired(false).WithMinLength(PasswordMinLength).Validate() {
		errs[FieldPassword] = MsgPasswordTooShort
	}

	// runs even when both are empty; two empty strings are equal and pass
	if form.Password != confirmPassword {
		errs[FieldConfirmPassword] = MsgPasswordMismatch
	}

	if !NewStringValidation(form.StudentID).WithRequired(false).WithPattern(CompiledPatterns.StudentID).Validate() {
		errs[FieldStudentID] = MsgStudentIDFormat
	}

	return errs
}
