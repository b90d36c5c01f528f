package validation

import (
	"strings"

	"github.com/yigit/ojtportal/internal/app/models/dto"
)

// FieldMapping resolves a generic input name to its registration payload field
var FieldMapping = map[string]string{
	FieldStudentID:   "pendingStudentId",
	FieldFirstName:   "pendingFirstname",
	FieldMiddleName:  "pendingMiddlename",
	FieldLastName:    "pendingLastname",
	FieldEmail:       "pendingEmail",
	FieldPhoneNumber: "pendingNumber",
	FieldAddress:     "pendingAddress",
	FieldCourse:      "pendingCourse",
	FieldYear:        "pendingYear",
	FieldPassword:    "pendingPassword",
}

// PayloadField returns the payload field for an input name. Unmapped names pass through.
func PayloadField(name string) string {
	if field, ok := FieldMapping[name]; ok {
		return field
	}
	return name
}

type fieldSetter func(req *dto.RegistrationRequest, value string)

// setters is keyed by payload field name
var setters = map[string]fieldSetter{
	"pendingStudentId":  func(r *dto.RegistrationRequest, v string) { r.StudentID = v },
	"pendingFirstname":  func(r *dto.RegistrationRequest, v string) { r.FirstName = v },
	"pendingMiddlename": func(r *dto.RegistrationRequest, v string) { r.MiddleName = v },
	"pendingLastname":   func(r *dto.RegistrationRequest, v string) { r.LastName = v },
	"pendingPrefix":     func(r *dto.RegistrationRequest, v string) { r.Prefix = v },
	"pendingEmail":      func(r *dto.RegistrationRequest, v string) { r.Email = v },
	"pendingNumber":     func(r *dto.RegistrationRequest, v string) { r.PhoneNumber = v },
	"pendingAddress":    func(r *dto.RegistrationRequest, v string) { r.Address = v },
	"pendingCourse":     func(r *dto.RegistrationRequest, v string) { r.Course = v },
	"pendingYear":       func(r *dto.RegistrationRequest, v string) { r.Year = v },
	"pendingUsername":   func(r *dto.RegistrationRequest, v string) { r.Username = v },
	"pendingPassword":   func(r *dto.RegistrationRequest, v string) { r.Password = v },
	"nameOfSupervisor":  func(r *dto.RegistrationRequest, v string) { r.SupervisorName = v },
	"hteAddress":        func(r *dto.RegistrationRequest, v string) { r.HTEAddress = v },
	"contactNumber":     func(r *dto.RegistrationRequest, v string) { r.ContactNumber = v },
	"department":        func(r *dto.RegistrationRequest, v string) { r.Department = v },
	"confirmPassword":   func(r *dto.RegistrationRequest, v string) { r.ConfirmPassword = v },
}

// NormalizeInput applies the per-field input mask: digits for phone inputs, the
// YY-NNNN mask for the student ID. Other values are returned unchanged.
func NormalizeInput(name, value string) string {
	switch name {
	case FieldPhoneNumber, FieldContactNumber:
		return FilterPhone(value)
	case FieldStudentID:
		return FormatStudentID(value)
	default:
		return value
	}
}

// ApplyChange stores one edited input into req and clears that input's error.
// It reports false when the name resolves to no known field; req is left as is then.
func ApplyChange(req *dto.RegistrationRequest, errs Errors, name, value string) bool {
	set, ok := setters[PayloadField(name)]
	if !ok {
		return false
	}

	set(req, NormalizeInput(name, value))
	if errs != nil {
		errs.Clear(name)
	}
	return true
}

// DefaultUsername returns the username a registration is submitted with: the one given,
// else the email, else the student ID. A blank username counts as not given.
func DefaultUsername(form dto.RegistrationForm) string {
	switch {
	case strings.TrimSpace(form.Username) != "":
		return form.Username
	case form.Email != "":
		return form.Email
	default:
		return form.StudentID
	}
}
