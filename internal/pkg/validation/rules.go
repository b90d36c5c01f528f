package validation

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// Validation rule patterns
var (
	// EmailPattern accepts anything shaped like local@domain.tld. Unicode spaces and the BOM
	// count as whitespace.
	EmailPattern = `^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`

	// PhonePattern is a Philippine mobile number: 11 digits starting with 09
	PhonePattern = `^09\d{9}$`

	// StudentIDPattern accepts the short YY-NNNN form (1 to 4 trailing digits) and the long YY-N-NNNN form
	StudentIDPattern = `^\d{2}-\d{1,4}$|^\d{2}-\d{1}-\d{4}$`

	// PasswordMinLength is the shortest password the registration form accepts
	PasswordMinLength = 6

	// PhoneMaxDigits caps what the phone inputs keep
	PhoneMaxDigits = 11
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	Phone     *regexp.Regexp
	StudentID *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	Phone:     regexp.MustCompile(PhonePattern),
	StudentID: regexp.MustCompile(StudentIDPattern),
}

// digitsOnly drops every byte that is not an ASCII digit
func digitsOnly(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatStudentID masks raw keystrokes as YY-NNNN or YY-N-NNNN.
// Digits past the seventh are dropped.
func FormatStudentID(raw string) string {
	digits := digitsOnly(raw)

	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 6:
		return digits[:2] + "-" + digits[2:]
	default:
		return digits[:2] + "-" + digits[2:3] + "-" + digits[3:7]
	}
}

// IsStudentIDValid reports whether id has one of the two accepted student ID shapes.
// 18-1 and 18-123 pass too; the short form accepts 1 to 4 trailing digits.
func IsStudentIDValid(id string) bool {
	return CompiledPatterns.StudentID.MatchString(id)
}

// FilterPhone keeps the first 11 digits of raw
func FilterPhone(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > PhoneMaxDigits {
		return digits[:PhoneMaxDigits]
	}
	return digits
}

// IsPhoneValid reports whether phone is 11 digits starting with 09
func IsPhoneValid(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// IsEmailValid reports whether email is shaped like an address
func IsEmailValid(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// StringValidation checks a single string value against a set of constraints
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Trim     bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length, counted in UTF-16 code units
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length, counted in UTF-16 code units
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// WithTrim makes the emptiness check ignore surrounding whitespace
func (v *StringValidation) WithTrim() *StringValidation {
	v.Trim = true
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	value := v.Value
	if v.Trim {
		value = strings.TrimSpace(value)
	}

	if value == "" {
		return !v.Required
	}

	length := len(utf16.Encode([]rune(v.Value)))
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
