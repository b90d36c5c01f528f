package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/yigit/ojtportal/internal/app/models"
)

// custom binding tags & texts
const (
	studentIDTag  = "student_id"
	studentIDText = MsgStudentIDFormat

	phMobileTag  = "ph_mobile"
	phMobileText = "{0} must be 11 digits starting with 09"

	clockActionTag  = "clock_action"
	clockActionText = "{0} must be one of IN, OUT, LUNCH IN, LUNCH OUT"

	ymdTag    = "ymd"
	ymdText   = "{0} must be a date formatted YYYY-MM-DD"
	ymdLayout = "2006-01-02"

	requiredTag  = "required"
	requiredText = "{0} is required"
)

var (
	mu         sync.RWMutex
	translator ut.Translator
)

func newTranslator() ut.Translator {
	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	return trans
}

// Translator returns the English translator installed by the last RegisterBindings call
func Translator() ut.Translator {
	mu.RLock()
	trans := translator
	mu.RUnlock()
	if trans != nil {
		return trans
	}

	mu.Lock()
	defer mu.Unlock()
	if translator == nil {
		translator = newTranslator()
	}
	return translator
}

// RegisterBindings installs the portal's tags, the English messages and JSON field names on v.
// Every call gets a fresh translator, so registering a second validator does not conflict.
func RegisterBindings(v *validator.Validate) error {
	trans := newTranslator()
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}

	// Use JSON or form tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	custom := []struct {
		tag  string
		text string
		fn   validator.Func
	}{
		{studentIDTag, studentIDText, studentIDValidation},
		{phMobileTag, phMobileText, phMobileValidation},
		{clockActionTag, clockActionText, clockActionValidation},
		{ymdTag, ymdText, ymdValidation},
	}
	for _, c := range custom {
		if err := v.RegisterValidation(c.tag, c.fn); err != nil {
			return err
		}
		registerTranslation(v, trans, c.tag, c.text, false)
	}

	registerTranslation(v, trans, requiredTag, requiredText, true)

	mu.Lock()
	translator = trans
	mu.Unlock()
	return nil
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string, override bool) {
	_ = v.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// TranslateBindingError turns validator errors into per-field messages.
// It returns nil when err carries no field errors.
func TranslateBindingError(err error) Errors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	errs := make(Errors, len(verrs))
	for _, fe := range verrs {
		errs[fe.Field()] = fe.Translate(Translator())
	}
	return errs
}

func studentIDValidation(fl validator.FieldLevel) bool {
	return IsStudentIDValid(fl.Field().String())
}

func phMobileValidation(fl validator.FieldLevel) bool {
	return IsPhoneValid(fl.Field().String())
}

func clockActionValidation(fl validator.FieldLevel) bool {
	return models.TimeLogAction(fl.Field().String()).Valid()
}

func ymdValidation(fl validator.FieldLevel) bool {
	_, err := time.Parse(ymdLayout, fl.Field().String())
	return err == nil
}
