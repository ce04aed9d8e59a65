package dictfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/slang-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateEntry, domain.Entry{})
	return v
}

func validateEntry(sl validator.StructLevel) {
	e := sl.Current().Interface().(domain.Entry)
	if strings.TrimSpace(e.Term) == "" {
		sl.ReportError(e.Term, "Term", "term", "notblank", "")
	}
	if strings.TrimSpace(e.Translation) == "" {
		sl.ReportError(e.Translation, "Translation", "translation", "notblank", "")
	}
}

// Validate checks that the file has at least one entry, that every term and
// translation is non-blank, and that terms are unique.
func (f *File) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate dictionary: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fe.Namespace(),
			Message: messageFor(fe.Tag()),
		})
	}
	return domain.NewValidationErrors(fields)
}

func messageFor(tag string) string {
	switch tag {
	case "required", "min":
		return "at least one entry required"
	case "unique":
		return "duplicate term"
	case "notblank":
		return "must not be blank"
	default:
		return tag
	}
}
