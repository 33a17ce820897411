package form

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern treats Unicode spaces and the BOM as whitespace, not just
// ASCII \s.
var (
	contactPattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern   = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
)

// requiredMessages is the message for a field that is blank.
var requiredMessages = map[string]string{
	FieldName:    "School name is required",
	FieldAddress: "Address is required",
	FieldCity:    "City is required",
	FieldState:   "State is required",
	FieldContact: "Contact number is required",
	FieldEmail:   "Email is required",
}

// shapeMessages is the message for a field that is present but malformed.
var shapeMessages = map[string]string{
	"contact10":  "Contact number must be 10 digits",
	"emailshape": "Please enter a valid email address",
}

// validate is shared by every call; it is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name so FieldError.Field() is a form key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "contact10", func(fl validator.FieldLevel) bool {
		return contactPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "emailshape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("form: register " + tag + ": " + err.Error())
	}
}

// Validate checks d against the form rules and returns one message per
// violating field. Rules are independent per field; for contact and email
// the shape is only checked once the field is non-blank. Image is never
// validated.
func Validate(d SchoolDraft) Errors {
	errs := Errors{}

	err := validate.Struct(d)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable if the validator itself is misconfigured.
		panic("form: validate draft: " + err.Error())
	}

	for _, fe := range fieldErrs {
		field := fe.Field()
		if fe.Tag() == "notblank" {
			errs[field] = requiredMessages[field]
			continue
		}
		errs[field] = shapeMessages[fe.Tag()]
	}

	return errs
}
