package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

const dateOnly = "2006-01-02"

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Missing bool   `json:"-"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Missing reports whether every error is an absent required field.
func (v ValidationErrors) Missing() bool {
	for _, err := range v {
		if !err.Missing {
			return false
		}
	}
	return len(v) > 0
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterStructValidation(validateTotalPrice, model.BookingInput{})
	v.RegisterStructValidation(validateSnapshotPrice, model.OptionSnapshotInput{})

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateTotalPrice(sl validator.StructLevel) {
	input := sl.Current().Interface().(model.BookingInput)
	if !input.TotalPrice.Valid {
		sl.ReportError(input.TotalPrice, "totalPrice", "TotalPrice", "required", "")
		return
	}
	if input.TotalPrice.Decimal.IsNegative() {
		sl.ReportError(input.TotalPrice, "totalPrice", "TotalPrice", "gte", "0")
	}
}

func validateSnapshotPrice(sl validator.StructLevel) {
	snap := sl.Current().Interface().(model.OptionSnapshotInput)
	if !snap.Price.Valid {
		sl.ReportError(snap.Price, "price", "Price", "required", "")
		return
	}
	if snap.Price.Decimal.IsNegative() {
		sl.ReportError(snap.Price, "price", "Price", "gte", "0")
	}
}

func (v *BookingValidator) Validate(input *model.BookingInput) error {
	if err := v.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

// ParseTravelDate accepts a full RFC 3339 timestamp or a plain calendar date,
// which is what the booking form sends.
func ParseTravelDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnly, value); err == nil {
		return t, nil
	}
	return time.Time{}, ValidationErrors{
		ValidationError{
			Field:   "travelDate",
			Message: "travelDate must be a date (YYYY-MM-DD) or an RFC 3339 timestamp",
		},
	}
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		field := fieldPath(err.Namespace())
		message := err.Error()
		missing := false

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
			missing = true
		case "min":
			message = fmt.Sprintf("%s must contain at least %s selection(s)", field, err.Param())
			missing = true
		case "gte":
			message = fmt.Sprintf("%s must be a non-negative number", field)
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   field,
			Message: message,
			Missing: missing,
		})
	}

	return validationErrors
}

// fieldPath drops the root struct name, "BookingInput.selectedOptions[Hotels].price"
// becomes "selectedOptions[Hotels].price".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
