package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
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

type CategoryValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCategoryValidator(log *logger.Logger) *CategoryValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("resource_kind", validateResourceKind); err != nil {
		log.Fatal("Failed to register 'resource_kind' validator",
			"error", err,
		)
	}
	v.RegisterStructValidation(validateOptionPrice, model.OptionInput{})

	return &CategoryValidator{
		validate: v,
		logger:   log,
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func validateResourceKind(fl validator.FieldLevel) bool {
	return model.ResourceKind(fl.Field().String()).IsValid()
}

// validateOptionPrice enforces a present, non-negative price. decimal cannot
// hold NaN or infinities, so finiteness is guaranteed by decoding.
func validateOptionPrice(sl validator.StructLevel) {
	opt := sl.Current().Interface().(model.OptionInput)
	if !opt.Price.Valid {
		sl.ReportError(opt.Price, "price", "Price", "required", "")
		return
	}
	if opt.Price.Decimal.IsNegative() {
		sl.ReportError(opt.Price, "price", "Price", "gte", "0")
	}
}

func (v *CategoryValidator) Validate(input *model.CategoryOptionsInput) error {
	if err := v.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *CategoryValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		field := fieldPath(err.Namespace())
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			if err.Kind() == reflect.Slice {
				message = fmt.Sprintf("%s must contain at least %s item(s)", field, err.Param())
			} else {
				message = fmt.Sprintf("%s must be at least %s characters", field, err.Param())
			}
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be a non-negative number", field)
		case "mongodb":
			message = fmt.Sprintf("%s must be a 24 character hex id", field)
		case "resource_kind":
			message = fmt.Sprintf("%s must be one of: %s", field, resourceKindList())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return validationErrors
}

// fieldPath drops the root struct name, "CategoryOptionsInput.options[0].price"
// becomes "options[0].price".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func resourceKindList() string {
	kinds := model.ResourceKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
