package validator

import (
	"reflect"
	"strings"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// NameSeparator separates respondent, question id and answer in observations,
// so names must never contain it.
const NameSeparator = ": "

// Validator is the main validator instance that combines all validation types
type Validator struct {
	structValidator   *validator.Validate
	businessValidator *BusinessValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:   structValidator,
		businessValidator: NewBusinessValidator(),
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if errs := ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// ValidateBusiness validates business rules only
func (v *Validator) ValidateBusiness(s interface{}) ValidationErrors {
	return v.businessValidator.Validate(s)
}

// Validate performs complete validation (struct + business rules)
func (v *Validator) Validate(s interface{}) error {
	if err := v.ValidateStruct(s); err != nil {
		return err
	}

	if errors := v.ValidateBusiness(s); len(errors) > 0 {
		return errors
	}

	return nil
}

// Business returns the business validator
func (v *Validator) Business() *BusinessValidator {
	return v.businessValidator
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("instrument_kind", validateInstrumentKind)
	validate.RegisterValidation("no_separator", validateNoSeparator)
	validate.RegisterValidation("export_format", validateExportFormat)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateInstrumentKind(fl validator.FieldLevel) bool {
	validKinds := []models.InstrumentKind{
		models.KindMultipleChoice,
	}

	value := fl.Field().String()
	for _, kind := range validKinds {
		if string(kind) == value {
			return true
		}
	}
	return false
}

func validateNoSeparator(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), NameSeparator)
}

func validateExportFormat(fl validator.FieldLevel) bool {
	switch models.ExportFormat(fl.Field().String()) {
	case models.ExportCSV, models.ExportJSON, models.ExportXLSX:
		return true
	}
	return false
}
