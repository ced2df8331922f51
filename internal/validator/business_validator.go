package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SAP-F-2025/surveyor-service/internal/errors"
	"github.com/SAP-F-2025/surveyor-service/internal/models"
)

// BusinessValidator checks the cross-field rules struct tags cannot express
type BusinessValidator struct{}

func NewBusinessValidator() *BusinessValidator {
	return &BusinessValidator{}
}

// Validate dispatches on the value's type. Unknown types have no business rules.
func (v *BusinessValidator) Validate(s interface{}) ValidationErrors {
	switch value := s.(type) {
	case models.InstrumentInfo:
		return v.ValidateInstrument(value, "instrument")
	case *models.InstrumentInfo:
		return v.ValidateInstrument(*value, "instrument")
	case models.SurveyDefinition:
		return v.ValidateSurvey(value)
	case *models.SurveyDefinition:
		return v.ValidateSurvey(*value)
	case models.AdministrationRequest:
		return v.ValidateAdministrationRequest(value)
	case *models.AdministrationRequest:
		return v.ValidateAdministrationRequest(*value)
	}
	return nil
}

// ValidateInstrument requires every question's dimension to be declared by
// its instrument and every statistic name to be unique.
func (v *BusinessValidator) ValidateInstrument(info models.InstrumentInfo, field string) ValidationErrors {
	var errs ValidationErrors

	for i, q := range info.Questions {
		if !info.HasDimension(q.Dimension) {
			errs = append(errs, *errors.NewValidationErrorWithRule(
				fmt.Sprintf("%s.questions[%d].dimension", field, i),
				fmt.Sprintf("dimension %q is not declared by instrument %q", q.Dimension, info.Name),
				"declared_dimension",
				q.Dimension,
			))
		}
	}

	seen := make(map[string]struct{}, len(info.Statistics))
	for _, stat := range info.Statistics {
		if _, dup := seen[stat]; dup {
			errs = append(errs, *errors.NewValidationErrorWithRule(
				field+".statistics", fmt.Sprintf("statistic %q is declared twice", stat), "unique", stat))
		}
		seen[stat] = struct{}{}
	}

	return errs
}

// ValidateSurvey enforces non-empty instrument and roster lists, unique
// instrument names and separator-free respondent names.
func (v *BusinessValidator) ValidateSurvey(def models.SurveyDefinition) ValidationErrors {
	var errs ValidationErrors

	if len(def.Instruments) == 0 {
		errs = append(errs, *errors.NewValidationErrorWithRule("instruments", "must not be empty", "required", nil))
	}
	if len(def.Roster) == 0 {
		errs = append(errs, *errors.NewValidationErrorWithRule("roster", "must not be empty", "required", nil))
	}

	names := make(map[string]struct{}, len(def.Instruments))
	for i, info := range def.Instruments {
		field := fmt.Sprintf("instruments[%d]", i)
		if _, dup := names[info.Name]; dup {
			errs = append(errs, *errors.NewValidationErrorWithRule(
				field+".name", fmt.Sprintf("instrument %q is listed twice", info.Name), "unique", info.Name))
		}
		names[info.Name] = struct{}{}
		errs = append(errs, v.ValidateInstrument(info, field)...)
	}

	respondents := make(map[string]struct{}, len(def.Roster))
	for i, name := range def.Roster {
		field := fmt.Sprintf("roster[%d]", i)
		if strings.TrimSpace(name) == "" {
			errs = append(errs, *errors.NewValidationErrorWithRule(field, "is required", "required", name))
			continue
		}
		if strings.Contains(name, NameSeparator) {
			errs = append(errs, *errors.NewValidationErrorWithRule(
				field, "must not contain the ': ' separator", "no_separator", name))
		}
		if _, dup := respondents[name]; dup {
			errs = append(errs, *errors.NewValidationErrorWithRule(
				field, fmt.Sprintf("respondent %q is listed twice", name), "unique", name))
		}
		respondents[name] = struct{}{}
	}

	return errs
}

// ValidateAdministrationRequest requires a roster or a scenario to draw one from
func (v *BusinessValidator) ValidateAdministrationRequest(req models.AdministrationRequest) ValidationErrors {
	var errs ValidationErrors

	if len(req.Roster) == 0 && req.Scenario == "" {
		errs = append(errs, *errors.NewValidationErrorWithRule(
			"roster", "either roster or scenario is required", "required_without", nil))
	}

	if len(req.Roster) > 0 {
		known := make(map[string]struct{}, len(req.Roster))
		for _, name := range req.Roster {
			known[name] = struct{}{}
		}
		respondents := make([]string, 0, len(req.Answers))
		for respondent := range req.Answers {
			respondents = append(respondents, respondent)
		}
		sort.Strings(respondents)
		for _, respondent := range respondents {
			if _, ok := known[respondent]; !ok {
				errs = append(errs, *errors.NewValidationErrorWithRule(
					"answers", fmt.Sprintf("respondent %q is not in the roster", respondent), "roster_member", respondent))
			}
		}
	}

	return errs
}
