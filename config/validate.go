// SPDX-License-Identifier: MIT
// File: validate.go
// Role: struct-tag validation plus cross-field scenario rules.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/epigraph/prob"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("config: invalid scenario")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags, then rules tags cannot express.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidScenario, formatValidationError(err))
	}
	for i, l := range s.Layers {
		if l.Kind != KindClusters {
			continue
		}
		sizes, err := l.SizeSpace()
		if err != nil {
			return fmt.Errorf("%w: layers[%d]: %w", ErrInvalidScenario, i, err)
		}
		if !prob.PositiveSupport(sizes) {
			return fmt.Errorf("%w: layers[%d] %q: cluster sizes with positive mass must be ≥ 1", ErrInvalidScenario, i, l.Name)
		}
	}
	return nil
}

// formatValidationError joins field errors into one readable message.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

// formatFieldError formats a single field validation error.
func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Scenario.")

	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be ≥ %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be ≤ %s", field, e.Param())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
