package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goalboard/goalboard/internal/item"
	apperrors "github.com/goalboard/goalboard/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	versionPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("board_version", func(fl validator.FieldLevel) bool {
			return versionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("tint_name", func(fl validator.FieldLevel) bool {
			_, err := item.ParseTint(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateBoard performs schema and cross-field validation on the board.
func ValidateBoard(board *Board) error {
	if board == nil {
		return apperrors.NewValidationError("board", "board is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(board); err != nil {
		return convertValidationError(err)
	}

	for g, goal := range board.Goals {
		titles := make(map[string]struct{}, len(goal.Items))
		for i, entry := range goal.Items {
			if err := validateEntry(entry, g, i); err != nil {
				return err
			}

			key := strings.ToLower(strings.TrimSpace(entry.Title))
			if _, exists := titles[key]; exists {
				return apperrors.NewValidationError(
					fieldForEntry(g, i, "title"),
					fmt.Sprintf("duplicate item title %q", entry.Title),
					nil,
				)
			}
			titles[key] = struct{}{}
		}
	}

	return nil
}

// validateEntry checks that the payload matching the entry kind is present.
// Struct-level validation has already covered the payload fields themselves.
func validateEntry(entry Entry, goalIndex, itemIndex int) error {
	missing := func() error {
		return apperrors.NewValidationError(
			fieldForEntry(goalIndex, itemIndex, ""),
			fmt.Sprintf("%s fields are required for kind %q", entry.Kind, entry.Kind),
			nil,
		)
	}

	switch entry.Kind {
	case "detailed":
		if entry.Detailed == nil {
			return missing()
		}
	case "note":
		if entry.Note == nil {
			return missing()
		}
	case "task":
		if entry.Task == nil {
			return missing()
		}
	case "badge":
		if entry.Badge == nil {
			return missing()
		}
	case "plain":
		// Title only; nothing further to check.
	}

	return nil
}

// convertValidationError normalizes validator errors into board validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("board", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForEntry(goalIndex, itemIndex int, field string) string {
	base := fmt.Sprintf("goals[%d].items[%d]", goalIndex, itemIndex)
	if field == "" {
		return base
	}
	return base + "." + field
}
