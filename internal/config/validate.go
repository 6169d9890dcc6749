package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"

	"github.com/chatter/gitmodal/internal/keys"
	"github.com/chatter/gitmodal/internal/labels"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	keySpecPattern  = regexp.MustCompile(`^(?:(?:ctrl|alt|shift|super|meta)\+)*(?:[[:graph:]]|[a-z][a-z0-9]+)$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return isColor(fl.Field().String())
		})

		_ = v.RegisterValidation("keyspec", func(fl validator.FieldLevel) bool {
			return keySpecPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("action", func(fl validator.FieldLevel) bool {
			return slices.Contains(keys.Actions(), fl.Field().String())
		})

		_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
			return slices.Contains(labels.Supported(), fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isColor accepts an ANSI palette index (0-255) or a #rgb / #rrggbb value.
func isColor(s string) bool {
	if hexColorPattern.MatchString(s) {
		return true
	}

	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// Validate checks cfg and reports every failing field at once.
func Validate(cfg *Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s: %q must be one of %s", field, fe.Value(), fe.Param())
	case "color":
		return fmt.Sprintf("%s: %q is not a color (0-255 or #rrggbb)", field, fe.Value())
	case "keyspec":
		return fmt.Sprintf("%s: %q is not a key", field, fe.Value())
	case "action":
		msg := fmt.Sprintf("%s: unknown action %q", field, fe.Value())
		if guess := closestAction(fmt.Sprint(fe.Value())); guess != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", guess)
		}
		return msg
	case "language":
		return fmt.Sprintf("%s: unsupported language %q", field, fe.Value())
	case "min":
		return fmt.Sprintf("%s: needs at least one key", field)
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}

// maxSuggestDistance bounds how different a typo may be and still get a hint.
const maxSuggestDistance = 3

// closestAction returns the action name nearest to name, or "" if none is close.
func closestAction(name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, action := range keys.Actions() {
		if d := levenshtein.ComputeDistance(name, action); d < bestDist {
			best, bestDist = action, d
		}
	}
	return best
}
