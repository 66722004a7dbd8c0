// Package validation implements the record validator shared by the API
// service and the client-side submission controller. Rules apply in order
// and the first failure wins: required fields, then email format, then
// enum membership.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bmahler/estate-portal/api/internal/models"
)

// Validation failure sentinels. Callers match with errors.Is and map them
// to user-facing messages.
var (
	ErrMissingRequired = errors.New("missing required fields")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidEnum     = errors.New("invalid enum value")
)

// emailPattern matches local@domain.tld with no whitespace, exactly the
// structure the portal has always accepted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Input carries the fields the validator inspects. Required fields are
// plain strings; enum fields are nil when absent.
type Input struct {
	Name         string
	Email        string
	Contact      string
	Needs        string
	PropertyType *string
	BudgetRange  *string
	Timeline     *string
	Industry     *string
}

// Validate checks the input against the inquiry contract. Values are
// expected to be trimmed already; whitespace-only required fields fail
// regardless.
func Validate(in Input) error {
	if isBlank(in.Name) || isBlank(in.Email) || isBlank(in.Contact) || isBlank(in.Needs) {
		return ErrMissingRequired
	}

	if !ValidEmail(in.Email) {
		return ErrInvalidEmail
	}

	if err := validateEnum("property_type", in.PropertyType, models.PropertyTypes); err != nil {
		return err
	}
	if err := validateEnum("budget_range", in.BudgetRange, models.BudgetRanges); err != nil {
		return err
	}
	if err := validateEnum("timeline", in.Timeline, models.Timelines); err != nil {
		return err
	}
	if err := validateEnum("industry", in.Industry, models.Industries); err != nil {
		return err
	}

	return nil
}

// ValidEmail reports whether s matches the portal's email format.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func validateEnum(field string, value *string, allowed []string) error {
	if value == nil {
		return nil
	}
	for _, v := range allowed {
		if *value == v {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of: %s", ErrInvalidEnum, field, strings.Join(allowed, ", "))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
