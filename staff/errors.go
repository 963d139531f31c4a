/*
errors.go - Rejection reasons and lookup errors

ERROR CATEGORIES:
  1. Validation rejections - missing field, bad number, bad date, duplicate
  2. Lookup errors         - index out of range, nothing found

  State-gate refusals (not joined, already terminated) are not errors;
  they come back as a Result with StatusRejected (see result.go).

USAGE:
  rec, err := reg.AddFullTime(form)
  var rej *staff.RejectError
  if errors.As(err, &rej) {
      show(rej.Error())            // "Joining Date must be in dd/mm/yyyy format."
  }
  if errors.Is(err, staff.ErrDuplicateVacancy) { ... }
*/
package staff

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrBadDateFormat    = errors.New("joining date not in dd/mm/yyyy format")
	ErrDuplicateVacancy = errors.New("duplicate vacancy number")

	// ErrInvalidIndex is returned by FindByIndex for out-of-range positions.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("staff not found")
)

// =============================================================================
// REJECT ERROR - Carries the reason and the offending field
// =============================================================================

// RejectReason names why an insertion was refused.
type RejectReason string

const (
	ReasonMissingField     RejectReason = "missing_field"
	ReasonInvalidNumber    RejectReason = "invalid_number"
	ReasonBadDateFormat    RejectReason = "bad_date_format"
	ReasonDuplicateVacancy RejectReason = "duplicate_vacancy_number"
)

// RejectError is returned by Registry.AddFullTime and AddPartTime. The
// registry is left unchanged whenever one is returned.
type RejectError struct {
	Reason RejectReason
	Field  Field
}

func (e *RejectError) Error() string {
	switch e.Reason {
	case ReasonMissingField:
		return fmt.Sprintf("%s cannot be empty.", e.Field)
	case ReasonInvalidNumber:
		return fmt.Sprintf("%s must be a valid non-negative number.", e.Field)
	case ReasonBadDateFormat:
		return "Joining Date must be in dd/mm/yyyy format."
	case ReasonDuplicateVacancy:
		return "Vacancy Number already exists."
	default:
		return string(e.Reason)
	}
}

func (e *RejectError) Unwrap() error {
	switch e.Reason {
	case ReasonMissingField:
		return ErrMissingField
	case ReasonInvalidNumber:
		return ErrInvalidNumber
	case ReasonBadDateFormat:
		return ErrBadDateFormat
	case ReasonDuplicateVacancy:
		return ErrDuplicateVacancy
	default:
		return nil
	}
}

func reject(reason RejectReason, field Field) error {
	return &RejectError{Reason: reason, Field: field}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsRejection returns true if err is a validation rejection.
func IsRejection(err error) bool {
	var rej *RejectError
	return errors.As(err, &rej)
}

// IsNotFound returns true if err indicates a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidIndex)
}
