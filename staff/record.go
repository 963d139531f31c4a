/*
Package staff provides the staff-records model and its business rules.

PURPOSE:
  Models full-time and part-time hires, the rules guarding their mutation,
  the part-time termination lifecycle, and the registry that owns the
  collection and enforces creation-time validation and duplicate detection.

KEY CONCEPTS IN THIS FILE (record.go):
  - Record: the common identity/appointment fields of every hire
  - Staff:  the closed sum type over the two variants (FullTime, PartTime)
  - Render: the deterministic "Label: value" projection used by summary,
            search results and the export file

VARIANTS:
  *FullTime  adds salary and weekly hours (fulltime.go)
  *PartTime  adds working hours, wages, shift and termination (parttime.go)

  Variant-specific behaviour is reached through a type switch at the few
  places that need it. Everything else (render, lookup, search) works on
  the Staff interface.

CONCURRENCY:
  Nothing in this package locks. Callers serving several clients must
  serialize mutations themselves (see api.Handler).

SEE ALSO:
  - registry.go: collection, validation, lookup, summary/export views
  - result.go:   outcomes of gated mutations
  - errors.go:   rejection reasons
*/
package staff

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// KIND - Variant tag
// =============================================================================

type Kind string

const (
	KindFullTime Kind = "full_time"
	KindPartTime Kind = "part_time"
)

// =============================================================================
// RECORD - Common fields
// =============================================================================

// Record holds the fields every hire carries. The joining date is free text
// here; the DD/MM/YYYY format is enforced by the Registry when a record is
// created, not by the model.
type Record struct {
	VacancyNumber int
	Designation   string
	JobType       string
	StaffName     string
	JoiningDate   string
	Qualification string
	AppointedBy   string
	Joined        bool
}

// Render returns the base projection in its fixed field order.
func (r *Record) Render() string {
	var b strings.Builder
	writeLine(&b, "Vacancy Number", strconv.Itoa(r.VacancyNumber))
	writeLine(&b, "Designation", r.Designation)
	writeLine(&b, "Job Type", r.JobType)
	writeLine(&b, "Staff Name", r.StaffName)
	writeLine(&b, "Joining Date", r.JoiningDate)
	writeLine(&b, "Qualification", r.Qualification)
	writeLine(&b, "Appointed By", r.AppointedBy)
	writeLine(&b, "Joined", strconv.FormatBool(r.Joined))
	return b.String()
}

// =============================================================================
// STAFF - Sum type over the variants
// =============================================================================

// Staff is implemented only by *FullTime and *PartTime.
type Staff interface {
	// Common returns the shared fields. The pointer aliases the record,
	// so writes through it are visible to the registry.
	Common() *Record

	// Kind reports which variant this is.
	Kind() Kind

	// Render returns the textual projection. Variant fields are appended
	// only while the staff member has joined.
	Render() string

	sealed()
}

// IsTerminated reports whether s is a terminated part-time record.
// Full-time records are never retired.
func IsTerminated(s Staff) bool {
	switch v := s.(type) {
	case *PartTime:
		return v.terminated
	case *FullTime:
		return false
	default:
		return false
	}
}

// =============================================================================
// FORMATTING
// =============================================================================

func writeLine(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteByte('\n')
}

// FormatDecimal renders d with at least one fractional digit, so whole
// amounts read "5000.0" and fractional ones keep their significant digits
// ("15.5").
func FormatDecimal(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).StringFixed(1)
	}
	return d.String()
}
