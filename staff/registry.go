/*
registry.go - The collection of staff records and its invariants

PURPOSE:
  Owns the insertion-ordered collection of mixed FullTime/PartTime records.
  It is the only way to create records from form input and the gateway for
  mutations addressed by vacancy number.

INVARIANT:
  No two non-terminated records share a vacancy number.

  Terminated part-time records keep their vacancy number but are exempt
  from the duplicate check, so a vacancy can be refilled after termination.

CREATION CHECKS (in order, first failure wins):
  1. Every field present after trimming; numeric fields parse
  2. Joining date matches DD/MM/YYYY
  3. Vacancy number not held by a non-terminated record

VIEWS:
  Summary():   operational view, skips terminated part-time records
  ExportAll(): audit dump, includes everything
  Both are lazy and recomputed on every call.

LOOKUP:
  FindByVacancyNumber and Search include terminated records. Termination
  never removes a record from the registry.

SEE ALSO:
  - form.go:   input shapes and number parsing
  - errors.go: RejectError and lookup errors
  - export:    the flat file written from ExportAll()
*/
package staff

import (
	"iter"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Registry is not safe for concurrent use.
type Registry struct {
	records []Staff
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of records, terminated included.
func (r *Registry) Len() int { return len(r.records) }

// =============================================================================
// CREATION
// =============================================================================

// AddFullTime validates form and appends a new full-time record.
// On rejection the returned error is a *RejectError.
func (r *Registry) AddFullTime(form FullTimeForm) (*FullTime, error) {
	base := form.Form.trimmed()
	salaryText := strings.TrimSpace(form.Salary)
	hoursText := strings.TrimSpace(form.WeeklyHours)

	inputs := append(base.inputs(),
		input{FieldSalary, salaryText},
		input{FieldWeeklyHours, hoursText},
	)
	if err := requireAll(inputs...); err != nil {
		return nil, err
	}
	vacancy, err := ParseVacancyNumber(base.VacancyNumber)
	if err != nil {
		return nil, err
	}
	salary, err := ParseAmount(FieldSalary, salaryText)
	if err != nil {
		return nil, err
	}
	hours, err := ParseCount(FieldWeeklyHours, hoursText)
	if err != nil {
		return nil, err
	}
	if err := r.admit(base.JoiningDate, vacancy); err != nil {
		return nil, err
	}

	rec := NewFullTime(base.record(vacancy), salary, hours)
	r.records = append(r.records, rec)
	return rec, nil
}

// AddPartTime validates form and appends a new, active part-time record.
// On rejection the returned error is a *RejectError.
func (r *Registry) AddPartTime(form PartTimeForm) (*PartTime, error) {
	base := form.Form.trimmed()
	hoursText := strings.TrimSpace(form.WorkingHours)
	wagesText := strings.TrimSpace(form.WagesPerHour)
	shift := strings.TrimSpace(form.Shift)

	inputs := append(base.inputs(),
		input{FieldWorkingHours, hoursText},
		input{FieldWagesPerHour, wagesText},
		input{FieldShift, shift},
	)
	if err := requireAll(inputs...); err != nil {
		return nil, err
	}
	vacancy, err := ParseVacancyNumber(base.VacancyNumber)
	if err != nil {
		return nil, err
	}
	hours, err := ParseCount(FieldWorkingHours, hoursText)
	if err != nil {
		return nil, err
	}
	wages, err := ParseAmount(FieldWagesPerHour, wagesText)
	if err != nil {
		return nil, err
	}
	if err := r.admit(base.JoiningDate, vacancy); err != nil {
		return nil, err
	}

	rec := NewPartTime(base.record(vacancy), hours, wages, shift)
	r.records = append(r.records, rec)
	return rec, nil
}

// admit runs the date-format and duplicate checks shared by both variants.
func (r *Registry) admit(joiningDate string, vacancy int) error {
	if !ValidDateFormat(joiningDate) {
		return reject(ReasonBadDateFormat, FieldJoiningDate)
	}
	if r.IsVacancyTaken(vacancy) {
		return reject(ReasonDuplicateVacancy, FieldVacancyNumber)
	}
	return nil
}

// IsVacancyTaken reports whether a non-terminated record holds n.
func (r *Registry) IsVacancyTaken(n int) bool {
	for _, s := range r.records {
		if IsTerminated(s) {
			continue
		}
		if s.Common().VacancyNumber == n {
			return true
		}
	}
	return false
}

// =============================================================================
// LOOKUP
// =============================================================================

// FindByVacancyNumber returns the first record holding n, terminated
// records included.
func (r *Registry) FindByVacancyNumber(n int) (Staff, bool) {
	for _, s := range r.records {
		if s.Common().VacancyNumber == n {
			return s, true
		}
	}
	return nil, false
}

// FindByIndex returns the record at position i in insertion order.
func (r *Registry) FindByIndex(i int) (Staff, error) {
	if i < 0 || i >= len(r.records) {
		return nil, ErrInvalidIndex
	}
	return r.records[i], nil
}

// Search scans once in insertion order. For each record it first tries an
// exact vacancy-number match (when vacancyText parses), then a
// case-insensitive staff-name substring match (when name is non-empty).
// The earliest record matching either criterion wins; within one record
// the number check comes first.
func (r *Registry) Search(vacancyText, name string) (Staff, bool) {
	vacancyText = strings.TrimSpace(vacancyText)
	name = strings.ToLower(strings.TrimSpace(name))

	vacancy, err := strconv.Atoi(vacancyText)
	byNumber := vacancyText != "" && err == nil

	for _, s := range r.records {
		rec := s.Common()
		if byNumber && rec.VacancyNumber == vacancy {
			return s, true
		}
		if name != "" && strings.Contains(strings.ToLower(rec.StaffName), name) {
			return s, true
		}
	}
	return nil, false
}

// All yields every record with its index, terminated included.
func (r *Registry) All() iter.Seq2[int, Staff] {
	return func(yield func(int, Staff) bool) {
		for i, s := range r.records {
			if !yield(i, s) {
				return
			}
		}
	}
}

// =============================================================================
// VIEWS
// =============================================================================

// Summary yields the rendering of every record except terminated
// part-time ones.
func (r *Registry) Summary() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range r.records {
			if IsTerminated(s) {
				continue
			}
			if !yield(s.Render()) {
				return
			}
		}
	}
}

// ExportAll yields the rendering of every record, terminated included.
func (r *Registry) ExportAll() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range r.records {
			if !yield(s.Render()) {
				return
			}
		}
	}
}

// =============================================================================
// MUTATIONS BY VACANCY NUMBER
// =============================================================================

// fullTime returns the first full-time record holding n.
func (r *Registry) fullTime(n int) *FullTime {
	for _, s := range r.records {
		if f, ok := s.(*FullTime); ok && f.VacancyNumber == n {
			return f
		}
	}
	return nil
}

// partTime returns the first part-time record holding n, terminated or not.
func (r *Registry) partTime(n int) *PartTime {
	for _, s := range r.records {
		if p, ok := s.(*PartTime); ok && p.VacancyNumber == n {
			return p
		}
	}
	return nil
}

func (r *Registry) SetSalary(n int, v decimal.Decimal) Result {
	f := r.fullTime(n)
	if f == nil {
		return Result{Status: StatusNotFound, Message: msgNoFullTime}
	}
	return withMessage(f.SetSalary(v), "Salary updated.", f)
}

func (r *Registry) SetWeeklyHours(n int, v int) Result {
	f := r.fullTime(n)
	if f == nil {
		return Result{Status: StatusNotFound, Message: msgNoFullTime}
	}
	return withMessage(f.SetWeeklyHours(v), "Weekly hours updated.", f)
}

func (r *Registry) SetShift(n int, v string) Result {
	p := r.partTime(n)
	if p == nil {
		return Result{Status: StatusNotFound, Message: msgNoPartTime}
	}
	return withMessage(p.SetShift(strings.TrimSpace(v)), "Shifts updated.", p)
}

func (r *Registry) Terminate(n int) Result {
	p := r.partTime(n)
	if p == nil {
		return Result{Status: StatusNotFound, Message: msgNoPartTime}
	}
	return withMessage(p.Terminate(), "Staff terminated.", p)
}

func withMessage(res Result, applied string, target Staff) Result {
	if res.Applied() {
		res.Message = applied
	}
	res.Target = target
	return res
}
