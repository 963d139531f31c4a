package staff

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// FORM INPUT - Raw text as typed by the user
// =============================================================================

// Field names a form input. The value doubles as its display label.
type Field string

const (
	FieldVacancyNumber Field = "Vacancy Number"
	FieldDesignation   Field = "Designation"
	FieldJobType       Field = "Job Type"
	FieldStaffName     Field = "Staff Name"
	FieldJoiningDate   Field = "Joining Date"
	FieldQualification Field = "Qualification"
	FieldAppointedBy   Field = "Appointed By"
	FieldSalary        Field = "Salary"
	FieldWeeklyHours   Field = "Weekly Hours"
	FieldWorkingHours  Field = "Working Hour"
	FieldWagesPerHour  Field = "Wages Per Hour"
	FieldShift         Field = "Shifts"
)

// Form is the common part of a creation request. All text is trimmed
// before validation and stored trimmed.
type Form struct {
	VacancyNumber string
	Designation   string
	JobType       string
	StaffName     string
	JoiningDate   string
	Qualification string
	AppointedBy   string
	Joined        bool
}

type FullTimeForm struct {
	Form
	Salary      string
	WeeklyHours string
}

type PartTimeForm struct {
	Form
	WorkingHours string
	WagesPerHour string
	Shift        string
}

var joiningDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ValidDateFormat reports whether s is DD/MM/YYYY. Only the shape is
// checked, not calendar validity.
func ValidDateFormat(s string) bool {
	return joiningDatePattern.MatchString(s)
}

type input struct {
	field Field
	value string
}

// requireAll returns the first empty input, in form order.
func requireAll(inputs ...input) error {
	for _, in := range inputs {
		if in.value == "" {
			return reject(ReasonMissingField, in.field)
		}
	}
	return nil
}

func (f Form) trimmed() Form {
	return Form{
		VacancyNumber: strings.TrimSpace(f.VacancyNumber),
		Designation:   strings.TrimSpace(f.Designation),
		JobType:       strings.TrimSpace(f.JobType),
		StaffName:     strings.TrimSpace(f.StaffName),
		JoiningDate:   strings.TrimSpace(f.JoiningDate),
		Qualification: strings.TrimSpace(f.Qualification),
		AppointedBy:   strings.TrimSpace(f.AppointedBy),
		Joined:        f.Joined,
	}
}

func (f Form) inputs() []input {
	return []input{
		{FieldVacancyNumber, f.VacancyNumber},
		{FieldDesignation, f.Designation},
		{FieldJobType, f.JobType},
		{FieldStaffName, f.StaffName},
		{FieldJoiningDate, f.JoiningDate},
		{FieldQualification, f.Qualification},
		{FieldAppointedBy, f.AppointedBy},
	}
}

// record converts an already trimmed and validated form.
func (f Form) record(vacancy int) Record {
	return Record{
		VacancyNumber: vacancy,
		Designation:   f.Designation,
		JobType:       f.JobType,
		StaffName:     f.StaffName,
		JoiningDate:   f.JoiningDate,
		Qualification: f.Qualification,
		AppointedBy:   f.AppointedBy,
		Joined:        f.Joined,
	}
}

// =============================================================================
// NUMBER PARSING
// =============================================================================

// ParseVacancyNumber parses a vacancy number. Any integer is accepted.
func ParseVacancyNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, reject(ReasonInvalidNumber, FieldVacancyNumber)
	}
	return n, nil
}

// ParseCount parses a non-negative integer such as an hours figure.
func ParseCount(field Field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, reject(ReasonInvalidNumber, field)
	}
	return n, nil
}

// ParseAmount parses a non-negative decimal such as a salary or wage.
func ParseAmount(field Field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero, reject(ReasonInvalidNumber, field)
	}
	return d, nil
}
