package staff

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FullTime is a full-time hire. It has no termination path.
type FullTime struct {
	Record
	salary      decimal.Decimal
	weeklyHours int
}

// NewFullTime builds a record without any validation; use
// Registry.AddFullTime for form input.
func NewFullTime(rec Record, salary decimal.Decimal, weeklyHours int) *FullTime {
	return &FullTime{Record: rec, salary: salary, weeklyHours: weeklyHours}
}

func (f *FullTime) Common() *Record { return &f.Record }
func (f *FullTime) Kind() Kind      { return KindFullTime }
func (f *FullTime) sealed()         {}

func (f *FullTime) Salary() decimal.Decimal { return f.salary }
func (f *FullTime) WeeklyHours() int        { return f.weeklyHours }

// SetSalary applies v only while joined.
func (f *FullTime) SetSalary(v decimal.Decimal) Result {
	return setWhenJoined(&f.Record, &f.salary, v, msgSalaryNotAppointed)
}

// SetWeeklyHours applies v only while joined.
func (f *FullTime) SetWeeklyHours(v int) Result {
	return setWhenJoined(&f.Record, &f.weeklyHours, v, msgHoursNotAppointed)
}

func (f *FullTime) Render() string {
	base := f.Record.Render()
	if !f.Joined {
		return base
	}
	var b strings.Builder
	b.WriteString(base)
	writeLine(&b, "Salary", FormatDecimal(f.salary))
	writeLine(&b, "Weekly Hours", strconv.Itoa(f.weeklyHours))
	return b.String()
}
