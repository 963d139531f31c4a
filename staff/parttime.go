package staff

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// PartTime is a part-time hire.
//
// LIFECYCLE:
//
//	Active --Terminate()--> Terminated
//
// The transition is one-way. On termination the personal and appointment
// fields (name, joining date, qualification, appointed-by) are scrubbed and
// joined is cleared; the vacancy number and compensation fields are kept.
type PartTime struct {
	Record
	workingHours int
	wagesPerHour decimal.Decimal
	shift        string
	terminated   bool
}

// NewPartTime builds an active record without any validation; use
// Registry.AddPartTime for form input.
func NewPartTime(rec Record, workingHours int, wagesPerHour decimal.Decimal, shift string) *PartTime {
	return &PartTime{Record: rec, workingHours: workingHours, wagesPerHour: wagesPerHour, shift: shift}
}

func (p *PartTime) Common() *Record { return &p.Record }
func (p *PartTime) Kind() Kind      { return KindPartTime }
func (p *PartTime) sealed()         {}

func (p *PartTime) WorkingHours() int            { return p.workingHours }
func (p *PartTime) WagesPerHour() decimal.Decimal { return p.wagesPerHour }
func (p *PartTime) Shift() string                { return p.shift }
func (p *PartTime) Terminated() bool             { return p.terminated }

// SetWorkingHours is an ungated correction setter.
func (p *PartTime) SetWorkingHours(v int) { p.workingHours = v }

// SetWagesPerHour is an ungated correction setter.
func (p *PartTime) SetWagesPerHour(v decimal.Decimal) { p.wagesPerHour = v }

// SetShift applies v only while joined.
func (p *PartTime) SetShift(v string) Result {
	return setWhenJoined(&p.Record, &p.shift, v, msgShiftNotJoined)
}

// IncomePerDay is working hours times wages per hour, computed on demand.
func (p *PartTime) IncomePerDay() decimal.Decimal {
	return decimal.NewFromInt(int64(p.workingHours)).Mul(p.wagesPerHour)
}

// Terminate retires the record. Calling it again is a reported no-op.
func (p *PartTime) Terminate() Result {
	if p.terminated {
		return Result{Status: StatusRejected, Message: msgAlreadyTerminated}
	}
	p.StaffName = ""
	p.JoiningDate = ""
	p.Qualification = ""
	p.AppointedBy = ""
	p.Joined = false
	p.terminated = true
	return Result{Status: StatusApplied}
}

// Render appends the part-time block while joined, and also once
// terminated so the retired record still shows its compensation history.
func (p *PartTime) Render() string {
	base := p.Record.Render()
	if !p.Joined && !p.terminated {
		return base
	}
	var b strings.Builder
	b.WriteString(base)
	writeLine(&b, "Working Hour", strconv.Itoa(p.workingHours))
	writeLine(&b, "Wages Per Hour", FormatDecimal(p.wagesPerHour))
	writeLine(&b, "Shifts", p.shift)
	writeLine(&b, "Terminated", strconv.FormatBool(p.terminated))
	writeLine(&b, "Income Per Day", FormatDecimal(p.IncomePerDay()))
	return b.String()
}
