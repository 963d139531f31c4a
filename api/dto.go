/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the
  staff model from the wire contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Wrappers

FORM VALUES:
  Creation and update requests carry the same raw text a form would.
  FormValue accepts either a JSON string or a bare JSON number, so
  {"salary": 5000} and {"salary": "5000"} are equivalent. Parsing and
  validation happen in the staff package, never here.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"bytes"
	"encoding/json"

	"github.com/warp/staff-registry/staff"
)

// =============================================================================
// FORM VALUE
// =============================================================================

// FormValue is form text that may arrive as a JSON string or number.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		*v = FormValue(b)
	}
	return nil
}

// =============================================================================
// REQUEST TYPES
// =============================================================================

// StaffFormRequest holds the fields common to both variants.
type StaffFormRequest struct {
	VacancyNumber FormValue `json:"vacancy_number"`
	Designation   string    `json:"designation"`
	JobType       string    `json:"job_type"`
	StaffName     string    `json:"staff_name"`
	JoiningDate   string    `json:"joining_date"`
	Qualification string    `json:"qualification"`
	AppointedBy   string    `json:"appointed_by"`
	Joined        bool      `json:"joined"`
}

// CreateFullTimeRequest is the request to hire full-time staff.
type CreateFullTimeRequest struct {
	StaffFormRequest
	Salary      FormValue `json:"salary"`
	WeeklyHours FormValue `json:"weekly_hours"`
}

// CreatePartTimeRequest is the request to hire part-time staff.
type CreatePartTimeRequest struct {
	StaffFormRequest
	WorkingHours FormValue `json:"working_hours"`
	WagesPerHour FormValue `json:"wages_per_hour"`
	Shift        string    `json:"shift"`
}

// SetSalaryRequest updates a full-time salary.
type SetSalaryRequest struct {
	Salary FormValue `json:"salary"`
}

// SetWeeklyHoursRequest updates full-time weekly hours.
type SetWeeklyHoursRequest struct {
	WeeklyHours FormValue `json:"weekly_hours"`
}

// SetShiftRequest updates a part-time shift.
type SetShiftRequest struct {
	Shift string `json:"shift"`
}

func (r StaffFormRequest) form() staff.Form {
	return staff.Form{
		VacancyNumber: string(r.VacancyNumber),
		Designation:   r.Designation,
		JobType:       r.JobType,
		StaffName:     r.StaffName,
		JoiningDate:   r.JoiningDate,
		Qualification: r.Qualification,
		AppointedBy:   r.AppointedBy,
		Joined:        r.Joined,
	}
}

func (r CreateFullTimeRequest) form() staff.FullTimeForm {
	return staff.FullTimeForm{
		Form:        r.StaffFormRequest.form(),
		Salary:      string(r.Salary),
		WeeklyHours: string(r.WeeklyHours),
	}
}

func (r CreatePartTimeRequest) form() staff.PartTimeForm {
	return staff.PartTimeForm{
		Form:         r.StaffFormRequest.form(),
		WorkingHours: string(r.WorkingHours),
		WagesPerHour: string(r.WagesPerHour),
		Shift:        r.Shift,
	}
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// StaffDTO represents one record. Variant fields are omitted for the
// other variant.
type StaffDTO struct {
	Kind          string `json:"kind"`
	VacancyNumber int    `json:"vacancy_number"`
	Designation   string `json:"designation"`
	JobType       string `json:"job_type"`
	StaffName     string `json:"staff_name"`
	JoiningDate   string `json:"joining_date"`
	Qualification string `json:"qualification"`
	AppointedBy   string `json:"appointed_by"`
	Joined        bool   `json:"joined"`

	// Full-time
	Salary      *string `json:"salary,omitempty"`
	WeeklyHours *int    `json:"weekly_hours,omitempty"`

	// Part-time
	WorkingHours *int    `json:"working_hours,omitempty"`
	WagesPerHour *string `json:"wages_per_hour,omitempty"`
	Shift        *string `json:"shift,omitempty"`
	Terminated   *bool   `json:"terminated,omitempty"`
	IncomePerDay *string `json:"income_per_day,omitempty"`

	Rendered string `json:"rendered"`
}

// SummaryResponse is the operational view of the registry.
type SummaryResponse struct {
	Count   int        `json:"count"`
	Records []StaffDTO `json:"records"`
	Text    string     `json:"text"`
}

// MutationResponse reports the outcome of an update or termination.
type MutationResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Staff   *StaffDTO `json:"staff,omitempty"`
}

// ExportResponse reports a written export file.
type ExportResponse struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// RosterResponse reports a roster import.
type RosterResponse struct {
	Added    int                  `json:"added"`
	Rejected []RosterRejectionDTO `json:"rejected"`
}

// RosterRejectionDTO describes one skipped roster entry.
type RosterRejectionDTO struct {
	Index         int    `json:"index"`
	VacancyNumber string `json:"vacancy_number"`
	Error         string `json:"error"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION
// =============================================================================

func toStaffDTO(s staff.Staff) StaffDTO {
	rec := s.Common()
	dto := StaffDTO{
		Kind:          string(s.Kind()),
		VacancyNumber: rec.VacancyNumber,
		Designation:   rec.Designation,
		JobType:       rec.JobType,
		StaffName:     rec.StaffName,
		JoiningDate:   rec.JoiningDate,
		Qualification: rec.Qualification,
		AppointedBy:   rec.AppointedBy,
		Joined:        rec.Joined,
		Rendered:      s.Render(),
	}

	switch v := s.(type) {
	case *staff.FullTime:
		salary := staff.FormatDecimal(v.Salary())
		hours := v.WeeklyHours()
		dto.Salary = &salary
		dto.WeeklyHours = &hours
	case *staff.PartTime:
		hours := v.WorkingHours()
		wages := staff.FormatDecimal(v.WagesPerHour())
		shift := v.Shift()
		terminated := v.Terminated()
		income := staff.FormatDecimal(v.IncomePerDay())
		dto.WorkingHours = &hours
		dto.WagesPerHour = &wages
		dto.Shift = &shift
		dto.Terminated = &terminated
		dto.IncomePerDay = &income
	}
	return dto
}
