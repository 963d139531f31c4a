/*
Package factory converts roster documents into registry records.

PURPOSE:
  Lets a batch of hires be described in YAML and loaded into a
  staff.Registry. Every entry goes through Registry.AddFullTime or
  AddPartTime, so the same validation and duplicate rules apply as for
  form input. A bad entry is reported and skipped; it never aborts the
  rest of the roster.

YAML SCHEMA:
  staff:
    - kind: full_time
      vacancy_number: 101
      designation: Lecturer
      job_type: Academic
      staff_name: Ada Lovelace
      joining_date: "01/02/2024"
      qualification: PhD
      appointed_by: Dean
      joined: true
      salary: 5000
      weekly_hours: 40
    - kind: part_time
      vacancy_number: 202
      ...
      working_hours: 6
      wages_per_hour: 15.5
      shift: Morning
      terminated: false      # true retires the entry right after loading

  Numbers are read as text and parsed by the registry, exactly like form
  fields.

USAGE:
  f := factory.NewRosterFactory(logger)
  report, err := f.LoadFile(reg, "roster.yaml")
  for _, r := range report.Rejected { ... }

SEE ALSO:
  - staff/registry.go: creation checks
  - api/handlers.go:   ImportRoster endpoint
*/
package factory

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/warp/staff-registry/staff"
)

// =============================================================================
// YAML SCHEMA TYPES
// =============================================================================

// Roster is the YAML document root.
type Roster struct {
	Staff []EntryYAML `yaml:"staff"`
}

// EntryYAML is one hire. Variant fields not matching Kind are ignored.
type EntryYAML struct {
	Kind          string `yaml:"kind"`
	VacancyNumber string `yaml:"vacancy_number"`
	Designation   string `yaml:"designation"`
	JobType       string `yaml:"job_type"`
	StaffName     string `yaml:"staff_name"`
	JoiningDate   string `yaml:"joining_date"`
	Qualification string `yaml:"qualification"`
	AppointedBy   string `yaml:"appointed_by"`
	Joined        bool   `yaml:"joined"`

	// Full-time
	Salary      string `yaml:"salary,omitempty"`
	WeeklyHours string `yaml:"weekly_hours,omitempty"`

	// Part-time
	WorkingHours string `yaml:"working_hours,omitempty"`
	WagesPerHour string `yaml:"wages_per_hour,omitempty"`
	Shift        string `yaml:"shift,omitempty"`
	Terminated   bool   `yaml:"terminated,omitempty"`
}

var (
	ErrUnknownKind       = errors.New("unknown staff kind")
	ErrTerminateFullTime = errors.New("only part-time staff can be terminated")
)

// =============================================================================
// ROSTER FACTORY
// =============================================================================

// RosterFactory loads YAML rosters into a registry.
type RosterFactory struct {
	logger *zap.Logger
}

// NewRosterFactory creates a factory. A nil logger discards output.
func NewRosterFactory(logger *zap.Logger) *RosterFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterFactory{logger: logger}
}

// LoadReport summarizes one roster load.
type LoadReport struct {
	Added    int
	Rejected []EntryRejection
}

// EntryRejection explains why one roster entry was skipped.
type EntryRejection struct {
	Index         int
	VacancyNumber string
	Err           error
}

func (r EntryRejection) Error() string {
	return fmt.Sprintf("entry %d (vacancy %s): %v", r.Index, r.VacancyNumber, r.Err)
}

func (r EntryRejection) Unwrap() error { return r.Err }

// Parse decodes a YAML roster.
func (f *RosterFactory) Parse(data []byte) (*Roster, error) {
	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster YAML: %w", err)
	}
	return &roster, nil
}

// LoadFile reads, parses and loads the roster at path.
func (f *RosterFactory) LoadFile(reg *staff.Registry, path string) (LoadReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadReport{}, fmt.Errorf("failed to read roster: %w", err)
	}
	roster, err := f.Parse(data)
	if err != nil {
		return LoadReport{}, err
	}
	return f.Load(reg, roster), nil
}

// Load adds every entry of roster to reg in document order.
func (f *RosterFactory) Load(reg *staff.Registry, roster *Roster) LoadReport {
	var report LoadReport
	for i, entry := range roster.Staff {
		if err := f.add(reg, entry); err != nil {
			rej := EntryRejection{Index: i, VacancyNumber: entry.VacancyNumber, Err: err}
			report.Rejected = append(report.Rejected, rej)
			f.logger.Warn("roster entry rejected",
				zap.Int("index", i),
				zap.String("vacancy_number", entry.VacancyNumber),
				zap.Error(err))
			continue
		}
		report.Added++
	}
	f.logger.Info("roster loaded",
		zap.Int("added", report.Added),
		zap.Int("rejected", len(report.Rejected)))
	return report
}

func (f *RosterFactory) add(reg *staff.Registry, e EntryYAML) error {
	switch staff.Kind(e.Kind) {
	case staff.KindFullTime:
		if e.Terminated {
			return ErrTerminateFullTime
		}
		_, err := reg.AddFullTime(staff.FullTimeForm{
			Form:        e.form(),
			Salary:      e.Salary,
			WeeklyHours: e.WeeklyHours,
		})
		return err
	case staff.KindPartTime:
		p, err := reg.AddPartTime(staff.PartTimeForm{
			Form:         e.form(),
			WorkingHours: e.WorkingHours,
			WagesPerHour: e.WagesPerHour,
			Shift:        e.Shift,
		})
		if err != nil {
			return err
		}
		if e.Terminated {
			// A record added a moment ago has never been terminated.
			if res := p.Terminate(); !res.Applied() {
				return fmt.Errorf("terminate vacancy %s: %s", e.VacancyNumber, res.Message)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
}

func (e EntryYAML) form() staff.Form {
	return staff.Form{
		VacancyNumber: e.VacancyNumber,
		Designation:   e.Designation,
		JobType:       e.JobType,
		StaffName:     e.StaffName,
		JoiningDate:   e.JoiningDate,
		Qualification: e.Qualification,
		AppointedBy:   e.AppointedBy,
		Joined:        e.Joined,
	}
}
