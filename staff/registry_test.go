package staff_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/staff-registry/staff"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func commonForm(vacancy, name string) staff.Form {
	return staff.Form{
		VacancyNumber: vacancy,
		Designation:   "Engineer",
		JobType:       "Technical",
		StaffName:     name,
		JoiningDate:   "15/03/2024",
		Qualification: "BSc",
		AppointedBy:   "HR",
		Joined:        true,
	}
}

func fullTimeForm(vacancy, name string) staff.FullTimeForm {
	return staff.FullTimeForm{Form: commonForm(vacancy, name), Salary: "5000", WeeklyHours: "40"}
}

func partTimeForm(vacancy, name string) staff.PartTimeForm {
	return staff.PartTimeForm{Form: commonForm(vacancy, name), WorkingHours: "6", WagesPerHour: "15.5", Shift: "Morning"}
}

func requireReject(t *testing.T, err error, reason staff.RejectReason, field staff.Field) {
	t.Helper()
	var rej *staff.RejectError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, reason, rej.Reason)
	assert.Equal(t, field, rej.Field)
}

// =============================================================================
// CREATION
// =============================================================================

func TestAddFullTime_Valid_RendersEveryField(t *testing.T) {
	reg := staff.NewRegistry()

	ft, err := reg.AddFullTime(fullTimeForm("101", "Grace Hopper"))
	require.NoError(t, err)

	out := ft.Render()
	for _, want := range []string{
		"Vacancy Number: 101\n",
		"Designation: Engineer\n",
		"Job Type: Technical\n",
		"Staff Name: Grace Hopper\n",
		"Joining Date: 15/03/2024\n",
		"Qualification: BSc\n",
		"Appointed By: HR\n",
		"Joined: true\n",
		"Salary: 5000.0\n",
		"Weekly Hours: 40\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, reg.Len())
}

func TestAddPartTime_Valid(t *testing.T) {
	reg := staff.NewRegistry()

	pt, err := reg.AddPartTime(partTimeForm("202", "Alan Turing"))
	require.NoError(t, err)

	assert.Equal(t, 202, pt.VacancyNumber)
	assert.Equal(t, "Morning", pt.Shift())
	assert.False(t, pt.Terminated())
	assert.True(t, pt.IncomePerDay().Equal(decimal.NewFromInt(93)))
}

func TestAdd_TrimsInput(t *testing.T) {
	reg := staff.NewRegistry()
	form := fullTimeForm("  7 ", "  Ada  ")
	form.JoiningDate = " 01/01/2020 "
	form.Salary = " 12.50 "

	ft, err := reg.AddFullTime(form)
	require.NoError(t, err)

	assert.Equal(t, 7, ft.VacancyNumber)
	assert.Equal(t, "Ada", ft.StaffName)
	assert.Equal(t, "01/01/2020", ft.JoiningDate)
	assert.True(t, ft.Salary().Equal(decimal.RequireFromString("12.5")))
}

func TestAdd_MissingField_FirstInFormOrder(t *testing.T) {
	reg := staff.NewRegistry()
	form := fullTimeForm("101", "   ")
	form.Qualification = ""

	_, err := reg.AddFullTime(form)

	requireReject(t, err, staff.ReasonMissingField, staff.FieldStaffName)
	assert.ErrorIs(t, err, staff.ErrMissingField)
	assert.Equal(t, "Staff Name cannot be empty.", err.Error())
	assert.Equal(t, 0, reg.Len())
}

func TestAddPartTime_MissingShift(t *testing.T) {
	reg := staff.NewRegistry()
	form := partTimeForm("202", "Alan")
	form.Shift = " "

	_, err := reg.AddPartTime(form)

	requireReject(t, err, staff.ReasonMissingField, staff.FieldShift)
}

func TestAdd_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*staff.FullTimeForm)
		field staff.Field
	}{
		{"vacancy not integer", func(f *staff.FullTimeForm) { f.VacancyNumber = "10a" }, staff.FieldVacancyNumber},
		{"salary not decimal", func(f *staff.FullTimeForm) { f.Salary = "lots" }, staff.FieldSalary},
		{"negative salary", func(f *staff.FullTimeForm) { f.Salary = "-1" }, staff.FieldSalary},
		{"hours fractional", func(f *staff.FullTimeForm) { f.WeeklyHours = "37.5" }, staff.FieldWeeklyHours},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := staff.NewRegistry()
			form := fullTimeForm("101", "Grace")
			tt.edit(&form)

			_, err := reg.AddFullTime(form)

			requireReject(t, err, staff.ReasonInvalidNumber, tt.field)
			assert.ErrorIs(t, err, staff.ErrInvalidNumber)
			assert.Equal(t, 0, reg.Len())
		})
	}
}

func TestAdd_BadDateFormat(t *testing.T) {
	for _, date := range []string{"2024-03-15", "1/3/2024", "15/03/24", "15/03/2024x"} {
		t.Run(date, func(t *testing.T) {
			reg := staff.NewRegistry()
			form := partTimeForm("202", "Alan")
			form.JoiningDate = date

			_, err := reg.AddPartTime(form)

			requireReject(t, err, staff.ReasonBadDateFormat, staff.FieldJoiningDate)
			assert.Equal(t, "Joining Date must be in dd/mm/yyyy format.", err.Error())
		})
	}
}

func TestAdd_DateCheckedBeforeDuplicate(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddFullTime(fullTimeForm("101", "Grace"))
	require.NoError(t, err)

	form := fullTimeForm("101", "Other")
	form.JoiningDate = "bad"
	_, err = reg.AddFullTime(form)

	assert.ErrorIs(t, err, staff.ErrBadDateFormat)
}

// =============================================================================
// DUPLICATE INVARIANT
// =============================================================================

func TestAdd_DuplicateVacancy_Rejected(t *testing.T) {
	// GIVEN: Vacancy 101 is held by a full-time hire
	reg := staff.NewRegistry()
	_, err := reg.AddFullTime(fullTimeForm("101", "Grace"))
	require.NoError(t, err)

	// WHEN: Another hire of either variant claims 101
	_, errFT := reg.AddFullTime(fullTimeForm("101", "Someone"))
	_, errPT := reg.AddPartTime(partTimeForm("101", "Someone"))

	// THEN: Both are rejected and the registry is unchanged
	requireReject(t, errFT, staff.ReasonDuplicateVacancy, staff.FieldVacancyNumber)
	requireReject(t, errPT, staff.ReasonDuplicateVacancy, staff.FieldVacancyNumber)
	assert.Equal(t, "Vacancy Number already exists.", errFT.Error())
	assert.Equal(t, 1, reg.Len())
}

func TestAdd_TerminatedVacancy_CanBeRefilled(t *testing.T) {
	// GIVEN: Part-time vacancy 202 was terminated
	reg := staff.NewRegistry()
	_, err := reg.AddPartTime(partTimeForm("202", "Alan"))
	require.NoError(t, err)
	require.True(t, reg.Terminate(202).Applied())

	// WHEN: A new hire takes vacancy 202
	_, err = reg.AddFullTime(fullTimeForm("202", "Barbara"))

	// THEN: It is accepted; both records remain
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.True(t, reg.IsVacancyTaken(202))
}

// =============================================================================
// LOOKUP
// =============================================================================

func TestFindByVacancyNumber_IncludesTerminated(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddPartTime(partTimeForm("202", "Alan"))
	require.NoError(t, err)
	reg.Terminate(202)

	s, ok := reg.FindByVacancyNumber(202)
	require.True(t, ok)
	assert.Equal(t, staff.KindPartTime, s.Kind())
	assert.True(t, staff.IsTerminated(s))

	_, ok = reg.FindByVacancyNumber(999)
	assert.False(t, ok)
}

func TestFindByIndex(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddFullTime(fullTimeForm("1", "A"))
	require.NoError(t, err)
	_, err = reg.AddPartTime(partTimeForm("2", "B"))
	require.NoError(t, err)

	s, err := reg.FindByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Common().VacancyNumber)

	for _, i := range []int{-1, 2, 100} {
		_, err := reg.FindByIndex(i)
		assert.ErrorIs(t, err, staff.ErrInvalidIndex)
		assert.True(t, staff.IsNotFound(err))
	}
}

func TestSearch(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddFullTime(fullTimeForm("101", "Grace Hopper"))
	require.NoError(t, err)
	_, err = reg.AddPartTime(partTimeForm("202", "Alan Turing"))
	require.NoError(t, err)

	t.Run("by vacancy number", func(t *testing.T) {
		s, ok := reg.Search(" 202 ", "")
		require.True(t, ok)
		assert.Equal(t, "Alan Turing", s.Common().StaffName)
	})

	t.Run("by name, case-insensitive substring", func(t *testing.T) {
		s, ok := reg.Search("", "HOPP")
		require.True(t, ok)
		assert.Equal(t, 101, s.Common().VacancyNumber)
	})

	t.Run("unparseable vacancy falls back to name", func(t *testing.T) {
		s, ok := reg.Search("abc", "turing")
		require.True(t, ok)
		assert.Equal(t, 202, s.Common().VacancyNumber)
	})

	t.Run("nothing matches", func(t *testing.T) {
		_, ok := reg.Search("999", "nobody")
		assert.False(t, ok)
	})

	t.Run("both empty", func(t *testing.T) {
		_, ok := reg.Search("", "")
		assert.False(t, ok)
	})
}

// Known ordering contract: one pass, number checked before name per
// record. The earliest record matching either criterion wins.
func TestSearch_OrderingContract(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddFullTime(fullTimeForm("1", "Grace Hopper"))
	require.NoError(t, err)
	_, err = reg.AddFullTime(fullTimeForm("2", "Alan Turing"))
	require.NoError(t, err)

	// Record 1 matches by name before record 2 is reached by number.
	s, ok := reg.Search("2", "grace")
	require.True(t, ok)
	assert.Equal(t, 1, s.Common().VacancyNumber)

	// Record 1 matches by number; its name is not consulted first.
	s, ok = reg.Search("1", "turing")
	require.True(t, ok)
	assert.Equal(t, 1, s.Common().VacancyNumber)
}

func TestSearch_AfterTermination(t *testing.T) {
	// GIVEN: Part-time 202 terminated
	reg := staff.NewRegistry()
	_, err := reg.AddPartTime(partTimeForm("202", "Alan"))
	require.NoError(t, err)
	reg.Terminate(202)

	// THEN: Search by number still finds it, search by old name does not
	s, ok := reg.Search("202", "")
	require.True(t, ok)
	assert.Contains(t, s.Render(), "Terminated: true")

	_, ok = reg.Search("", "alan")
	assert.False(t, ok)

	// AND: Summary excludes it
	assert.Empty(t, slices.Collect(reg.Summary()))
}

// =============================================================================
// VIEWS
// =============================================================================

func TestSummaryAndExport_Counts(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddFullTime(fullTimeForm("1", "A"))
	require.NoError(t, err)
	_, err = reg.AddPartTime(partTimeForm("2", "B"))
	require.NoError(t, err)
	_, err = reg.AddPartTime(partTimeForm("3", "C"))
	require.NoError(t, err)
	reg.Terminate(2)

	summary := slices.Collect(reg.Summary())
	export := slices.Collect(reg.ExportAll())

	assert.Len(t, summary, 2)
	assert.Len(t, export, 3)
	assert.Contains(t, summary[0], "Vacancy Number: 1\n")
	assert.Contains(t, summary[1], "Vacancy Number: 3\n")
	assert.Contains(t, export[1], "Terminated: true\n")
}

func TestSummary_IsRestartable(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddFullTime(fullTimeForm("1", "A"))
	require.NoError(t, err)

	seq := reg.Summary()
	first := slices.Collect(seq)

	_, err = reg.AddFullTime(fullTimeForm("2", "B"))
	require.NoError(t, err)
	second := slices.Collect(seq)

	assert.Len(t, first, 1)
	assert.Len(t, second, 2, "summary is recomputed on each iteration")
}

func TestSummary_StopsEarly(t *testing.T) {
	reg := staff.NewRegistry()
	for _, v := range []string{"1", "2", "3"} {
		_, err := reg.AddFullTime(fullTimeForm(v, "X"))
		require.NoError(t, err)
	}

	n := 0
	for range reg.ExportAll() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

// =============================================================================
// MUTATIONS BY VACANCY NUMBER
// =============================================================================

func TestRegistry_Mutation_TargetsRecordOfRequiredKind(t *testing.T) {
	// GIVEN: Vacancy 202 retired from part-time and refilled by full-time staff
	reg := staff.NewRegistry()
	_, err := reg.AddPartTime(partTimeForm("202", "Alan"))
	require.NoError(t, err)
	require.True(t, reg.Terminate(202).Applied())
	ft, err := reg.AddFullTime(fullTimeForm("202", "Grace"))
	require.NoError(t, err)

	// WHEN: The salary of vacancy 202 is set
	res := reg.SetSalary(202, decimal.NewFromInt(9999))

	// THEN: The result names the full-time record, not the first holder
	require.True(t, res.Applied())
	assert.Same(t, ft, res.Target)
	first, _ := reg.FindByVacancyNumber(202)
	assert.NotSame(t, first, res.Target)
}

func TestRegistry_SetSalary(t *testing.T) {
	reg := staff.NewRegistry()
	ft, err := reg.AddFullTime(fullTimeForm("101", "Grace"))
	require.NoError(t, err)
	_, err = reg.AddPartTime(partTimeForm("202", "Alan"))
	require.NoError(t, err)

	res := reg.SetSalary(101, decimal.NewFromInt(7000))
	assert.Equal(t, staff.Result{Status: staff.StatusApplied, Message: "Salary updated.", Target: ft}, res)
	assert.True(t, ft.Salary().Equal(decimal.NewFromInt(7000)))

	res = reg.SetSalary(202, decimal.NewFromInt(7000))
	assert.Equal(t, staff.StatusNotFound, res.Status)
	assert.Nil(t, res.Target)
	assert.Equal(t, "No matching Full Time Staff found.", res.Message)

	res = reg.SetWeeklyHours(101, 30)
	assert.Equal(t, "Weekly hours updated.", res.Message)
	assert.Equal(t, 30, ft.WeeklyHours())
}

func TestRegistry_SetSalary_NotJoined(t *testing.T) {
	reg := staff.NewRegistry()
	form := fullTimeForm("101", "Grace")
	form.Joined = false
	ft, err := reg.AddFullTime(form)
	require.NoError(t, err)

	res := reg.SetSalary(101, decimal.NewFromInt(1))

	assert.Equal(t, staff.StatusRejected, res.Status)
	assert.Equal(t, "Staff is not appointed yet. Cannot set salary.", res.Message)
	assert.True(t, ft.Salary().Equal(decimal.NewFromInt(5000)))
}

func TestRegistry_SetShift(t *testing.T) {
	reg := staff.NewRegistry()
	pt, err := reg.AddPartTime(partTimeForm("202", "Alan"))
	require.NoError(t, err)

	res := reg.SetShift(202, " Evening ")
	assert.Equal(t, "Shifts updated.", res.Message)
	assert.Equal(t, "Evening", pt.Shift())

	res = reg.SetShift(101, "Night")
	assert.Equal(t, staff.StatusNotFound, res.Status)
	assert.Equal(t, "No matching Part Time Staff found.", res.Message)
}

func TestRegistry_Terminate_Twice(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddPartTime(partTimeForm("202", "Alan"))
	require.NoError(t, err)
	_, err = reg.AddFullTime(fullTimeForm("101", "Grace"))
	require.NoError(t, err)

	assert.Equal(t, "Staff terminated.", reg.Terminate(202).Message)
	again := reg.Terminate(202)
	assert.Equal(t, staff.StatusRejected, again.Status)
	assert.Equal(t, "Staff is already terminated.", again.Message)

	// Full-time staff have no termination path
	assert.Equal(t, staff.StatusNotFound, reg.Terminate(101).Status)
}

func TestRegistry_All(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddFullTime(fullTimeForm("1", "A"))
	require.NoError(t, err)
	_, err = reg.AddPartTime(partTimeForm("2", "B"))
	require.NoError(t, err)

	var kinds []staff.Kind
	for i, s := range reg.All() {
		assert.Equal(t, i+1, s.Common().VacancyNumber)
		kinds = append(kinds, s.Kind())
	}
	assert.Equal(t, []staff.Kind{staff.KindFullTime, staff.KindPartTime}, kinds)
}

func TestIsRejection(t *testing.T) {
	reg := staff.NewRegistry()
	_, err := reg.AddFullTime(staff.FullTimeForm{})

	assert.True(t, staff.IsRejection(err))
	assert.False(t, staff.IsRejection(errors.New("disk full")))
	assert.False(t, staff.IsNotFound(err))
}
