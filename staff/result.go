package staff

// =============================================================================
// RESULT - Outcome of a mutation request
// =============================================================================

// Status classifies a mutation outcome.
type Status string

const (
	StatusApplied  Status = "applied"   // State changed
	StatusRejected Status = "rejected"  // State gate refused the change
	StatusNotFound Status = "not_found" // No record of the required variant
)

// Result is returned by every mutation instead of printing or raising.
// Message is meant to be shown to the user as is. Registry mutations set
// Target to the record they acted on; it is nil for StatusNotFound.
type Result struct {
	Status  Status
	Message string
	Target  Staff
}

// Applied reports whether the mutation changed state.
func (r Result) Applied() bool { return r.Status == StatusApplied }

const (
	msgSalaryNotAppointed = "Staff is not appointed yet. Cannot set salary."
	msgHoursNotAppointed  = "Staff is not appointed yet. Cannot set hours."
	msgShiftNotJoined     = "Staff has not joined yet. Cannot set shifts."
	msgAlreadyTerminated  = "Staff is already terminated."

	msgNoFullTime = "No matching Full Time Staff found."
	msgNoPartTime = "No matching Part Time Staff found."
)

// setWhenJoined writes v into field only while the record has joined.
// Every joined-gated field goes through here.
func setWhenJoined[T any](r *Record, field *T, v T, refusal string) Result {
	if !r.Joined {
		return Result{Status: StatusRejected, Message: refusal}
	}
	*field = v
	return Result{Status: StatusApplied}
}
