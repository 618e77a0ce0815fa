package provision

// ItemStatus is the outcome of driving one catalog item.
type ItemStatus string

const (
	// StatusInstalled means the install/configure action ran
	StatusInstalled ItemStatus = "installed"

	// StatusSkipped means the item was already present or its
	// precondition made the action unnecessary
	StatusSkipped ItemStatus = "skipped"

	// StatusFailed means the action ran and reported an error; the
	// batch continued regardless
	StatusFailed ItemStatus = "failed"
)

// ItemResult is the outcome for a single item in a step.
type ItemResult struct {
	Name   string
	Status ItemStatus
	Err    error
}

// StepResult collects the item outcomes of one provisioning step.
type StepResult struct {
	Step  string
	Items []ItemResult
}

func (s *StepResult) add(name string, status ItemStatus, err error) {
	s.Items = append(s.Items, ItemResult{Name: name, Status: status, Err: err})
}

// Count returns the number of items with the given status.
func (s *StepResult) Count(status ItemStatus) int {
	n := 0
	for _, item := range s.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the number of failed items in the step.
func (s *StepResult) Failed() int {
	return s.Count(StatusFailed)
}

// Report is the aggregated outcome of a provisioning run. Individual
// failures never abort a run; they are collected here so the caller can
// surface them in the summary and, in strict mode, the exit code.
type Report struct {
	Steps []*StepResult
}

// Add appends a step result. Nil results are ignored so drivers can
// return nothing for fully skipped steps.
func (r *Report) Add(step *StepResult) {
	if step != nil {
		r.Steps = append(r.Steps, step)
	}
}

// Empty reports whether the run produced no item outcomes at all.
func (r *Report) Empty() bool {
	for _, s := range r.Steps {
		if len(s.Items) > 0 {
			return false
		}
	}
	return true
}

// Failed returns the total number of failed items across all steps.
func (r *Report) Failed() int {
	n := 0
	for _, s := range r.Steps {
		n += s.Failed()
	}
	return n
}

// Installed returns the total number of performed actions.
func (r *Report) Installed() int {
	n := 0
	for _, s := range r.Steps {
		n += s.Count(StatusInstalled)
	}
	return n
}

// Skipped returns the total number of skipped items.
func (r *Report) Skipped() int {
	n := 0
	for _, s := range r.Steps {
		n += s.Count(StatusSkipped)
	}
	return n
}
