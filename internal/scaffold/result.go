package scaffold

import (
	"theme-setup/internal/logger"
)

// Status classifies the outcome of a single setup step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// StepResult records the outcome of one setup step for the end-of-run
// summary. Results live only for the duration of the process.
type StepResult struct {
	Name   string
	Status Status
	Detail string // error text for failed steps
}

// Summary accumulates step results as the runner progresses.
type Summary struct {
	Results []StepResult
}

// Record appends a result for the named step.
func (s *Summary) Record(name string, status Status, detail string) {
	s.Results = append(s.Results, StepResult{Name: name, Status: status, Detail: detail})
}

// Failed returns the number of steps that failed.
func (s *Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			n++
		}
	}
	return n
}

// Print writes the colored per-step summary to the console.
func (s *Summary) Print() {
	logger.Info("\nSetup summary:\n")
	for _, r := range s.Results {
		switch r.Status {
		case StatusOK:
			logger.Success("%s\n", r.Name)
		case StatusFailed:
			logger.Fail("%s: %s\n", r.Name, r.Detail)
		case StatusSkipped:
			logger.Skip("%s (skipped)\n", r.Name)
		}
	}
	if n := s.Failed(); n > 0 {
		logger.Warn("\n%d step(s) failed. The project was still created; re-run the failed steps manually.\n", n)
	} else {
		logger.Info("\nAll steps completed.\n")
	}
}
