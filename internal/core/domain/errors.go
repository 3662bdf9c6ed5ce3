package domain

import "fmt"

// ResolutionError is the fatal outcome for a required kind that exhausted
// every applicable strategy. It carries the kind and the search scope for
// diagnostics and is never raised for optional kinds.
type ResolutionError struct {
	Kind        ResourceKind
	Project     string
	Environment string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no %s resolved for project %q in environment %q",
		e.Kind, e.Project, e.Environment)
}
