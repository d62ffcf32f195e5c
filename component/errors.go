// SPDX-License-Identifier: MIT
package component

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParameter indicates a constructor received an invalid parameter.
	// Constructors ("New...") must validate eagerly and return this
	// rather than panic (spec.md §6: "Invalid parameters ... yield an
	// error from new").
	ErrParameter = errors.New("component: invalid parameter")

	// ErrRequirement indicates preflight found component(s) whose Require
	// declared a type that no frame of the registry holds.
	ErrRequirement = errors.New("component: unsatisfied requirement")
)

func parameterf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrParameter)
}

// Missing describes one component's unmet requirement, aggregated into a
// RequirementError by Preflight.
type Missing struct {
	Owner string
	Type  string
}

// RequirementError aggregates every Missing found by one preflight walk,
// so a caller sees every offending component in one error rather than
// failing on the first and re-running preflight repeatedly.
type RequirementError struct {
	Missing []Missing
}

func (e *RequirementError) Error() string {
	parts := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		parts[i] = fmt.Sprintf("%s requires %s", m.Owner, m.Type)
	}
	return fmt.Sprintf("component: unsatisfied requirements: %s (%v)", strings.Join(parts, "; "), ErrRequirement)
}

func (e *RequirementError) Unwrap() error { return ErrRequirement }
