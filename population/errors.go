// SPDX-License-Identifier: MIT
package population

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates an operation required at least one population on
	// the stack and found the stack empty.
	ErrEmpty = errors.New("population: stack is empty")

	// ErrStackLayout indicates an operator's expected stack shape — depth,
	// or a relationship between the sizes of the populations it pops —
	// was not met. Operators must return this rather than panic
	// (spec.md §4.3).
	ErrStackLayout = errors.New("population: invalid stack layout")
)

func layoutf(component, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", component, fmt.Sprintf(format, args...), ErrStackLayout)
}
