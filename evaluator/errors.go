package evaluator

import (
	"errors"
	"fmt"
)

// ErrParameter indicates NewParallel received a non-positive worker count.
var ErrParameter = errors.New("evaluator: invalid parameter")

func parameterf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrParameter)
}
