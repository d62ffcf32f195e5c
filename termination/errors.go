package termination

import (
	"errors"
	"fmt"
)

// ErrParameter indicates a constructor received an out-of-range value.
var ErrParameter = errors.New("termination: invalid parameter")

func parameterf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrParameter)
}
