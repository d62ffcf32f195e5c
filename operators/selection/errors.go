package selection

import (
	"errors"
	"fmt"

	"github.com/mahf-opt/mahf/population"
)

// ErrParameter indicates a constructor received an invalid parameter.
var ErrParameter = errors.New("selection: invalid parameter")

func parameterf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrParameter)
}

func layoutf(owner, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", owner, fmt.Sprintf(format, args...), population.ErrStackLayout)
}
