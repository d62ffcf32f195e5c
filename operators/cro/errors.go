package cro

import (
	"errors"
	"fmt"

	"github.com/mahf-opt/mahf/population"
)

// ErrParameter indicates a constructor received an out-of-range value.
var ErrParameter = errors.New("cro: invalid parameter")

func parameterf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrParameter)
}

func layoutf(owner, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", owner, fmt.Sprintf(format, args...), population.ErrStackLayout)
}
