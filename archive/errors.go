package archive

import (
	"fmt"

	"github.com/mahf-opt/mahf/population"
)

func layoutf(owner, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", owner, fmt.Sprintf(format, args...), population.ErrStackLayout)
}
