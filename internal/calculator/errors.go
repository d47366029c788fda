package calculator

import (
	"fmt"

	"github.com/iwvelando/loan-calculator/pkg/loans"
)

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", loans.ErrInvalidParameters, reason)
}
