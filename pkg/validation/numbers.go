package validation

import (
	"fmt"

	"github.com/iwvelando/loan-calculator/pkg/mathutil"
)

// ValidateNonNegative checks that value is a finite number that is not below zero.
func ValidateNonNegative(name string, value float64) error {
	if !mathutil.IsFinite(value) {
		return fmt.Errorf("%s: value is not a finite number", name)
	}
	if value < 0 {
		return fmt.Errorf("%s: value must be >= 0, got %v", name, value)
	}
	return nil
}

// ValidatePositive checks that value is a finite number strictly above zero.
func ValidatePositive(name string, value float64) error {
	if err := ValidateNonNegative(name, value); err != nil {
		return err
	}
	if value == 0 {
		return fmt.Errorf("%s: value must be > 0", name)
	}
	return nil
}

// ValidatePositiveInt checks that value is at least one.
func ValidatePositiveInt(name string, value int) error {
	if value < 1 {
		return fmt.Errorf("%s: value must be >= 1, got %d", name, value)
	}
	return nil
}
