// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/loan-calculator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPlain, constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPlain, constants.OutputFormatPretty, constants.OutputFormatCSV, format)
}

// ValidateLogFormat checks the logging encoder name.
func ValidateLogFormat(format string) error {
	if format != "json" && format != "console" {
		return fmt.Errorf("invalid log format: %s", format)
	}
	return nil
}
