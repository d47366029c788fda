// Package constants provides shared constants for the loan-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MonthlyRateDivisor converts an annual percentage rate into a monthly
	// fraction (12 * 100).
	MonthlyRateDivisor = MonthsPerYear * PercentageMultiplier
)

// Loan type names accepted on the command line.
const (
	// LoanTypeAnnuity selects a fixed monthly payment loan
	LoanTypeAnnuity = "annuity"

	// LoanTypeDifferentiated selects a loan with a constant principal portion
	LoanTypeDifferentiated = "diff"
)

// Command line flag names
const (
	FlagPrincipal    = "principal"
	FlagInterest     = "interest"
	FlagPeriods      = "periods"
	FlagPayment      = "payment"
	FlagType         = "type"
	FlagConfig       = "config"
	FlagOutputFormat = "output-format"
	FlagLogLevel     = "log-level"
)

// Output format constants
const (
	// OutputFormatPlain reproduces the classic calculator messages
	OutputFormatPlain = "plain"

	// OutputFormatPretty is the human-readable output with digit grouping
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Logging defaults
const (
	// DefaultLogLevel keeps stderr quiet unless something is wrong
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the encoder used when none is configured
	DefaultLogFormat = "json"

	// EnvPrefix is the prefix for environment overrides (LOANCALC_LOGGING_LEVEL)
	EnvPrefix = "LOANCALC"
)

// IncorrectParametersMessage is printed for every rejected request.
const IncorrectParametersMessage = "Incorrect parameters"
