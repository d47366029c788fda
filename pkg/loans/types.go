package loans

import (
	"errors"
	"fmt"
	"iter"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/mathutil"
)

// ErrInvalidParameters is returned for every request the calculator refuses,
// whether the inputs are malformed or the loan cannot be computed.
var ErrInvalidParameters = errors.New("incorrect parameters")

// invalidf wraps ErrInvalidParameters with a reason for the logs.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, fmt.Sprintf(format, args...))
}

// Type identifies the repayment scheme of a loan.
type Type string

const (
	Annuity        Type = constants.LoanTypeAnnuity
	Differentiated Type = constants.LoanTypeDifferentiated
)

// ParseType maps a command line value onto a Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Annuity, Differentiated:
		return Type(s), nil
	default:
		return "", invalidf("unknown loan type %q", s)
	}
}

// Optional holds a value that may or may not have been supplied. The zero
// value is absent, so a supplied zero is distinguishable from a missing one.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was supplied.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Request is one calculation request as given on the command line.
type Request struct {
	Type         string
	Principal    Optional[float64]
	InterestRate Optional[float64] // annual, percent
	Periods      Optional[int]     // months
	Payment      Optional[float64]
}

// AnnuityPaymentResult is the outcome of solving an annuity for its payment.
type AnnuityPaymentResult struct {
	MonthlyPayment int64
	Overpayment    int64
}

// PrincipalResult is the outcome of solving an annuity for its principal.
// Principal is kept unrounded; DisplayPrincipal gives the printed value.
type PrincipalResult struct {
	Principal   float64
	Overpayment int64
}

// DisplayPrincipal returns the principal rounded up to a whole unit.
func (r PrincipalResult) DisplayPrincipal() int64 {
	p, _ := mathutil.CeilInt(r.Principal)
	return p
}

// PeriodsResult is the outcome of solving an annuity for its duration.
type PeriodsResult struct {
	Periods     int
	Overpayment int64
}

// Years returns the number of whole years in Periods.
func (r PeriodsResult) Years() int {
	return r.Periods / constants.MonthsPerYear
}

// RemainingMonths returns the months left over after Years.
func (r PeriodsResult) RemainingMonths() int {
	return r.Periods % constants.MonthsPerYear
}

// MonthlyPayment is a single entry of a differentiated schedule.
type MonthlyPayment struct {
	Month  int
	Amount int64
}

// DifferentiatedResult is a differentiated schedule. Payments is lazy, so the
// overpayment is known only once the schedule has been consumed.
type DifferentiatedResult struct {
	Principal float64
	Payments  iter.Seq2[int, int64]
}

// Overpayment returns what was paid beyond the principal, given the sum of
// every payment in the schedule.
func (r DifferentiatedResult) Overpayment(totalPaid int64) (int64, error) {
	overpayment, ok := mathutil.CeilInt(float64(totalPaid) - r.Principal)
	if !ok {
		return 0, invalidf("overpayment out of range")
	}
	return overpayment, nil
}

// Collect walks the whole schedule, returning its entries and overpayment.
func (r DifferentiatedResult) Collect() ([]MonthlyPayment, int64, error) {
	var payments []MonthlyPayment
	var totalPaid int64
	for month, amount := range r.Payments {
		payments = append(payments, MonthlyPayment{Month: month, Amount: amount})
		totalPaid += amount
	}
	overpayment, err := r.Overpayment(totalPaid)
	if err != nil {
		return nil, 0, err
	}
	return payments, overpayment, nil
}
