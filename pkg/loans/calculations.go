// Package loans provides the closed-form loan calculations: annuity payment,
// principal and duration, and differentiated payment schedules.
package loans

import (
	"iter"
	"math"

	"github.com/iwvelando/loan-calculator/pkg/mathutil"
	"github.com/iwvelando/loan-calculator/pkg/validation"
)

// CalculateAnnuityPayment solves an annuity for its fixed monthly payment.
// The payment is rounded up to a whole unit and the overpayment is derived
// from the rounded payment.
func CalculateAnnuityPayment(principal, annualInterestRate float64, periods int) (AnnuityPaymentResult, error) {
	if err := checkInputs(
		validation.ValidateNonNegative("principal", principal),
		validation.ValidateNonNegative("interest", annualInterestRate),
		validation.ValidatePositiveInt("periods", periods),
	); err != nil {
		return AnnuityPaymentResult{}, err
	}

	periodicInterestRate := mathutil.MonthlyRate(annualInterestRate)
	if periodicInterestRate == 0 {
		// No interest accrues, so the rounding slack is recovered on the
		// last payment rather than counted as overpayment.
		payment, ok := mathutil.CeilInt(principal / float64(periods))
		if !ok {
			return AnnuityPaymentResult{}, invalidf("monthly payment out of range")
		}
		return AnnuityPaymentResult{MonthlyPayment: payment}, nil
	}

	power := math.Pow(1.00+periodicInterestRate, float64(periods))
	payment, ok := mathutil.CeilInt(principal * (periodicInterestRate * power) / (power - 1.00))
	if !ok {
		return AnnuityPaymentResult{}, invalidf("monthly payment out of range")
	}
	overpayment, ok := mathutil.CeilInt(float64(payment)*float64(periods) - principal)
	if !ok {
		return AnnuityPaymentResult{}, invalidf("overpayment out of range")
	}

	return AnnuityPaymentResult{MonthlyPayment: payment, Overpayment: overpayment}, nil
}

// CalculatePrincipal solves an annuity for the principal that a fixed monthly
// payment repays over the given number of periods. The overpayment is taken
// against the unrounded principal.
func CalculatePrincipal(payment, annualInterestRate float64, periods int) (PrincipalResult, error) {
	if err := checkInputs(
		validation.ValidateNonNegative("payment", payment),
		validation.ValidateNonNegative("interest", annualInterestRate),
		validation.ValidatePositiveInt("periods", periods),
	); err != nil {
		return PrincipalResult{}, err
	}

	periodicInterestRate := mathutil.MonthlyRate(annualInterestRate)
	if periodicInterestRate == 0 {
		return PrincipalResult{Principal: payment * float64(periods)}, nil
	}

	power := math.Pow(1.00+periodicInterestRate, float64(periods))
	principal := payment / ((periodicInterestRate * power) / (power - 1.00))
	if !mathutil.IsFinite(principal) {
		return PrincipalResult{}, invalidf("principal is not a finite number")
	}
	overpayment, ok := mathutil.CeilInt(payment*float64(periods) - principal)
	if !ok {
		return PrincipalResult{}, invalidf("overpayment out of range")
	}

	return PrincipalResult{Principal: principal, Overpayment: overpayment}, nil
}

// CalculatePeriods solves an annuity for the number of months needed to
// repay principal with a fixed payment. The month count is rounded half to
// even. A payment that does not exceed the first month's interest never
// repays the loan and is rejected.
func CalculatePeriods(payment, principal, annualInterestRate float64) (PeriodsResult, error) {
	if err := checkInputs(
		validation.ValidatePositive("payment", payment),
		validation.ValidateNonNegative("principal", principal),
		validation.ValidateNonNegative("interest", annualInterestRate),
	); err != nil {
		return PeriodsResult{}, err
	}

	periodicInterestRate := mathutil.MonthlyRate(annualInterestRate)
	if periodicInterestRate == 0 {
		months, ok := mathutil.CeilInt(principal / payment)
		if !ok || months > math.MaxInt32 {
			return PeriodsResult{}, invalidf("period count out of range")
		}
		return PeriodsResult{Periods: int(months)}, nil
	}

	remainder := payment - periodicInterestRate*principal
	if remainder <= 0 {
		return PeriodsResult{}, invalidf("payment %v does not cover monthly interest %v",
			payment, periodicInterestRate*principal)
	}

	months, ok := mathutil.RoundHalfEven(math.Log(payment/remainder) / math.Log(1.00+periodicInterestRate))
	if !ok {
		return PeriodsResult{}, invalidf("period count out of range")
	}
	overpayment, ok := mathutil.CeilInt(float64(months)*payment - principal)
	if !ok {
		return PeriodsResult{}, invalidf("overpayment out of range")
	}

	return PeriodsResult{Periods: months, Overpayment: overpayment}, nil
}

// DifferentiatedPayments returns the monthly payments of a differentiated
// loan as a lazy sequence of (month, amount) pairs, months numbered from 1.
// Each amount is the constant principal share plus interest on the principal
// still outstanding, rounded up.
func DifferentiatedPayments(principal, annualInterestRate float64, periods int) (iter.Seq2[int, int64], error) {
	if err := checkInputs(
		validation.ValidateNonNegative("principal", principal),
		validation.ValidateNonNegative("interest", annualInterestRate),
		validation.ValidatePositiveInt("periods", periods),
	); err != nil {
		return nil, err
	}

	periodicInterestRate := mathutil.MonthlyRate(annualInterestRate)
	share := principal / float64(periods)
	if _, ok := mathutil.CeilInt(share + periodicInterestRate*principal); !ok {
		return nil, invalidf("monthly payment out of range")
	}

	return func(yield func(int, int64) bool) {
		for month := 1; month <= periods; month++ {
			amount, _ := mathutil.CeilInt(share + periodicInterestRate*(principal-float64(month-1)*share))
			if !yield(month, amount) {
				return
			}
		}
	}, nil
}

// CalculateDifferentiated prepares a differentiated schedule. No payment is
// computed until the schedule is ranged over.
func CalculateDifferentiated(principal, annualInterestRate float64, periods int) (DifferentiatedResult, error) {
	payments, err := DifferentiatedPayments(principal, annualInterestRate, periods)
	if err != nil {
		return DifferentiatedResult{}, err
	}
	return DifferentiatedResult{Principal: principal, Payments: payments}, nil
}

// checkInputs returns the first failed check wrapped as invalid parameters.
func checkInputs(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return invalidf("%v", err)
		}
	}
	return nil
}
