// Package calculator validates loan requests and routes each one to the
// calculation that solves for its missing parameter.
package calculator

import (
	"github.com/iwvelando/loan-calculator/pkg/loans"
	"github.com/iwvelando/loan-calculator/pkg/validation"
	"go.uber.org/zap"
)

// Dispatcher validates requests and runs the matching calculation.
type Dispatcher struct {
	logger *zap.Logger
}

// NewDispatcher creates a Dispatcher. A nil logger discards all output.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{logger: logger}
}

// Resolve checks the request and reports which calculation it asks for.
// Every rejection wraps loans.ErrInvalidParameters.
func (d *Dispatcher) Resolve(req loans.Request) (loans.Kind, error) {
	loanType, err := loans.ParseType(req.Type)
	if err != nil {
		return loans.KindUnknown, err
	}

	rate, ok := req.InterestRate.Get()
	if !ok {
		return loans.KindUnknown, invalid("interest rate is required")
	}
	if err := validation.ValidateNonNegative("interest", rate); err != nil {
		return loans.KindUnknown, invalid(err.Error())
	}
	if principal, ok := req.Principal.Get(); ok {
		if err := validation.ValidateNonNegative("principal", principal); err != nil {
			return loans.KindUnknown, invalid(err.Error())
		}
	}
	if periods, ok := req.Periods.Get(); ok && periods < 0 {
		return loans.KindUnknown, invalid("periods must not be negative")
	}
	if payment, ok := req.Payment.Get(); ok {
		if err := validation.ValidateNonNegative("payment", payment); err != nil {
			return loans.KindUnknown, invalid(err.Error())
		}
	}

	switch loanType {
	case loans.Differentiated:
		if req.Payment.IsSet() || !req.Principal.IsSet() || !req.Periods.IsSet() {
			return loans.KindUnknown, invalid("differentiated loans take principal and periods but no payment")
		}
		return loans.KindDifferentiated, nil

	case loans.Annuity:
		missing := 0
		for _, set := range []bool{req.Principal.IsSet(), req.Payment.IsSet(), req.Periods.IsSet()} {
			if !set {
				missing++
			}
		}
		if missing != 1 {
			return loans.KindUnknown, invalid("annuity loans need exactly one of principal, payment, periods left out")
		}
		switch {
		case !req.Payment.IsSet():
			return loans.KindAnnuityPayment, nil
		case !req.Principal.IsSet():
			return loans.KindPrincipal, nil
		default:
			return loans.KindPeriods, nil
		}
	}

	return loans.KindUnknown, invalid("unsupported loan type")
}

// Dispatch resolves the request and runs the calculation it names.
func (d *Dispatcher) Dispatch(req loans.Request) (loans.Calculation, error) {
	kind, err := d.Resolve(req)
	if err != nil {
		d.logger.Debug("request rejected",
			zap.String("op", "calculator.Dispatch"),
			zap.Error(err),
		)
		return loans.Calculation{}, err
	}

	d.logger.Debug("dispatching calculation",
		zap.String("op", "calculator.Dispatch"),
		zap.Stringer("kind", kind),
	)

	calc := loans.Calculation{Kind: kind}
	rate, _ := req.InterestRate.Get()
	principal, _ := req.Principal.Get()
	periods, _ := req.Periods.Get()
	payment, _ := req.Payment.Get()

	switch kind {
	case loans.KindAnnuityPayment:
		calc.AnnuityPayment, err = loans.CalculateAnnuityPayment(principal, rate, periods)
	case loans.KindPrincipal:
		calc.Principal, err = loans.CalculatePrincipal(payment, rate, periods)
	case loans.KindPeriods:
		calc.Periods, err = loans.CalculatePeriods(payment, principal, rate)
	case loans.KindDifferentiated:
		calc.Differentiated, err = loans.CalculateDifferentiated(principal, rate, periods)
	}
	if err != nil {
		d.logger.Debug("calculation failed",
			zap.String("op", "calculator.Dispatch"),
			zap.Stringer("kind", kind),
			zap.Error(err),
		)
		return loans.Calculation{}, err
	}

	fields := []zap.Field{
		zap.String("op", "calculator.Dispatch"),
		zap.Stringer("kind", kind),
	}
	if overpayment, ok := calc.Overpayment(); ok {
		fields = append(fields, zap.Int64("overpayment", overpayment))
	}
	d.logger.Debug("calculation complete", fields...)
	return calc, nil
}
