package config

import (
	"fmt"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/loans"
	"github.com/spf13/pflag"
)

// RequestFromFlags builds the loan request from parsed flags. Only flags
// given on the command line are marked present, so "--principal 0" and a
// missing principal stay distinct.
func RequestFromFlags(flags *pflag.FlagSet) (loans.Request, error) {
	var req loans.Request
	var err error

	if flags.Changed(constants.FlagType) {
		if req.Type, err = flags.GetString(constants.FlagType); err != nil {
			return loans.Request{}, err
		}
	}
	if req.Principal, err = optionalFloat(flags, constants.FlagPrincipal); err != nil {
		return loans.Request{}, err
	}
	if req.InterestRate, err = optionalFloat(flags, constants.FlagInterest); err != nil {
		return loans.Request{}, err
	}
	if req.Payment, err = optionalFloat(flags, constants.FlagPayment); err != nil {
		return loans.Request{}, err
	}
	if flags.Changed(constants.FlagPeriods) {
		periods, err := flags.GetInt(constants.FlagPeriods)
		if err != nil {
			return loans.Request{}, fmt.Errorf("reading flag %s: %w", constants.FlagPeriods, err)
		}
		req.Periods = loans.Some(periods)
	}

	return req, nil
}

func optionalFloat(flags *pflag.FlagSet, name string) (loans.Optional[float64], error) {
	if !flags.Changed(name) {
		return loans.None[float64](), nil
	}
	v, err := flags.GetFloat64(name)
	if err != nil {
		return loans.None[float64](), fmt.Errorf("reading flag %s: %w", name, err)
	}
	return loans.Some(v), nil
}
