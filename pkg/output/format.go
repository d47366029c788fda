// Package output provides utilities for formatting and displaying loan calculation results.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/loans"
	"github.com/iwvelando/loan-calculator/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Renderer writes a finished calculation.
type Renderer interface {
	Render(w io.Writer, calc loans.Calculation) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w io.Writer, calc loans.Calculation) error

// Render calls f.
func (f RendererFunc) Render(w io.Writer, calc loans.Calculation) error {
	return f(w, calc)
}

// NewRenderer returns the renderer for an output format name.
func NewRenderer(format string) (Renderer, error) {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case constants.OutputFormatCSV:
		return RendererFunc(CsvFormat), nil
	case constants.OutputFormatPretty:
		return RendererFunc(PrettyFormat), nil
	default:
		return RendererFunc(PlainFormat), nil
	}
}

// IncorrectParameters writes the single message used for every rejected request.
func IncorrectParameters(w io.Writer) error {
	_, err := fmt.Fprintln(w, constants.IncorrectParametersMessage)
	return err
}

// PlainFormat writes the classic calculator messages.
func PlainFormat(w io.Writer, calc loans.Calculation) error {
	ew := &errWriter{w: w}
	overpayment, _ := calc.Overpayment()
	switch calc.Kind {
	case loans.KindAnnuityPayment:
		ew.printf("Your monthly payment = %d!\n", calc.AnnuityPayment.MonthlyPayment)
	case loans.KindPrincipal:
		ew.printf("Your loan principal = %d!\n", calc.Principal.DisplayPrincipal())
	case loans.KindPeriods:
		if years := calc.Periods.Years(); years > 0 {
			ew.printf("It will take %d years and %d months to repay this loan!\n", years, calc.Periods.RemainingMonths())
		} else {
			ew.printf("It will take %d months to repay this loan!\n", calc.Periods.RemainingMonths())
		}
	case loans.KindDifferentiated:
		totalPaid := streamSchedule(ew, calc.Differentiated, func(month int, amount int64) {
			ew.printf("Month %d: payment is %d\n", month, amount)
		})
		if ew.err != nil {
			return ew.err
		}
		var err error
		if overpayment, err = calc.Differentiated.Overpayment(totalPaid); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot render calculation of kind %s", calc.Kind)
	}
	ew.printf("Overpayment = %d\n", overpayment)
	return ew.err
}

// PrettyFormat outputs a human-readable summary with grouped digits.
func PrettyFormat(w io.Writer, calc loans.Calculation) error {
	p := message.NewPrinter(language.English)
	ew := &errWriter{w: w, p: p}
	overpayment, _ := calc.Overpayment()
	switch calc.Kind {
	case loans.KindAnnuityPayment:
		ew.printf("Monthly payment | %d\n", calc.AnnuityPayment.MonthlyPayment)
	case loans.KindPrincipal:
		ew.printf("Loan principal  | %d\n", calc.Principal.DisplayPrincipal())
	case loans.KindPeriods:
		ew.printf("Duration        | %d years %d months (%d months)\n",
			calc.Periods.Years(), calc.Periods.RemainingMonths(), calc.Periods.Periods)
	case loans.KindDifferentiated:
		ew.printf("Month | Payment\n")
		ew.printf("_____ | _______\n")
		totalPaid := streamSchedule(ew, calc.Differentiated, func(month int, amount int64) {
			ew.printf("%5d | %d\n", month, amount)
		})
		if ew.err != nil {
			return ew.err
		}
		var err error
		if overpayment, err = calc.Differentiated.Overpayment(totalPaid); err != nil {
			return err
		}
		ew.printf("Total paid      | %d\n", totalPaid)
	default:
		return fmt.Errorf("cannot render calculation of kind %s", calc.Kind)
	}
	ew.printf("Overpayment     | %d\n", overpayment)
	return ew.err
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, calc loans.Calculation) error {
	ew := &errWriter{w: w}
	overpayment, _ := calc.Overpayment()
	switch calc.Kind {
	case loans.KindAnnuityPayment:
		ew.printf(`"item","value"` + "\n")
		ew.printf(`"monthly_payment","%d"`+"\n", calc.AnnuityPayment.MonthlyPayment)
	case loans.KindPrincipal:
		ew.printf(`"item","value"` + "\n")
		ew.printf(`"principal","%d"`+"\n", calc.Principal.DisplayPrincipal())
	case loans.KindPeriods:
		ew.printf(`"item","value"` + "\n")
		ew.printf(`"periods","%d"`+"\n", calc.Periods.Periods)
	case loans.KindDifferentiated:
		ew.printf(`"item","value"` + "\n")
		totalPaid := streamSchedule(ew, calc.Differentiated, func(month int, amount int64) {
			ew.printf(`"month_%d","%d"`+"\n", month, amount)
		})
		if ew.err != nil {
			return ew.err
		}
		var err error
		if overpayment, err = calc.Differentiated.Overpayment(totalPaid); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot render calculation of kind %s", calc.Kind)
	}
	ew.printf(`"overpayment","%d"`+"\n", overpayment)
	return ew.err
}

// streamSchedule hands each payment to row as it is computed and returns the
// sum paid. It stops at the first write error.
func streamSchedule(ew *errWriter, schedule loans.DifferentiatedResult, row func(month int, amount int64)) int64 {
	var totalPaid int64
	for month, amount := range schedule.Payments {
		row(month, amount)
		if ew.err != nil {
			break
		}
		totalPaid += amount
	}
	return totalPaid
}

// errWriter keeps the first write error so renderers can print freely.
type errWriter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	if ew.p != nil {
		_, ew.err = ew.p.Fprintf(ew.w, format, args...)
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
