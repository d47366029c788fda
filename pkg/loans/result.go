package loans

// Kind names which quantity a calculation solves for.
type Kind int

const (
	KindUnknown Kind = iota
	KindAnnuityPayment
	KindPrincipal
	KindPeriods
	KindDifferentiated
)

func (k Kind) String() string {
	switch k {
	case KindAnnuityPayment:
		return "annuity_payment"
	case KindPrincipal:
		return "principal"
	case KindPeriods:
		return "periods"
	case KindDifferentiated:
		return "differentiated"
	default:
		return "unknown"
	}
}

// Calculation is the result of one dispatched request. Only the field
// matching Kind is populated.
type Calculation struct {
	Kind           Kind
	AnnuityPayment AnnuityPaymentResult
	Principal      PrincipalResult
	Periods        PeriodsResult
	Differentiated DifferentiatedResult
}

// Overpayment returns the overpayment of a closed-form result. It reports
// false for differentiated schedules, whose overpayment depends on the sum of
// their payments, and for unknown kinds.
func (c Calculation) Overpayment() (int64, bool) {
	switch c.Kind {
	case KindAnnuityPayment:
		return c.AnnuityPayment.Overpayment, true
	case KindPrincipal:
		return c.Principal.Overpayment, true
	case KindPeriods:
		return c.Periods.Overpayment, true
	default:
		return 0, false
	}
}
