package order

import (
	"fmt"

	"voucher-seckill/internal/pkg/errs"
)

// Outcome is the admission script's result code.
type Outcome int64

const (
	OutcomeAccepted   Outcome = 0
	OutcomeSoldOut    Outcome = 1
	OutcomeDuplicate  Outcome = 2
	OutcomeSaleClosed Outcome = 3
)

func ParseOutcome(code int64) (Outcome, error) {
	o := Outcome(code)
	switch o {
	case OutcomeAccepted, OutcomeSoldOut, OutcomeDuplicate, OutcomeSaleClosed:
		return o, nil
	default:
		return 0, errs.Newf("unknown admission result code %d", code)
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "ACCEPTED"
	case OutcomeSoldOut:
		return "SOLD_OUT"
	case OutcomeDuplicate:
		return "DUPLICATE"
	case OutcomeSaleClosed:
		return "SALE_CLOSED"
	default:
		return fmt.Sprintf("Outcome(%d)", int64(o))
	}
}

// Err returns nil for OutcomeAccepted and a rejection marked with
// errs.ErrAdmissionRejected otherwise.
func (o Outcome) Err() error {
	switch o {
	case OutcomeAccepted:
		return nil
	case OutcomeSoldOut:
		return errs.Mark(errs.ErrSoldOut, errs.ErrAdmissionRejected)
	case OutcomeDuplicate:
		return errs.Mark(errs.ErrDuplicateOrder, errs.ErrAdmissionRejected)
	case OutcomeSaleClosed:
		return errs.Mark(errs.ErrSaleClosed, errs.ErrAdmissionRejected)
	default:
		return errs.Mark(errs.New(o.String()), errs.ErrAdmissionRejected)
	}
}

// Reason maps a rejection back to its wire name. Empty for non-rejections.
func Reason(err error) string {
	switch {
	case errs.Is(err, errs.ErrSoldOut):
		return OutcomeSoldOut.String()
	case errs.Is(err, errs.ErrDuplicateOrder):
		return OutcomeDuplicate.String()
	case errs.Is(err, errs.ErrSaleClosed):
		return OutcomeSaleClosed.String()
	default:
		return ""
	}
}
