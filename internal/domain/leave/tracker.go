package leave

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Default accrual per pay period, in days. Overridable per call.
var (
	DefaultCongesAccrual = decimal.RequireFromString("2.5")
	DefaultRTTAccrual    = decimal.RequireFromString("1")
)

// DefaultAccrual returns the per-period accrual for the given leave kind.
func DefaultAccrual(kind LeaveKind) decimal.Decimal {
	if kind == KindRTT {
		return DefaultRTTAccrual
	}
	return DefaultCongesAccrual
}

// ComputeBalance rolls one leave counter forward by a period:
// balance = prior.Balance + acquired − taken. Pure; persisting the result
// back onto the employee record is the caller's job.
func ComputeBalance(prior LeaveBalance, acquired, taken decimal.Decimal) (LeaveBalance, error) {
	if acquired.IsNegative() {
		return LeaveBalance{}, fmt.Errorf("%w: acquired must be non-negative", ErrInvalidInput)
	}
	if taken.IsNegative() {
		return LeaveBalance{}, fmt.Errorf("%w: taken must be non-negative", ErrInvalidInput)
	}
	available := prior.Balance.Add(acquired)
	if taken.GreaterThan(available) {
		return LeaveBalance{}, fmt.Errorf("%w: taken %s exceeds available %s days",
			ErrInvalidInput, taken.String(), available.String())
	}
	return LeaveBalance{
		Acquired: acquired,
		Taken:    taken,
		Balance:  available.Sub(taken),
	}, nil
}
