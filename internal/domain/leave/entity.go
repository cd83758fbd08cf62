package leave

import "github.com/shopspring/decimal"

// LeaveKind enum
type LeaveKind string

const (
	KindConges LeaveKind = "conges"
	KindRTT    LeaveKind = "rtt"
)

// LeaveBalance is one leave counter for one period: days accrued, days
// consumed and the resulting running total. Balance always equals
// prior balance + acquired − taken.
type LeaveBalance struct {
	Acquired decimal.Decimal `json:"acquired"`
	Taken    decimal.Decimal `json:"taken"`
	Balance  decimal.Decimal `json:"balance"`
}
