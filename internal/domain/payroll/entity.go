package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestia-app/paie-backend-go/internal/domain/leave"
)

// LineKind enum
type LineKind string

const (
	LineKindEarning   LineKind = "earning"
	LineKindDeduction LineKind = "deduction"
)

// PayslipLine is one row of the payslip body. Base and Rate are display
// strings ("151.67 h", "7.30 %") and may be empty.
type PayslipLine struct {
	Label  string          `json:"label"`
	Base   string          `json:"base,omitempty"`
	Rate   string          `json:"rate,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Kind   LineKind        `json:"kind"`
}

// EmployeeSnapshot - employee identity captured at generation time.
// Later edits to the employee record never change an issued payslip.
type EmployeeSnapshot struct {
	EmployeeID           string `json:"employeeId"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Role                 string `json:"role,omitempty"`
	SocialSecurityNumber string `json:"socialSecurityNumber,omitempty"`
	StartDate            string `json:"startDate,omitempty"`
}

// CompanySnapshot - employer identity captured at generation time.
type CompanySnapshot struct {
	CompanyID string `json:"companyId"`
	Name      string `json:"companyName"`
	Address   string `json:"companyAddress,omitempty"`
	SIRET     string `json:"companySiret,omitempty"`
}

// LeaveSummary carries both balance counters onto the payslip.
type LeaveSummary struct {
	Conges leave.LeaveBalance `json:"conges"`
	RTT    leave.LeaveBalance `json:"rtt"`
}

// AnnualCumulative - running year-to-date totals including this payslip.
type AnnualCumulative struct {
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	NetSalary     decimal.Decimal `json:"netSalary"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
}

// Payslip is the structured record of one employee's pay for one period.
// The ID is empty until the repository persists it and immutable after.
type Payslip struct {
	ID       string `json:"id,omitempty"`
	Employee EmployeeSnapshot `json:"employee"`
	Company  CompanySnapshot  `json:"company"`

	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`

	Period string `json:"period"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`

	GrossSalary     decimal.Decimal `json:"grossSalary"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetSalary       decimal.Decimal `json:"netSalary"`
	TaxableIncome   decimal.Decimal `json:"taxableIncome"`
	HoursWorked     decimal.Decimal `json:"hoursWorked"`

	Lines []PayslipLine `json:"lines"`

	Leave            LeaveSummary     `json:"leave"`
	AnnualCumulative AnnualCumulative `json:"annualCumulative"`

	Status PayslipStatus `json:"status"`

	// IdempotencyKey is the caller-supplied dedupe key; empty when the
	// caller did not ask for save deduplication.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`

	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}
