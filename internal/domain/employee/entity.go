package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentEntry is one item in the employee's permanent document archive
// (payslips, contracts, certificates).
type DocumentEntry struct {
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	PayslipID  string    `json:"payslipId,omitempty"`
	StorageRef string    `json:"storageRef,omitempty"`
	AddedAt    time.Time `json:"addedAt"`
}

const DocumentKindPayslip = "payslip"

// Employee record as stored in the "employees" collection. Payslips holds
// the ids of every payslip linked to this employee, appended exactly once
// per payslip.
type Employee struct {
	ID                   string `json:"id"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Role                 string `json:"role,omitempty"`
	SocialSecurityNumber string `json:"socialSecurityNumber,omitempty"`
	StartDate            string `json:"startDate,omitempty"`

	// Running leave balances, rolled forward on each generation.
	CongesBalance decimal.Decimal `json:"congesBalance"`
	RTTBalance    decimal.Decimal `json:"rttBalance"`

	Payslips  []string        `json:"payslips"`
	Documents []DocumentEntry `json:"documents,omitempty"`
}

// FullName returns the display name used on payslips.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
