package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckTransition_Forward(t *testing.T) {
	assert.NoError(t, CheckTransition(StatusGenerated, StatusSent))
	assert.NoError(t, CheckTransition(StatusSent, StatusValidated))
	assert.NoError(t, CheckTransition(StatusGenerated, StatusValidated))
}

func TestCheckTransition_SameStateIsNoOp(t *testing.T) {
	assert.NoError(t, CheckTransition(StatusGenerated, StatusGenerated))
	assert.NoError(t, CheckTransition(StatusValidated, StatusValidated))
}

func TestCheckTransition_BackwardRejected(t *testing.T) {
	assert.ErrorIs(t, CheckTransition(StatusValidated, StatusGenerated), ErrInvalidStatusTransition)
	assert.ErrorIs(t, CheckTransition(StatusValidated, StatusSent), ErrInvalidStatusTransition)
	assert.ErrorIs(t, CheckTransition(StatusSent, StatusGenerated), ErrInvalidStatusTransition)
}

func TestCheckTransition_UnknownStatus(t *testing.T) {
	assert.ErrorIs(t, CheckTransition(StatusGenerated, PayslipStatus("Annulé")), ErrInvalidStatus)
	assert.ErrorIs(t, CheckTransition(PayslipStatus(""), StatusSent), ErrInvalidStatus)
}

func TestGeneratePayslipRequest_Validate(t *testing.T) {
	valid := GeneratePayslipRequest{
		EmployeeID:  "e1",
		CompanyID:   "c1",
		PeriodMonth: 6,
		PeriodYear:  2025,
		BaseSalary:  dec("2500"),
	}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.EmployeeID = "  "
	assert.Error(t, missing.Validate())

	badPeriod := valid
	badPeriod.PeriodMonth = 13
	assert.Error(t, badPeriod.Validate())

	badSalary := valid
	badSalary.BaseSalary = decimal.Zero
	assert.Error(t, badSalary.Validate())
}
