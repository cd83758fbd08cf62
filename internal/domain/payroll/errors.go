package payroll

import "errors"

var (
	ErrInvalidInput            = errors.New("invalid payroll input")
	ErrIncompleteInput         = errors.New("incomplete payslip input")
	ErrPayslipNotFound         = errors.New("payslip not found")
	ErrPayslipAlreadyExists    = errors.New("payslip already exists for this employee and period")
	ErrInvalidStatus           = errors.New("unknown payslip status")
	ErrInvalidStatusTransition = errors.New("payslip status can only move forward")
	ErrRendererNotConfigured   = errors.New("payslip renderer not configured")
)
