package response

import (
	"errors"
	"net/http"

	"github.com/gestia-app/paie-backend-go/internal/domain/company"
	"github.com/gestia-app/paie-backend-go/internal/domain/employee"
	"github.com/gestia-app/paie-backend-go/internal/domain/leave"
	"github.com/gestia-app/paie-backend-go/internal/domain/payroll"
	"github.com/gestia-app/paie-backend-go/internal/pkg/docstore"
	"github.com/gestia-app/paie-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrIncompleteInput):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipAlreadyExists):
		Conflict(w, "A payslip already exists for this employee and period")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrRendererNotConfigured):
		NotImplemented(w, "Payslip rendering is not configured")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)

	// Employee / company domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Store outages are retryable
	case errors.Is(err, docstore.ErrUnavailable):
		ServiceUnavailable(w, "Document store unavailable, retry later")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
