package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gestia-app/paie-backend-go/internal/domain/payroll"
	"github.com/gestia-app/paie-backend-go/internal/handler/http/response"
	"github.com/gestia-app/paie-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListEmployeePayslips(w http.ResponseWriter, r *http.Request)
	UpdatePayslipStatus(w http.ResponseWriter, r *http.Request)
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)
	ArchivePayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated", result)
}

// payslipID pulls the {id} URL param and rejects anything that is not a
// UUIDv7 before the repository is consulted.
func payslipID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid payslip id", nil)
		return "", false
	}
	return id, true
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id, ok := payslipID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListEmployeePayslips(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	result, err := h.payrollService.ListEmployeePayslips(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdatePayslipStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := payslipID(w, r)
	if !ok {
		return
	}

	var req payroll.UpdatePayslipStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Invalid month parameter", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Invalid year parameter", nil)
		return
	}

	result, err := h.payrollService.PeriodSummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ArchivePayslip(w http.ResponseWriter, r *http.Request) {
	id, ok := payslipID(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.ArchivePayslip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"id": id, "status": "archived"})
}
