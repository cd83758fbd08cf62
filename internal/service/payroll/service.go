package payroll

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gestia-app/paie-backend-go/internal/domain/company"
	"github.com/gestia-app/paie-backend-go/internal/domain/employee"
	"github.com/gestia-app/paie-backend-go/internal/domain/leave"
	"github.com/gestia-app/paie-backend-go/internal/domain/payroll"
	"github.com/gestia-app/paie-backend-go/internal/pkg/validator"
)

// Config carries the immutable generation settings.
type Config struct {
	Rates payroll.Rates

	// EnforcePeriodUniqueness makes generation fail with
	// ErrPayslipAlreadyExists when the employee already has a payslip for
	// the requested period. Off by default: two generations for the same
	// period produce two payslips.
	EnforcePeriodUniqueness bool
}

type PayrollServiceImpl struct {
	cfg          Config
	payslipRepo  payroll.PayslipRepository
	employeeRepo employee.EmployeeRepository
	companyRepo  company.CompanyRepository
	renderer     payroll.Renderer
	artifacts    payroll.ArtifactStorage
}

func NewPayrollService(
	cfg Config,
	payslipRepo payroll.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	renderer payroll.Renderer,
	artifacts payroll.ArtifactStorage,
) payroll.PayrollService {
	if cfg.Rates.BaseMonthlyHours.IsZero() {
		cfg.Rates = payroll.DefaultRates()
	}
	return &PayrollServiceImpl{
		cfg:          cfg,
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		renderer:     renderer,
		artifacts:    artifacts,
	}
}

func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, req payroll.GeneratePayslipRequest) (payroll.Payslip, error) {
	if err := req.Validate(); err != nil {
		return payroll.Payslip{}, err
	}

	// A retried generation with the same key returns the stored payslip.
	// The first attempt may have failed between save and the follow-up
	// employee writes, so both are re-applied: the link is idempotent and
	// the slip carries the balances the first attempt computed.
	if req.IdempotencyKey != "" {
		existing, err := s.payslipRepo.FindByIdempotencyKey(ctx, req.IdempotencyKey)
		if err == nil {
			if linkErr := s.employeeRepo.LinkPayslip(ctx, existing.EmployeeID, existing.ID); linkErr != nil {
				return payroll.Payslip{}, linkErr
			}
			if balErr := s.employeeRepo.UpdateLeaveBalances(ctx, existing.EmployeeID, existing.Leave.Conges.Balance, existing.Leave.RTT.Balance); balErr != nil {
				return payroll.Payslip{}, balErr
			}
			return existing, nil
		}
		if !errors.Is(err, payroll.ErrPayslipNotFound) {
			return payroll.Payslip{}, err
		}
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	comp, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	if s.cfg.EnforcePeriodUniqueness {
		existing, err := s.payslipRepo.FindByEmployeePeriod(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return payroll.Payslip{}, err
		}
		if len(existing) > 0 {
			return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
		}
	}

	overtimeRate := s.cfg.Rates.OvertimeDefaultRate
	if req.OvertimeRate != nil {
		overtimeRate = *req.OvertimeRate
	}
	calc, err := s.cfg.Rates.Compute(payroll.CalculationInput{
		BaseSalary:    req.BaseSalary,
		OvertimeHours: req.OvertimeHours,
		OvertimeRate:  overtimeRate,
	})
	if err != nil {
		return payroll.Payslip{}, err
	}

	conges, err := leave.ComputeBalance(
		leave.LeaveBalance{Balance: emp.CongesBalance},
		leave.DefaultAccrual(leave.KindConges),
		req.CongesTaken,
	)
	if err != nil {
		return payroll.Payslip{}, err
	}
	rtt, err := leave.ComputeBalance(
		leave.LeaveBalance{Balance: emp.RTTBalance},
		leave.DefaultAccrual(leave.KindRTT),
		req.RTTTaken,
	)
	if err != nil {
		return payroll.Payslip{}, err
	}

	cumulative, err := s.annualCumulative(ctx, req.EmployeeID, req.PeriodYear, calc)
	if err != nil {
		return payroll.Payslip{}, err
	}

	slip, err := BuildPayslip(
		employeeSnapshot(emp),
		companySnapshot(comp),
		req.PeriodMonth, req.PeriodYear,
		calc,
		payroll.LeaveSummary{Conges: conges, RTT: rtt},
		cumulative,
	)
	if err != nil {
		return payroll.Payslip{}, err
	}
	slip.IdempotencyKey = req.IdempotencyKey

	saved, err := s.payslipRepo.Save(ctx, slip)
	if err != nil {
		return payroll.Payslip{}, err
	}

	if err := s.employeeRepo.LinkPayslip(ctx, saved.EmployeeID, saved.ID); err != nil {
		return payroll.Payslip{}, err
	}
	if err := s.employeeRepo.UpdateLeaveBalances(ctx, saved.EmployeeID, conges.Balance, rtt.Balance); err != nil {
		return payroll.Payslip{}, err
	}

	return saved, nil
}

// annualCumulative sums the employee's stored payslips for the year and
// adds the current computation, producing the running year-to-date block.
func (s *PayrollServiceImpl) annualCumulative(ctx context.Context, employeeID string, year int, calc payroll.Computation) (payroll.AnnualCumulative, error) {
	prior, err := s.payslipRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.AnnualCumulative{}, err
	}

	gross := calc.GrossSalary
	net := calc.NetSalary
	taxable := calc.TaxableIncome
	for _, slip := range prior {
		if slip.Year != year {
			continue
		}
		gross = gross.Add(slip.GrossSalary)
		net = net.Add(slip.NetSalary)
		taxable = taxable.Add(slip.TaxableIncome)
	}
	return payroll.AnnualCumulative{
		GrossSalary:   gross,
		NetSalary:     net,
		TaxableIncome: taxable,
	}, nil
}

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.Payslip, error) {
	return s.payslipRepo.FindByID(ctx, id)
}

func (s *PayrollServiceImpl) ListEmployeePayslips(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	// Surface a missing employee distinctly from "no payslips yet".
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.payslipRepo.FindByEmployee(ctx, employeeID)
}

func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, id string, req payroll.UpdatePayslipStatusRequest) (payroll.Payslip, error) {
	if err := req.Validate(); err != nil {
		return payroll.Payslip{}, err
	}
	return s.payslipRepo.UpdateStatus(ctx, id, payroll.PayslipStatus(req.Status))
}

func (s *PayrollServiceImpl) PeriodSummary(ctx context.Context, month, year int) (payroll.PeriodSummaryResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return payroll.PeriodSummaryResponse{}, validator.ValidationErrors{
			{Field: "period", Message: "month must be 1-12 and year 2000 or later"},
		}
	}

	slips, err := s.payslipRepo.FindByPeriod(ctx, month, year)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	summary := payroll.PeriodSummaryResponse{
		Period:          validator.PeriodLabel(month, year),
		PayslipCount:    len(slips),
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}
	for _, slip := range slips {
		summary.TotalGross = summary.TotalGross.Add(slip.GrossSalary)
		summary.TotalDeductions = summary.TotalDeductions.Add(slip.TotalDeductions)
		summary.TotalNet = summary.TotalNet.Add(slip.NetSalary)
	}
	return summary, nil
}

func employeeSnapshot(emp employee.Employee) payroll.EmployeeSnapshot {
	return payroll.EmployeeSnapshot{
		EmployeeID:           emp.ID,
		FirstName:            emp.FirstName,
		LastName:             emp.LastName,
		Role:                 emp.Role,
		SocialSecurityNumber: emp.SocialSecurityNumber,
		StartDate:            emp.StartDate,
	}
}

func companySnapshot(comp company.Company) payroll.CompanySnapshot {
	return payroll.CompanySnapshot{
		CompanyID: comp.ID,
		Name:      comp.Name,
		Address:   comp.Address,
		SIRET:     comp.SIRET,
	}
}
