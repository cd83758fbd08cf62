package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gestia-app/paie-backend-go/internal/config"
	"github.com/gestia-app/paie-backend-go/internal/domain/payroll"
	appHTTP "github.com/gestia-app/paie-backend-go/internal/handler/http"
	"github.com/gestia-app/paie-backend-go/internal/pkg/artifacts"
	"github.com/gestia-app/paie-backend-go/internal/pkg/database"
	"github.com/gestia-app/paie-backend-go/internal/pkg/docstore"
	"github.com/gestia-app/paie-backend-go/internal/pkg/jwt"
	repo "github.com/gestia-app/paie-backend-go/internal/repository/docstore"
	payrollService "github.com/gestia-app/paie-backend-go/internal/service/payroll"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	ctx := context.Background()
	if err := docstore.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate document store", "error", err)
		return
	}
	store := docstore.NewPostgresStore(db)

	payslipRepo := repo.NewPayslipRepository(store)
	employeeRepo := repo.NewEmployeeRepository(store)
	companyRepo := repo.NewCompanyRepository(store)

	rates := payroll.DefaultRates()
	rates.OvertimeDefaultRate = cfg.Payroll.OvertimeDefaultRate

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	artifactStorage := artifacts.NewLocalStorage(cfg.Payroll.ArtifactsDir)

	// No renderer is bundled; archive requests answer 501 until one is
	// plugged in here.
	var renderer payroll.Renderer

	payrollSvc := payrollService.NewPayrollService(
		payrollService.Config{
			Rates:                   rates,
			EnforcePeriodUniqueness: cfg.Payroll.EnforcePeriodUniqueness,
		},
		payslipRepo,
		employeeRepo,
		companyRepo,
		renderer,
		artifactStorage,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	router := appHTTP.NewRouter(JWTService, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", "addr", port, "env", cfg.App.Env)
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
