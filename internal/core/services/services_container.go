package services

import (
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/platform/config"
	"github.com/velorent/insurance_sales_app/internal/providers/email"
)

// NewServiceContainer wires every service with its dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.SaleEventPublisher) *portssvc.ServiceContainer {
	var sender email.Sender = email.NoopSender{}
	if cfg.SMTPHost != "" {
		sender = email.NewSMTPSender(email.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	}

	container := &portssvc.ServiceContainer{}
	container.UserSvc = NewUserService(repos.UserRepo, repos.InsuranceTypeRepo, sender)
	container.AuthSvc = NewAuthService(cfg, repos.UserRepo)
	container.SaleSvc = NewSaleService(repos.SaleRepo, repos.InsuranceTypeRepo, repos.UserRepo, publisher)
	container.InsuranceTypeSvc = NewInsuranceTypeService(repos.InsuranceTypeRepo)
	container.ObjectiveSvc = NewObjectiveService(repos.ObjectiveRepo, repos.UserRepo, repos.SaleRepo)
	container.ReportingSvc = NewReportingService(repos.SaleRepo, repos.ObjectiveRepo, repos.InsuranceTypeRepo)
	container.ExportSvc = NewExportService(container.SaleSvc)

	return container
}
