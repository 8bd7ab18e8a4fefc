package routes

import (
	"log"

	"construction_dashboard/internal/config"
	"construction_dashboard/internal/infrastructure/payments"
	"construction_dashboard/internal/infrastructure/storage"
	"construction_dashboard/internal/usecase"
	"construction_dashboard/internal/usecase/interfaces"
	"construction_dashboard/internal/usecase/merge"
)

// UseCases is the application layer built over one repository set.
type UseCases struct {
	Catalog     *usecase.CatalogUseCase
	Projects    *usecase.ProjectUseCase
	Estimations *usecase.EstimationUseCase
	Agreements  *usecase.AgreementUseCase
	Payments    *usecase.PaymentUseCase
}

func NewUseCases(repos storage.Repositories, cfg config.Config) UseCases {
	projects := usecase.NewProjectUseCase(repos.Projects)
	formatter := merge.NewFormatter(cfg.CurrencySymbol, cfg.NumberLocale)

	return UseCases{
		Catalog:     usecase.NewCatalogUseCase(repos.LineItems, repos.Templates),
		Projects:    projects,
		Estimations: usecase.NewEstimationUseCase(repos.Estimations, repos.LineItems, repos.Templates, projects),
		Agreements:  usecase.NewAgreementUseCase(repos.Agreements, projects, repos.Estimations, repos.LineItems, formatter),
		Payments: usecase.NewPaymentUseCase(repos.Payments, repos.Estimations, projects, newPaymentGateway(cfg.Payments),
			usecase.PaymentOptions{
				MockMode:        cfg.Payments.Mock,
				AccessToken:     cfg.Payments.AccessToken,
				TestPayerEmail:  cfg.Payments.TestPayerEmail,
				TestPayerUserID: cfg.Payments.TestPayerUserID,
			}),
	}
}

// newPaymentGateway returns nil when payments run in mock mode or the SDK
// cannot be configured; the payment use case reports that as not configured.
func newPaymentGateway(cfg config.Payments) interfaces.IPaymentGateway {
	if cfg.Mock {
		log.Printf("[payment][wiring] mock mode enabled, gateway disabled")
		return nil
	}
	gw, err := payments.NewMercadoPagoGateway(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][wiring] Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gw
}
