// Package storage wires the repository set selected by STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"log"

	"construction_dashboard/internal/adapter/persistence/gormrepo"
	"construction_dashboard/internal/adapter/persistence/memory"
	"construction_dashboard/internal/adapter/persistence/repository"
	"construction_dashboard/internal/config"
	"construction_dashboard/internal/infrastructure/database"
	"construction_dashboard/internal/usecase/interfaces"
)

type Repositories struct {
	LineItems   interfaces.ILineItemRepository
	Templates   interfaces.IEstimationTemplateRepository
	Estimations interfaces.IProjectEstimationRepository
	Projects    interfaces.IProjectRepository
	Agreements  interfaces.IAgreementRepository
	Payments    interfaces.IPaymentRepository

	// Migrate creates the tables the driver needs. It is safe to run repeatedly.
	Migrate func(ctx context.Context) error
}

func Open(ctx context.Context, cfg config.Config) (Repositories, error) {
	log.Printf("[storage] opening driver=%s", cfg.StorageDriver)
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return Memory(), nil
	case config.StorageDynamoDB:
		return openDynamo(ctx, cfg.DynamoDB)
	case config.StoragePostgres, config.StorageSQLite:
		db, err := database.OpenGorm(cfg)
		if err != nil {
			return Repositories{}, err
		}
		return Repositories{
			LineItems:   gormrepo.NewLineItemRepository(db),
			Templates:   gormrepo.NewEstimationTemplateRepository(db),
			Estimations: gormrepo.NewProjectEstimationRepository(db),
			Projects:    gormrepo.NewProjectRepository(db),
			Agreements:  gormrepo.NewAgreementRepository(db),
			Payments:    gormrepo.NewPaymentRepository(db),
			Migrate: func(ctx context.Context) error {
				return gormrepo.Migrate(db.WithContext(ctx))
			},
		}, nil
	}
	return Repositories{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
}

// Memory returns process-local repositories; data is lost on exit.
func Memory() Repositories {
	return Repositories{
		LineItems:   memory.NewLineItemRepository(),
		Templates:   memory.NewEstimationTemplateRepository(),
		Estimations: memory.NewProjectEstimationRepository(),
		Projects:    memory.NewProjectRepository(),
		Agreements:  memory.NewAgreementRepository(),
		Payments:    memory.NewPaymentRepository(),
		Migrate:     func(context.Context) error { return nil },
	}
}

func openDynamo(ctx context.Context, cfg config.DynamoDB) (Repositories, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Repositories{}, err
	}
	return Repositories{
		LineItems:   repository.NewLineItemDynamoRepository(ddb, cfg.LineItemsTable),
		Templates:   repository.NewEstimationTemplateDynamoRepository(ddb, cfg.EstimationTemplatesTable),
		Estimations: repository.NewProjectEstimationDynamoRepository(ddb, cfg.ProjectEstimationsTable, cfg.SequencesTable),
		Projects:    repository.NewProjectDynamoRepository(ddb, cfg.ProjectsTable),
		Agreements:  repository.NewAgreementDynamoRepository(ddb, cfg.AgreementsTable),
		Payments:    repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable),
		Migrate: func(ctx context.Context) error {
			return database.EnsureDynamoTables(ctx, ddb, cfg)
		},
	}, nil
}
