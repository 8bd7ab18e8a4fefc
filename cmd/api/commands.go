package main

import (
	"construction_dashboard/internal/adapter/http/routes"
	"construction_dashboard/internal/config"
	"construction_dashboard/internal/infrastructure/seed"
	"construction_dashboard/internal/infrastructure/storage"

	"github.com/spf13/cobra"
)

// newRootCmd builds the "api" command. Running it without a subcommand serves HTTP.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "api",
		Short:         "Construction dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create tables and indexes for the configured storage driver",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the reference catalog, project and agreement",
			RunE:  runSeed,
		},
	)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	return routes.Run(cmd.Context(), config.Load())
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	repos, err := storage.Open(cmd.Context(), config.Load())
	if err != nil {
		return err
	}
	if err := repos.Migrate(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("migration complete")
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	repos, err := storage.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if err := repos.Migrate(cmd.Context()); err != nil {
		return err
	}
	uc := routes.NewUseCases(repos, cfg)
	if err := seed.Run(cmd.Context(), seed.UseCases{
		Catalog:     uc.Catalog,
		Projects:    uc.Projects,
		Estimations: uc.Estimations,
		Agreements:  uc.Agreements,
	}); err != nil {
		return err
	}
	cmd.Println("seed complete")
	return nil
}
