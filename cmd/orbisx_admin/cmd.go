package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/config"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/filestore"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/storage"
	"github.com/spf13/cobra"
)

// app wires the same services as the HTTP server for one command run.
type app struct {
	logger *slog.Logger
	cfg    *config.Config
}

func (a *app) withServices(ctx context.Context, fn func(*portssvc.ServiceContainer) error) error {
	repos, closeDB, err := storage.Open(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer closeDB()

	files := filestore.NewPDFStore(a.cfg.UploadDir, a.cfg.MaxUploadBytes)
	return fn(services.NewServiceContainer(a.cfg, repos, files))
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	a := &app{logger: logger}

	// root command
	rootCmd := &cobra.Command{
		Use:          "orbisx-admin",
		Short:        "Maintenance commands for the OrbisX back office",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.Migrate(a.cfg, a.logger)
		},
	}

	budgetsCmd := &cobra.Command{Use: "budgets", Short: "Budget maintenance"}
	budgetsCmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete every budget and its services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				n, err := svc.Budget.PurgeBudgets(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("%d orçamento(s) removido(s)\n", n)
				return nil
			})
		},
	})

	// stored PDFs are left on disk by both contract commands
	contractsCmd := &cobra.Command{Use: "contracts", Short: "Contract maintenance"}
	contractsCmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete every contract record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				n, err := svc.Contract.PurgeContracts(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("%d contrato(s) removido(s)\n", n)
				return nil
			})
		},
	})
	contractsCmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one contract record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid contract id %q", args[0])
			}
			return a.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				if err := svc.Contract.DeleteContract(cmd.Context(), id); err != nil {
					return err
				}
				cmd.Printf("contrato %d removido\n", id)
				return nil
			})
		},
	})

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(budgetsCmd)
	rootCmd.AddCommand(contractsCmd)

	return rootCmd
}
