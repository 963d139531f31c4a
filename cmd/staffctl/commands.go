package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/staff-registry/config"
	"github.com/warp/staff-registry/export"
	"github.com/warp/staff-registry/factory"
	"github.com/warp/staff-registry/logging"
	"github.com/warp/staff-registry/staff"
)

var errNoRoster = errors.New("no roster given (use --roster or --demo)")

// rosterParams are shared by every subcommand.
type rosterParams struct {
	path     string
	demo     bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	var params rosterParams

	rootCmd := &cobra.Command{
		Use:           "staffctl",
		Short:         "Inspect and export a staff roster",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&params.path, "roster", "", "YAML roster to load")
	rootCmd.PersistentFlags().BoolVar(&params.demo, "demo", false, "load the built-in demo roster")
	rootCmd.PersistentFlags().StringVar(&params.logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(
		newSummaryCmd(&params),
		newExportCmd(&params),
		newSearchCmd(&params),
	)
	return rootCmd
}

func newSummaryCmd(params *rosterParams) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print every record that is not terminated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := params.load()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), export.Summary(reg.Summary()))
			return nil
		},
	}
}

func newExportCmd(params *rosterParams) *cobra.Command {
	var out string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write every record, terminated included, to a text file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, logger, err := params.load()
			if err != nil {
				return err
			}
			if out == "-" {
				return export.WriteTo(cmd.OutOrStdout(), reg.ExportAll())
			}
			path, err := export.NewWriter(logger).WriteFile(out, reg.ExportAll())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", reg.Len(), path)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&out, "out", defaultExportPath(), `export file ("-" for stdout)`)
	return exportCmd
}

func newSearchCmd(params *rosterParams) *cobra.Command {
	var vacancy, name string
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Print the first record matching a vacancy number or name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := params.load()
			if err != nil {
				return err
			}
			s, ok := reg.Search(vacancy, name)
			if !ok {
				return staff.ErrNotFound
			}
			fmt.Fprint(cmd.OutOrStdout(), s.Render())
			return nil
		},
	}
	searchCmd.Flags().StringVar(&vacancy, "vacancy", "", "exact vacancy number")
	searchCmd.Flags().StringVar(&name, "name", "", "case-insensitive part of the staff name")
	return searchCmd
}

// load builds the registry from --demo and --roster. Rejected roster
// entries are logged and skipped.
func (p *rosterParams) load() (*staff.Registry, *zap.Logger, error) {
	if p.path == "" && !p.demo {
		return nil, nil, errNoRoster
	}
	logger, err := logging.New(p.logLevel, "console")
	if err != nil {
		return nil, nil, err
	}

	reg := staff.NewRegistry()
	f := factory.NewRosterFactory(logger)
	if p.demo {
		if _, err := f.LoadDemo(reg); err != nil {
			return nil, nil, err
		}
	}
	if p.path != "" {
		if _, err := f.LoadFile(reg, p.path); err != nil {
			return nil, nil, err
		}
	}
	return reg, logger, nil
}

// defaultExportPath honours STAFF_EXPORT_PATH and .env like the server.
func defaultExportPath() string {
	cfg, err := config.Load()
	if err != nil {
		return export.DefaultFile
	}
	return cfg.Export.Path
}
