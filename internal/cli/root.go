// Package cli implements contracts_export, which turns saved contracts API
// responses into the same report files the web service produces.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/core/services"
	"github.com/SscSPs/contracts_tracker/internal/middleware"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	input  string
	format string
	outDir string
	date   string
	filter domain.TableFilter
}

// NewRootCommand builds the contracts_export command tree. Written file paths go
// to out; logs go to logger.
func NewRootCommand(out io.Writer, logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "contracts_export",
		Short: "Build contract reports from saved contracts API responses",
		Long: `Build the income, planning, actual and balance reports offline.

Each report subcommand reads the JSON body of the matching contracts API
endpoint (/api/income, /api/planning, /api/actual, /api/balance) and writes
<report>_<YYYY-MM-DD>.<xlsx|csv> into the output directory.`,
		SilenceUsage: true,
	}

	for _, kind := range []domain.ExportKind{domain.ExportIncome, domain.ExportPlanning, domain.ExportActual, domain.ExportBalance} {
		root.AddCommand(newExportCommand(kind, out, logger))
	}
	root.AddCommand(newTokenCommand(out))
	return root
}

func newExportCommand(kind domain.ExportKind, out io.Writer, logger *slog.Logger) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Export the %s report", kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := runExport(cmd, kind, opts, logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "JSON dump of the API response (- for stdin)")
	flags.StringVarP(&opts.format, "format", "f", string(domain.FormatXLSX), "output format: xlsx or csv")
	flags.StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	flags.StringVar(&opts.date, "date", "", "report date as YYYY-MM-DD (default today)")
	if kind.IsTabular() {
		flags.StringVar(&opts.filter.Contract, "contract", "", "keep rows whose contract number contains this text")
		flags.StringVar(&opts.filter.Client, "client", "", "keep rows whose counterparty contains this text")
	}
	if kind == domain.ExportPlanning || kind == domain.ExportActual {
		flags.StringVar(&opts.filter.Name, "name", "", "keep rows whose name contains this text")
		flags.StringVar(&opts.filter.TypeContract, "type", "", "keep rows of this programme type")
	}
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runExport(cmd *cobra.Command, kind domain.ExportKind, opts *exportOptions, logger *slog.Logger) (string, error) {
	format, err := domain.ParseExportFormat(opts.format)
	if err != nil {
		return "", err
	}
	now, err := reportDate(opts.date)
	if err != nil {
		return "", err
	}
	data, err := readInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return "", err
	}

	svc := services.NewExportService(newDumpReader(data), services.WithExportClock(func() time.Time { return now }))
	ctx := middleware.WithLogger(cmd.Context(), logger)
	result, err := svc.Export(ctx, localUser(), domain.ExportRequest{Kind: kind, Format: format, Filter: opts.filter})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(opts.outDir, result.Filename)
	if err := os.WriteFile(path, result.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func reportDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, want YYYY-MM-DD", raw)
	}
	return t, nil
}

func readInput(stdin io.Reader, input string) ([]byte, error) {
	if input == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// localUser is the account the offline export is recorded under in logs.
func localUser() *domain.User {
	name := "local"
	if u, err := user.Current(); err == nil && strings.TrimSpace(u.Username) != "" {
		name = u.Username
	}
	return &domain.User{Username: name}
}
