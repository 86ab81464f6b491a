package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/config"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/dataset"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/report"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/store"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/validation"
)

// RunFlags holds flags specific to the run command.
type RunFlags struct {
	// ReportDir overrides the configured report output directory.
	ReportDir string
	// FailedDir is where per-check failed-record CSVs are written.
	FailedDir string
	// NoReports disables Excel and HTML report generation for this run.
	NoReports bool
	// Strict makes the command fail (non-zero exit) when the batch is
	// classified CRITICAL.
	Strict bool
	// FromStore sources the batch from the transactions table of the
	// configured store database instead of a CSV file.
	FromStore bool
	// Limit caps the number of records loaded with --from-store (0 = all).
	Limit int
}

// newRunCmd creates the 'run' subcommand that validates a CSV batch.
func newRunCmd(global *GlobalFlags, flags *RunFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [transactions.csv]",
		Short: "Validate a batch of transaction records",
		Long: `Run the data-quality pipeline over a batch of transaction records, read
from a CSV file or, with --from-store, from the transactions table of the
configured store database.

The pipeline applies six checks in a fixed order; a record that fails one
check is excluded from all later checks. Failed records are exported to
per-check CSV files, reports are generated per configuration, and the
summary is printed in the selected output format.

Examples:
  dataquality run transactions.csv
  dataquality run transactions.csv --output json
  dataquality run transactions.csv --strict --no-reports
  dataquality run --from-store --limit 1000`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.FromStore && len(args) > 0 {
				return fmt.Errorf("invalid argument: a CSV file and --from-store are mutually exclusive")
			}
			if !flags.FromStore && len(args) == 0 {
				return fmt.Errorf("invalid argument: provide a CSV file or pass --from-store")
			}
			source := ""
			if len(args) > 0 {
				source = args[0]
			}
			return runValidation(cmd.Context(), cmd.OutOrStdout(), global, flags, source)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flags.ReportDir, "report-dir", "", "directory for generated reports (default from config)")
	cmd.Flags().StringVar(&flags.FailedDir, "failed-dir", constants.FailedRecordsDir, "directory for failed-record CSV exports")
	cmd.Flags().BoolVar(&flags.NoReports, "no-reports", false, "skip Excel and HTML report generation")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "exit non-zero when batch quality is CRITICAL")
	cmd.Flags().BoolVar(&flags.FromStore, "from-store", false, "load transactions from the store database instead of a CSV file")
	cmd.Flags().IntVar(&flags.Limit, "limit", 0, "maximum records to load with --from-store (0 = all)")

	return cmd
}

// AddRunCommand adds the run subcommand to the root command.
func AddRunCommand(rootCmd *cobra.Command, global *GlobalFlags) {
	flags := &RunFlags{}
	rootCmd.AddCommand(newRunCmd(global, flags))
}

// runValidation executes the full load-validate-export-report-persist flow.
// source is the CSV path, or empty when --from-store sources the batch from
// the configured database.
func runValidation(ctx context.Context, w io.Writer, global *GlobalFlags, flags *RunFlags, source string) error {
	logger := GetLogger()
	ctx = logger.WithContext(ctx)

	cfg, err := loadConfig(ctx, global)
	if err != nil {
		return err
	}

	var records domain.RecordSet
	if flags.FromStore {
		records, err = loadStoredTransactions(ctx, cfg.Store.Path, flags.Limit)
		if err != nil {
			return err
		}
		logger.Info().Str("store", cfg.Store.Path).Int("records", records.Len()).Msg("loaded transaction batch")
	} else {
		records, err = dataset.LoadCSV(source)
		if err != nil {
			return err
		}
		logger.Info().Str("file", source).Int("records", records.Len()).Msg("loaded transaction batch")
	}

	pipeline, err := validation.New(cfg)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, records)
	if err != nil {
		return err
	}

	if err := exportFailedRecords(flags.FailedDir, records, result); err != nil {
		return err
	}

	if !flags.NoReports {
		if err := writeReports(cfg, flags, result); err != nil {
			return err
		}
	}

	if cfg.Store.Enabled {
		if err := persistResult(ctx, cfg.Store.Path, result); err != nil {
			return err
		}
	}

	if err := renderResult(w, global.Output, result); err != nil {
		return err
	}

	if flags.Strict && result.Summary.QualityStatus == domain.StatusCritical {
		return errors.Wrapf(errors.ErrQualityCritical, "pass rate %.2f%%", result.Summary.OverallPassRate*100)
	}
	return nil
}

// loadStoredTransactions reads the validation input from the transactions
// table of the store database. Unlike persistence, which silently creates
// its database on first save, a missing source database is an error.
func loadStoredTransactions(ctx context.Context, path string, limit int) (domain.RecordSet, error) {
	if _, err := os.Stat(path); err != nil {
		return domain.RecordSet{}, errors.Wrapf(errors.ErrStoreUnavailable, "stat %s: %v", path, err)
	}

	st, err := store.Open(path)
	if err != nil {
		return domain.RecordSet{}, err
	}
	defer func() { _ = st.Close() }()

	return st.LoadTransactions(ctx, limit)
}

// loadConfig resolves configuration from the --config flag or the layered
// lookup chain.
func loadConfig(ctx context.Context, global *GlobalFlags) (*config.Config, error) {
	if global.ConfigFile != "" {
		return config.LoadFromFile(global.ConfigFile)
	}
	return config.Load(ctx)
}

// exportFailedRecords writes one CSV per check that produced failures.
// File names carry the run ID so successive runs do not clobber each other.
func exportFailedRecords(dir string, input domain.RecordSet, result *validation.Result) error {
	logger := GetLogger()

	for _, check := range domain.CheckOrder {
		failed, ok := result.FailedRecords[check]
		if !ok || len(failed) == 0 {
			continue
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrap(err, "failed to create failed-records directory")
		}
		path := filepath.Join(dir, fmt.Sprintf("failed_%s_%s.csv", check, result.RunID))
		if err := dataset.WriteFailedCSV(path, input, failed); err != nil {
			return err
		}
		logger.Info().Str("check", check).Int("count", len(failed)).Str("file", path).
			Msg("exported failed records")
	}
	return nil
}

// writeReports generates the Excel and HTML reports enabled in config.
func writeReports(cfg *config.Config, flags *RunFlags, result *validation.Result) error {
	if !cfg.Report.Excel && !cfg.Report.HTML {
		return nil
	}

	dir := cfg.Report.OutputDir
	if flags.ReportDir != "" {
		dir = flags.ReportDir
	}
	if dir == "" {
		dir = constants.ReportsDir
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrap(err, "failed to create reports directory")
	}

	logger := GetLogger()
	if cfg.Report.Excel {
		path := filepath.Join(dir, fmt.Sprintf("quality_report_%s.xlsx", result.RunID))
		if err := report.WriteExcel(path, result); err != nil {
			return err
		}
		logger.Info().Str("file", path).Msg("wrote Excel report")
	}
	if cfg.Report.HTML {
		path := filepath.Join(dir, fmt.Sprintf("quality_report_%s.html", result.RunID))
		if err := report.WriteHTML(path, result); err != nil {
			return err
		}
		logger.Info().Str("file", path).Msg("wrote HTML report")
	}
	return nil
}

// persistResult saves failed records and the quality summary to the results
// database.
func persistResult(ctx context.Context, path string, result *validation.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrap(err, "failed to create store directory")
		}
	}

	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	for check, failed := range result.FailedRecords {
		if err := st.SaveFailedRecords(ctx, result.RunID, check, failed); err != nil {
			return err
		}
	}
	return st.SaveQualityReport(ctx, result.RunID, result.Summary, result.CheckResults)
}
