package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/dataset"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/domain"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/store"
)

// GenerateFlags holds flags specific to the generate command.
type GenerateFlags struct {
	// Rows is the number of transaction records to generate.
	Rows int
	// Clean disables the injection of known data-quality defects.
	Clean bool
	// Seed fixes the random source for reproducible batches.
	Seed int64
	// ToStore writes the batch into the transactions table of the configured
	// store database instead of a CSV file.
	ToStore bool
}

// newGenerateCmd creates the 'generate' subcommand that writes sample data.
func newGenerateCmd(global *GlobalFlags, flags *GenerateFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [output.csv]",
		Short: "Generate a sample transaction batch",
		Long: `Generate a batch of synthetic transaction records for testing the
validation pipeline, written to a CSV file or, with --to-store, into the
transactions table of the configured store database. By default the batch
includes a sprinkling of data-quality defects (missing fields, bad amounts,
unknown currencies, duplicates, malformed timestamps); pass --clean for a
defect-free batch.

Examples:
  dataquality generate sample.csv
  dataquality generate sample.csv --rows 5000
  dataquality generate sample.csv --clean --seed 42
  dataquality generate --to-store --rows 500`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.ToStore && len(args) > 0 {
				return fmt.Errorf("invalid argument: an output file and --to-store are mutually exclusive")
			}
			if !flags.ToStore && len(args) == 0 {
				return fmt.Errorf("invalid argument: provide an output file or pass --to-store")
			}
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			return runGenerate(cmd.Context(), global, flags, target)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&flags.Rows, "rows", 1000, "number of records to generate")
	cmd.Flags().BoolVar(&flags.Clean, "clean", false, "generate defect-free records")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "random seed (0 uses the current time)")
	cmd.Flags().BoolVar(&flags.ToStore, "to-store", false, "insert the batch into the store database instead of a CSV file")

	return cmd
}

// AddGenerateCommand adds the generate subcommand to the root command.
func AddGenerateCommand(rootCmd *cobra.Command, global *GlobalFlags) {
	flags := &GenerateFlags{}
	rootCmd.AddCommand(newGenerateCmd(global, flags))
}

func runGenerate(ctx context.Context, global *GlobalFlags, flags *GenerateFlags, path string) error {
	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Sample data, not cryptographic

	set := dataset.GenerateSample(flags.Rows, !flags.Clean, time.Now(), rng)

	if flags.ToStore {
		return generateToStore(ctx, global, flags, set)
	}

	if err := dataset.WriteCSV(path, set); err != nil {
		return err
	}

	GetLogger().Info().Str("file", path).Int("records", set.Len()).
		Bool("clean", flags.Clean).Msg("generated sample batch")
	return nil
}

// generateToStore seeds the transactions table of the configured store
// database with the generated batch, creating the database if needed.
func generateToStore(ctx context.Context, global *GlobalFlags, flags *GenerateFlags, set domain.RecordSet) error {
	cfg, err := loadConfig(ctx, global)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Store.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrap(err, "failed to create store directory")
		}
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.ImportTransactions(ctx, set); err != nil {
		return err
	}

	GetLogger().Info().Str("store", cfg.Store.Path).Int("records", set.Len()).
		Bool("clean", flags.Clean).Msg("generated sample batch")
	return nil
}
