package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/config"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/constants"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// InitFlags holds flags specific to the init command.
type InitFlags struct {
	// Global writes the configuration to ~/.dataquality instead of the
	// project directory.
	Global bool
	// Force overwrites existing configuration files.
	Force bool
}

// newInitCmd creates the 'init' subcommand that writes default config files.
func newInitCmd(_ *GlobalFlags, flags *InitFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write default configuration files",
		Long: `Write the default configuration to .dataquality/config.yaml and the
approved currency list to .dataquality/currencies.yaml, ready for editing.

By default files are written to the project directory; pass --global to
write them to ~/.dataquality instead. Existing files are left untouched
unless --force is given.

Examples:
  dataquality init
  dataquality init --global
  dataquality init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.OutOrStdout(), flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&flags.Global, "global", false, "write to ~/.dataquality instead of the project")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "overwrite existing configuration files")

	return cmd
}

// AddInitCommand adds the init subcommand to the root command.
func AddInitCommand(rootCmd *cobra.Command, global *GlobalFlags) {
	flags := &InitFlags{}
	rootCmd.AddCommand(newInitCmd(global, flags))
}

// currenciesFile is the on-disk shape of currencies.yaml. It nests under the
// same key as the main config so the two files merge into one tree.
type currenciesFile struct {
	Currencies config.CurrenciesConfig `yaml:"currencies"`
}

func runInit(w io.Writer, flags *InitFlags) error {
	dir := config.ProjectConfigDir()
	if flags.Global {
		globalDir, err := config.GlobalConfigDir()
		if err != nil {
			return err
		}
		dir = globalDir
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	cfg := config.DefaultConfig()

	// The approved-currency list lives in its own file; blank it in the main
	// config so there is a single source of truth.
	currencies := currenciesFile{Currencies: cfg.Currencies}
	cfg.Currencies.Approved = nil

	configPath := filepath.Join(dir, constants.ConfigFileName)
	if err := writeYAMLFile(configPath, cfg, flags.Force); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", configPath)

	currenciesPath := filepath.Join(dir, constants.CurrenciesFileName)
	if err := writeYAMLFile(currenciesPath, currencies, flags.Force); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", currenciesPath)

	return nil
}

// writeYAMLFile marshals v to path, refusing to overwrite unless force is set.
func writeYAMLFile(path string, v any, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Wrapf(errors.ErrConfigInvalid, "%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", filepath.Base(path))
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o600), "failed to write %s", path)
}
