package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// versionInfo is the machine-readable shape of the version command output.
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// newVersionCmd creates the 'version' subcommand. The output format is read
// from the root's persistent flag at run time.
func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := cmd.Root().PersistentFlags().GetString("output")
			if err != nil {
				output = OutputText
			}
			return printVersion(cmd.OutOrStdout(), output, info)
		},
		SilenceUsage: true,
	}
}

// AddVersionCommand adds the version subcommand to the root command.
func AddVersionCommand(rootCmd *cobra.Command, info BuildInfo) {
	rootCmd.AddCommand(newVersionCmd(info))
}

func printVersion(w io.Writer, format string, info BuildInfo) error {
	v := versionInfo{
		Version:   info.Version,
		Commit:    info.Commit,
		Date:      info.Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if v.Version == "" {
		v.Version = "dev"
	}
	if v.Commit == "" {
		v.Commit = "none"
	}
	if v.Date == "" {
		v.Date = "unknown"
	}

	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "failed to encode version")
	}

	fmt.Fprintf(w, "dataquality %s (commit: %s, built: %s, %s, %s)\n",
		v.Version, v.Commit, v.Date, v.GoVersion, v.Platform)
	return nil
}
