package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/anchore/fmri/internal"
	"github.com/anchore/fmri/internal/format"
	"github.com/anchore/fmri/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show the version (use -o json for a structured form)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printVersion(cmd.OutOrStdout(), appConfig.OutputFormat)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion(out io.Writer, outputFormat format.Format) error {
	versionInfo := version.FromBuild()
	switch outputFormat {
	case format.TextFormat:
		fmt.Fprintln(out, "Application:   ", internal.ApplicationName)
		fmt.Fprintln(out, "Version:       ", versionInfo.Version)
		fmt.Fprintln(out, "BuildDate:     ", versionInfo.BuildDate)
		fmt.Fprintln(out, "GitCommit:     ", versionInfo.GitCommit)
		fmt.Fprintln(out, "GitDescription:", versionInfo.GitDescription)
		fmt.Fprintln(out, "Platform:      ", versionInfo.Platform)
		fmt.Fprintln(out, "GoVersion:     ", versionInfo.GoVersion)
		fmt.Fprintln(out, "Compiler:      ", versionInfo.Compiler)
	case format.JSONFormat:
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		err := enc.Encode(&struct {
			version.Version
			Application string `json:"application"`
		}{
			Version:     versionInfo,
			Application: internal.ApplicationName,
		})
		if err != nil {
			return fmt.Errorf("failed to show version information: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
	return nil
}
