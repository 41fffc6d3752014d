package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/anchore/fmri/internal"
	"github.com/anchore/fmri/internal/config"
	"github.com/anchore/fmri/internal/format"
	"github.com/anchore/fmri/internal/stringutil"
	"github.com/anchore/fmri/internal/version"
)

var persistentOpts = config.CliOnlyOptions{}

var rootCmd = &cobra.Command{
	Use:   internal.ApplicationName,
	Short: "A tool for parsing, comparing and sorting IPS package identifiers (FMRIs)",
	Long: stringutil.Tprintf(`Work with Image Packaging System package identifiers:
    {{.appName}} parse pkg://solaris/system/library@0.5.11,5.11-0.175.1.0.0.24.2:20120919T185104Z
    {{.appName}} compare pkg:/library/zlib@1.2.11 pkg:/library/zlib@1.2.13
    {{.appName}} sort --file installed.txt --newest-only
    pkg list -Hv | {{.appName}} sort -o table
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Version:       version.FromBuild().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if appConfig != nil && appConfig.CheckForAppUpdate {
			checkForApplicationUpdate(cmd.Context())
		}
	},
}

func init() {
	setGlobalCliOptions()

	if err := bindRootConfigOptions(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

func setGlobalCliOptions() {
	rootCmd.PersistentFlags().StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")

	rootCmd.PersistentFlags().CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	rootCmd.PersistentFlags().BoolP(
		"quiet", "q", false,
		"suppress all logging output",
	)

	rootCmd.PersistentFlags().StringP(
		"output", "o", format.TextFormat.String(),
		fmt.Sprintf("report output formatter, formats=%v", format.AvailableFormats),
	)

	rootCmd.PersistentFlags().StringP(
		"template", "t", "",
		"specify the path to a Go template file (requires 'template' output to be selected)",
	)

	rootCmd.PersistentFlags().StringP(
		"file", "f", "",
		"read identifiers from this file, one per line",
	)

	rootCmd.PersistentFlags().StringP(
		"publisher", "p", "",
		"publisher to assign to identifiers that do not name one",
	)
}

func bindRootConfigOptions(flags *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		"quiet":                "quiet",
		"output":               "output",
		"output-template-file": "template",
		"file":                 "file",
		"publisher":            "publisher",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("unable to bind flag '%s': %w", flag, err)
		}
	}
	return nil
}
