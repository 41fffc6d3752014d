package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/anchore/fmri/internal/log"
)

var parseCmd = &cobra.Command{
	Use:   "parse [FMRI...]",
	Short: "Parse package identifiers and show their structure",
	Long: `Parse each identifier given as an argument (or read from --file or stdin) and
present it in the selected output format. The command fails if any identifier
could not be parsed, after presenting the ones that could.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfiling(func() error {
			return runParse(cmd.OutOrStdout(), args)
		})
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(out io.Writer, args []string) error {
	lines, err := readIdentifiers(args)
	if err != nil {
		return err
	}

	list, parseErr := parseIdentifiers(lines)
	log.Infof("parsed %d identifiers", list.Len())

	if err := present(out, list); err != nil {
		return fmt.Errorf("unable to show identifiers: %w", err)
	}

	if parseErr != nil {
		return fmt.Errorf("unable to parse all identifiers: %w", parseErr)
	}
	return nil
}
