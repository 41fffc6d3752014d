package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/anchore/fmri/internal/log"
)

var sortCmd = &cobra.Command{
	Use:   "sort [FMRI...]",
	Short: "Order package identifiers by version",
	Long: `Read identifiers (from arguments, --file or stdin) and order them from oldest
to newest. Identifiers whose versions cannot be told apart keep their input order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfiling(func() error {
			return runSort(cmd.OutOrStdout(), args)
		})
	},
}

func init() {
	sortCmd.Flags().Bool("newest-only", false, "keep only the newest version of every package")
	sortCmd.Flags().BoolP("reverse", "r", false, "order from newest to oldest")
	sortCmd.Flags().BoolP("unique", "u", false, "drop repeated identifiers")

	if err := bindSortConfigOptions(sortCmd.Flags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(sortCmd)
}

func bindSortConfigOptions(flags *pflag.FlagSet) error {
	for _, flag := range []string{"newest-only", "reverse", "unique"} {
		if err := viper.BindPFlag("sort."+flag, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("unable to bind flag '%s': %w", flag, err)
		}
	}
	return nil
}

func runSort(out io.Writer, args []string) error {
	lines, err := readIdentifiers(args)
	if err != nil {
		return err
	}

	list, parseErr := parseIdentifiers(lines)
	if parseErr != nil {
		log.Warnf("some identifiers were skipped: %+v", parseErr)
	}

	if appConfig.Sort.Unique {
		if list, err = list.Unique(); err != nil {
			return err
		}
	}
	if appConfig.Sort.NewestOnly {
		list = list.Newest()
	}

	list.Sort()
	if appConfig.Sort.Reverse {
		list.Reverse()
	}

	log.Infof("sorted %d identifiers", list.Len())

	if err := present(out, list); err != nil {
		return fmt.Errorf("unable to show identifiers: %w", err)
	}

	if parseErr != nil {
		return fmt.Errorf("unable to parse all identifiers: %w", parseErr)
	}
	return nil
}
