package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/anchore/fmri/fmri"
	"github.com/anchore/fmri/internal/format"
)

var compareCmd = &cobra.Command{
	Use:   "compare FMRI FMRI",
	Short: "Compare the versions of two package identifiers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfiling(func() error {
			return runCompare(cmd.OutOrStdout(), args[0], args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

type comparison struct {
	Left        fmri.FMRI `json:"left"`
	Right       fmri.FMRI `json:"right"`
	Result      int       `json:"result"`
	SamePackage bool      `json:"samePackage"`
}

func (c comparison) operator() string {
	switch {
	case c.Result < 0:
		return "<"
	case c.Result > 0:
		return ">"
	default:
		return "="
	}
}

func runCompare(out io.Writer, rawLeft, rawRight string) error {
	left, err := fmri.Parse(rawLeft)
	if err != nil {
		return err
	}
	right, err := fmri.Parse(rawRight)
	if err != nil {
		return err
	}

	c := comparison{
		Left:        *left,
		Right:       *right,
		Result:      left.Compare(*right),
		SamePackage: left.PackageNameEqual(*right),
	}

	switch appConfig.OutputFormat {
	case format.JSONFormat:
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		return enc.Encode(&c)
	default:
		if _, err := fmt.Fprintf(out, "%s %s %s\n", c.Left, c.operator(), c.Right); err != nil {
			return err
		}
		if !c.SamePackage {
			_, err := fmt.Fprintf(out, "note: %q and %q are different packages\n", c.Left.PackageName(), c.Right.PackageName())
			return err
		}
		return nil
	}
}
