package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/fitcheck/internal/category"
	"github.com/dotcommander/fitcheck/internal/garment"
	"github.com/dotcommander/fitcheck/internal/output"
)

var explainCmd = &cobra.Command{
	Use:   "explain [dimension...]",
	Short: "Explain what each measurement means",
	Long: `The explain command prints what a measurement captures, how it shows up
when the garment is worn, and the context needed to read it.

Dimensions: chest, frontLength, shoulder, sleeve, waistFixed, waistElastic,
thigh, inseam, rise, legOpening. With no arguments every dimension is shown.`,
	ValidArgs: category.Dimensions,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExplain(cmd.OutOrStdout(), args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(stdout io.Writer, args []string) error {
	dims := args
	if len(dims) == 0 {
		dims = category.Dimensions
	}

	items := make([]output.Explained, 0, len(dims))
	for _, dim := range dims {
		e, ok := garment.Explain(dim)
		if !ok {
			return fmt.Errorf("unknown measurement %q (known: %s)", dim, strings.Join(category.Dimensions, ", "))
		}
		items = append(items, output.Explained{Dimension: dim, Explanation: e})
	}

	rt, err := setup(stdout)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()
	return rt.out.FormatExplanations(items)
}
