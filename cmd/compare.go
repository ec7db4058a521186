package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/fitcheck/internal/output"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Score every published size of a garment",
	Long: `The compare command evaluates every size in a garment's size chart and
lists the scorecards side by side in natural size order (XS, S, M ... then
numeric sizes). It does not pick a size for you.

The compact format gives one line per size:

  fitcheck compare --user me.yaml --garment jeans.yaml --format compact`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCompare(cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVarP(&userFile, "user", "u", "", "Body measurements file (required)")
	compareCmd.Flags().StringVarP(&garmentFile, "garment", "g", "", "Garment size chart file (required)")
}

func runCompare(stdout io.Writer) error {
	if userFile == "" || garmentFile == "" {
		return errors.New("--user and --garment are required")
	}

	rt, err := setup(stdout)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	v, err := newValidator()
	if err != nil {
		return err
	}
	user, err := loadUser(v, userFile)
	if err != nil {
		return err
	}
	g, err := loadGarment(v, garmentFile)
	if err != nil {
		return err
	}

	results := rt.evaluator().EvaluateAll(g, user)
	rt.logger.Debug("sizes evaluated", map[string]interface{}{"garment": garmentFile, "sizes": len(results)})
	return rt.out.Format([]output.Report{{Source: garmentFile, Results: results}})
}
