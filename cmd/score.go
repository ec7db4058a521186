package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/fitcheck/internal/discovery"
	"github.com/dotcommander/fitcheck/internal/output"
	"github.com/dotcommander/fitcheck/internal/scorecard"
	"github.com/dotcommander/fitcheck/internal/types"
)

var (
	userFile       string
	garmentFile    string
	garmentGlob    string
	sizeLabel      string
	followSymlinks bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one size of a garment against your measurements",
	Long: `The score command evaluates a single size of one or more garments.

Use --garment for one size chart, or --garments with a glob to score every
matching file, for example:

  fitcheck score --user me.yaml --garments 'garments/**/*.yaml' --size M

With --garments, files that do not publish the requested size are skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVarP(&userFile, "user", "u", "", "Body measurements file (required)")
	scoreCmd.Flags().StringVarP(&garmentFile, "garment", "g", "", "Garment size chart file")
	scoreCmd.Flags().StringVar(&garmentGlob, "garments", "", "Glob of garment size chart files")
	scoreCmd.Flags().StringVarP(&sizeLabel, "size", "s", "", "Size label to evaluate (required)")
	scoreCmd.Flags().BoolVar(&followSymlinks, "follow-symlinks", false, "Follow symlinks when expanding --garments")
}

func runScore(stdout io.Writer) error {
	switch {
	case userFile == "":
		return errors.New("--user is required")
	case sizeLabel == "":
		return errors.New("--size is required")
	case garmentFile == "" && garmentGlob == "":
		return errors.New("one of --garment or --garments is required")
	case garmentFile != "" && garmentGlob != "":
		return errors.New("--garment and --garments are mutually exclusive")
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

	paths := []string{garmentFile}
	if garmentGlob != "" {
		files, err := discovery.Glob(garmentGlob, followSymlinks)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no garment files match %s", garmentGlob)
		}
		paths = paths[:0]
		for _, f := range files {
			paths = append(paths, f.Path)
		}
		rt.logger.Debug("garment files discovered", map[string]interface{}{"pattern": garmentGlob, "count": len(files)})
	}

	ev := rt.evaluator()
	var reports []output.Report
	for _, path := range paths {
		g, err := loadGarment(v, path)
		if err != nil {
			return err
		}
		if err := scorecard.CheckSize(g, sizeLabel); err != nil {
			if garmentGlob == "" {
				return fmt.Errorf("%s: %w", path, err)
			}
			rt.logger.Warn("skipping garment", map[string]interface{}{"file": path, "reason": err.Error()})
			continue
		}
		reports = append(reports, output.Report{
			Source:  path,
			Results: []types.ScorecardResult{ev.Evaluate(g, sizeLabel, user)},
		})
	}

	if len(reports) == 0 {
		return fmt.Errorf("no garment matching %s publishes size %q", garmentGlob, sizeLabel)
	}
	return rt.out.Format(reports)
}
