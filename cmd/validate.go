package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/fitcheck/internal/cue"
	"github.com/dotcommander/fitcheck/internal/discovery"
	"github.com/dotcommander/fitcheck/internal/input"
)

var validateKind string

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check garment and user files against their schemas",
	Long: `The validate command checks measurement files before scoring.

A file's kind comes from --kind, then from its path (*.garment.yaml,
*.user.yaml, garments/, users/), then from its content: anything with a
sizes table or a type field is a garment.

Checks include positive garment measurements, body measurements between 0
and 120 inches, and the known values of type, waistType, hemType and
sleeveMeasurementType.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd.OutOrStdout(), args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateKind, "kind", "", "Treat every file as this kind (garment|user)")
}

// fileResult is the validation outcome of one file.
type fileResult struct {
	path  string
	kind  input.Kind
	errs  []cue.ValidationError
	ioErr error
}

func (r fileResult) ok() bool { return r.ioErr == nil && len(r.errs) == 0 }

func runValidate(stdout io.Writer, paths []string) error {
	switch input.Kind(validateKind) {
	case "", input.KindGarment, input.KindUser:
	default:
		return fmt.Errorf("invalid kind: %s. Must be 'garment' or 'user'", validateKind)
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

	results := make([]fileResult, 0, len(paths))
	failed := 0
	for _, path := range paths {
		res := validateFile(v, path)
		if !res.ok() {
			failed++
		}
		results = append(results, res)
	}

	if !rt.cfg.Quiet {
		printValidation(stdout, results, rt.cfg.Verbose)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(paths))
	}
	return nil
}

func validateFile(v *cue.Validator, path string) fileResult {
	res := fileResult{path: path}

	mf, err := discovery.CheckMeasurementFile(path)
	if err != nil {
		res.ioErr = err
		return res
	}
	doc, err := input.Read(mf.Path)
	if err != nil {
		res.ioErr = err
		return res
	}

	switch {
	case validateKind != "":
		res.kind = input.Kind(validateKind)
	case mf.Kind != "":
		res.kind = mf.Kind
	default:
		res.kind = doc.Kind
	}

	res.errs, res.ioErr = v.Validate(string(res.kind), doc.Data)
	return res
}

func printValidation(w io.Writer, results []fileResult, verbose bool) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	for _, r := range results {
		switch {
		case r.ioErr != nil:
			fmt.Fprintf(w, "%s %s\n", red.Render("✗"), r.path)
			fmt.Fprintf(w, "    ✘ %s\n", r.ioErr)
		case len(r.errs) > 0:
			fmt.Fprintf(w, "%s %s (%s)\n", red.Render("✗"), r.path, r.kind)
			for _, e := range r.errs {
				fmt.Fprintf(w, "    ✘ %s\n", e.String())
			}
		case verbose:
			fmt.Fprintf(w, "%s %s (%s)\n", green.Render("✓"), r.path, r.kind)
		}
	}

	passed := 0
	for _, r := range results {
		if r.ok() {
			passed++
		}
	}
	if passed == len(results) {
		fmt.Fprintln(w, green.Render("✓ All passed"))
		return
	}
	fmt.Fprintf(w, "\n%d/%d passed\n", passed, len(results))
}
