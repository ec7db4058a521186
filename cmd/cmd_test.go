package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/fitcheck/internal/output"
	"github.com/dotcommander/fitcheck/internal/scorecard"
)

const userYAML = `height: 70
inseam: 31
chest: 38
waist: 32
thigh: 22
shoulderWidth: 18
sleeveLength: 8
`

const teeYAML = `type: top
subType: t-shirt
fabricInfo: 100% cotton jersey
sizes:
  L:
    chest: 22
    shoulder: 19
    sleeveLength: 8.5
    frontLength: 29
  S:
    chest: 20
    shoulder: 17
    sleeveLength: 7.5
    frontLength: 27
  M:
    chest: 21
    shoulder: 18
    sleeveLength: 8
    frontLength: 28
`

const jeansJSON = `{
  "type": "bottom",
  "subType": "slim jeans",
  "sizes": {
    "32": {"waist": 16, "frontRise": 10, "thigh": 11.5, "inseam": 32, "legOpening": 7}
  }
}`

// setupTestDir creates a temporary directory and makes it the working
// directory for the rest of the test
func setupTestDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	return tmpDir
}

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores every flag, and the variable behind it, to its default
// once the test ends.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		sets := []*pflag.FlagSet{rootCmd.PersistentFlags()}
		for _, c := range rootCmd.Commands() {
			sets = append(sets, c.Flags())
		}
		for _, fs := range sets {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	})
}

func setFlag(t *testing.T, name, value string) {
	t.Helper()
	require.NoError(t, rootCmd.PersistentFlags().Set(name, value))
}

func TestCommandsConfigured(t *testing.T) {
	tests := []struct {
		cmd *cobra.Command
		use string
	}{
		{scoreCmd, "score"},
		{compareCmd, "compare"},
		{explainCmd, "explain [dimension...]"},
		{validateCmd, "validate FILE..."},
		{serveCmd, "serve"},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short)
			assert.NotEmpty(t, tt.cmd.Long)
			assert.NotNil(t, tt.cmd.Run)
			assert.Equal(t, rootCmd, tt.cmd.Parent())
		})
	}
}

func TestRunScoreRequiredFlags(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		garment string
		glob    string
		size    string
		wantErr string
	}{
		{"no user", "", "tee.yaml", "", "M", "--user is required"},
		{"no size", "me.yaml", "tee.yaml", "", "", "--size is required"},
		{"no garment", "me.yaml", "", "", "M", "one of --garment or --garments is required"},
		{"both garment flags", "me.yaml", "tee.yaml", "*.yaml", "M", "mutually exclusive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			userFile, garmentFile, garmentGlob, sizeLabel = tt.user, tt.garment, tt.glob, tt.size
			err := runScore(&bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunScoreJSON(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", userYAML)
	garmentFile = writeFile(t, dir, "tee.yaml", teeYAML)
	sizeLabel = "M"
	setFlag(t, "format", "json")

	var buf bytes.Buffer
	require.NoError(t, runScore(&buf))

	var report output.JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report.Garments, 1)
	require.Len(t, report.Garments[0].Scorecards, 1)
	sc := report.Garments[0].Scorecards[0]
	assert.Equal(t, "M", sc.Size)
	assert.Equal(t, "100% cotton jersey", sc.FabricInfo)
	require.Len(t, sc.Measurements, 4)
	assert.Equal(t, scorecard.NameChest, sc.Measurements[0].MeasurementName)
}

func TestRunScoreConsole(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", userYAML)
	garmentFile = writeFile(t, dir, "jeans.json", jeansJSON)
	sizeLabel = "32"

	var buf bytes.Buffer
	require.NoError(t, runScore(&buf))
	out := buf.String()
	assert.Contains(t, out, "Size 32  bottom (slim jeans)")
	assert.Contains(t, out, scorecard.NameLegOpening)
}

func TestRunScoreUnknownSize(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", userYAML)
	garmentFile = writeFile(t, dir, "tee.yaml", teeYAML)
	sizeLabel = "XL"

	err := runScore(&bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, scorecard.ErrUnknownSize))
	assert.Contains(t, err.Error(), "S, M, L")
}

func TestRunScoreInvalidUser(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", "chest: -5\n")
	garmentFile = writeFile(t, dir, "tee.yaml", teeYAML)
	sizeLabel = "M"

	err := runScore(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user file")
	assert.Contains(t, err.Error(), userFile+": chest")
}

func TestRunScoreRejectsNonMeasurementFile(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", userYAML)
	garmentFile = writeFile(t, dir, "tee.txt", teeYAML)
	sizeLabel = "M"

	err := runScore(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a YAML or JSON measurement file")
}

func TestRunScoreGlob(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", userYAML)
	writeFile(t, dir, "garments/tops/tee.yaml", teeYAML)
	writeFile(t, dir, "garments/bottoms/jeans.json", jeansJSON)
	writeFile(t, dir, "garments/notes.txt", "not a garment")
	garmentGlob = "garments/**/*"
	sizeLabel = "M"
	setFlag(t, "format", "json")

	var buf bytes.Buffer
	require.NoError(t, runScore(&buf))

	var report output.JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report.Garments, 1, "jeans do not publish M and are skipped")
	assert.True(t, strings.HasSuffix(report.Garments[0].Source, filepath.Join("tops", "tee.yaml")))
}

func TestRunScoreGlobNoMatch(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", userYAML)
	garmentGlob = "garments/*.yaml"
	sizeLabel = "M"

	err := runScore(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no garment files match")
}

func TestRunScoreOutputFile(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", userYAML)
	garmentFile = writeFile(t, dir, "tee.yaml", teeYAML)
	sizeLabel = "S"
	setFlag(t, "format", "markdown")
	setFlag(t, "output", filepath.Join(dir, "report.md"))

	var buf bytes.Buffer
	require.NoError(t, runScore(&buf))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(filepath.Join(dir, "report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "### Size S: top (t-shirt)")
}

func TestRunCompare(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", userYAML)
	garmentFile = writeFile(t, dir, "tee.yaml", teeYAML)
	setFlag(t, "format", "compact")

	var buf bytes.Buffer
	require.NoError(t, runCompare(&buf))

	out := buf.String()
	s, m, l := strings.Index(out, " S "), strings.Index(out, " M "), strings.Index(out, " L ")
	require.True(t, s >= 0 && m >= 0 && l >= 0, out)
	assert.Less(t, s, m)
	assert.Less(t, m, l)
}

func TestRunCompareRequiresFiles(t *testing.T) {
	resetFlags(t)
	err := runCompare(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user and --garment are required")
}

func TestRunCompareFlatOverride(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	userFile = writeFile(t, dir, "me.yaml", userYAML)
	garmentFile = writeFile(t, dir, "tee.yaml", teeYAML)
	setFlag(t, "format", "json")
	setFlag(t, "measurement-mode", "circumference")

	var buf bytes.Buffer
	require.NoError(t, runCompare(&buf))

	var report output.JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	// 21 read as a circumference is far smaller than a 38 chest.
	m := report.Garments[0].Scorecards[1]
	assert.Equal(t, "M", m.Size)
	assert.Equal(t, "Restrictive / Non-Viable", m.Measurements[0].FitCategory.Category)
}

func TestRunExplain(t *testing.T) {
	setupTestDir(t)
	resetFlags(t)

	var buf bytes.Buffer
	require.NoError(t, runExplain(&buf, []string{"inseam"}))
	assert.Contains(t, buf.String(), "inseam")
	assert.NotContains(t, buf.String(), "legOpening")

	buf.Reset()
	setFlag(t, "format", "json")
	require.NoError(t, runExplain(&buf, nil))
	var items []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	assert.Len(t, items, 10)

	err := runExplain(&buf, []string{"neck"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown measurement "neck"`)
}

func TestRunValidate(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	good := writeFile(t, dir, "garments/tee.yaml", teeYAML)
	user := writeFile(t, dir, "me.yaml", userYAML)

	var buf bytes.Buffer
	require.NoError(t, runValidate(&buf, []string{good, user}))
	assert.Contains(t, buf.String(), "✓ All passed")

	bad := writeFile(t, dir, "bad.garment.yaml", "type: dress\nsubType: midi\nsizes: {}\n")
	buf.Reset()
	err := runValidate(&buf, []string{good, bad, filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 files failed validation")
	assert.Contains(t, buf.String(), "bad.garment.yaml (garment)")
	assert.Contains(t, buf.String(), "file not found")
	assert.Contains(t, buf.String(), "1/3 passed")
}

func TestRunValidateKind(t *testing.T) {
	dir := setupTestDir(t)
	resetFlags(t)
	tee := writeFile(t, dir, "tee.yaml", teeYAML)

	validateKind = "shoe"
	err := runValidate(&bytes.Buffer{}, []string{tee})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid kind")

	validateKind = "garment"
	assert.NoError(t, runValidate(&bytes.Buffer{}, []string{tee}))
}

func TestExecuteExitsOnError(t *testing.T) {
	setupTestDir(t)
	resetFlags(t)

	savedExitFunc := exitFunc
	exitCode := -1
	exitFunc = func(code int) { exitCode = code }
	defer func() { exitFunc = savedExitFunc }()

	rootCmd.SetArgs([]string{"explain", "neck"})
	rootCmd.SetOut(&bytes.Buffer{})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	}()

	Execute()
	assert.Equal(t, 1, exitCode)
}
