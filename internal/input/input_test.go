package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/fitcheck/internal/types"
)

const jeansYAML = `type: bottom
subType: Straight Jeans
fabricInfo: 99% Cotton, 1% Elastane
sizes:
  30:
    waist: 15.5
    thigh: 11.5
    inseam: 32
  32:
    waist: 16.5
    thigh: 12
    outseam: 42
    frontRise: 10.5
    waistType: fixed
`

const userJSON = `{"height": 70, "inseam": 31, "chest": 41, "waist": 32, "shoulderWidth": 18}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadGarmentYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jeans.yaml", jeansYAML)

	g, doc, err := LoadGarment(path)
	require.NoError(t, err)

	assert.Equal(t, KindGarment, doc.Kind)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, types.GarmentBottom, g.Type)
	assert.Equal(t, "Straight Jeans", g.SubType)
	assert.Equal(t, "99% Cotton, 1% Elastane", g.FabricInfo)
	require.Contains(t, g.Sizes, "30")
	require.Contains(t, g.Sizes, "32")

	s := g.Sizes["32"]
	require.NotNil(t, s.Outseam)
	assert.Equal(t, 42.0, *s.Outseam)
	assert.Nil(t, s.Inseam)
	assert.Equal(t, types.WaistFixed, s.WaistType)

	sizes, ok := doc.Data["sizes"].(map[string]any)
	require.True(t, ok, "numeric size keys must be converted to strings")
	assert.Contains(t, sizes, "30")
}

func TestLoadUserJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "me.json", userJSON)

	u, doc, err := LoadUser(path)
	require.NoError(t, err)

	assert.Equal(t, KindUser, doc.Kind)
	assert.Equal(t, types.UserMeasurements{Height: 70, Inseam: 31, Chest: 41, Waist: 32, ShoulderWidth: 18}, u)
}

func TestReadUnknownFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "me.toml", "height = 70")

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not a mapping", "- 1\n- 2\n"},
		{"malformed", "type: [top\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestGarmentTypeMismatch(t *testing.T) {
	doc, err := Decode([]byte("type: top\nsubType: tee\nsizes:\n  M:\n    chest: big\n"))
	require.NoError(t, err)

	_, err = doc.Garment()
	assert.Error(t, err)
}

func TestDetectKind(t *testing.T) {
	assert.Equal(t, KindGarment, DetectKind(map[string]any{"sizes": map[string]any{}}))
	assert.Equal(t, KindGarment, DetectKind(map[string]any{"type": "top"}))
	assert.Equal(t, KindUser, DetectKind(map[string]any{"chest": 40}))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("a.yaml"))
	assert.True(t, IsSupported("a.YML"))
	assert.True(t, IsSupported("dir/a.json"))
	assert.False(t, IsSupported("a.txt"))
	assert.False(t, IsSupported("yaml"))
}
