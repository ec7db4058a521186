package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/fitcheck/internal/input"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func relPaths(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		path   string
		want   input.Kind
		wantOK bool
	}{
		{"hoodie.garment.yaml", input.KindGarment, true},
		{"shop/hoodie.garment.json", input.KindGarment, true},
		{"me.user.yml", input.KindUser, true},
		{"garments/tops/hoodie.yaml", input.KindGarment, true},
		{"/data/garments/jeans.json", input.KindGarment, true},
		{"users/alex.yaml", input.KindUser, true},
		{"Garments/Tee.YAML", input.KindGarment, true},
		{"users/alex.garment.yaml", input.KindGarment, true},
		{"measurements.yaml", "", false},
		{"garments/readme.md", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := DetectKind(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"garments/tops/hoodie.yaml":  "type: top",
		"garments/tops/tee.json":     "{}",
		"garments/bottoms/jeans.yml": "type: bottom",
		"garments/bottoms/notes.txt": "ignore me",
		"garments/bottoms/README.md": "ignore me",
		"users/me.yaml":              "chest: 40",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "garments", "empty.yaml"), 0755))

	files, err := NewFileDiscovery(root, false).Find("garments/**/*")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"garments/bottoms/jeans.yml",
		"garments/tops/hoodie.yaml",
		"garments/tops/tee.json",
	}, relPaths(files))
	for _, f := range files {
		assert.Contains(t, f.Path, root)
		assert.Positive(t, f.Size)
	}
}

func TestFindInvalidPattern(t *testing.T) {
	_, err := NewFileDiscovery(t.TempDir(), false).Find("garments/[")
	assert.Error(t, err)
}

func TestGlob(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"shop/a.yaml": "type: top",
		"shop/b.yaml": "type: top",
		"shop/c.json": "{}",
	})

	files, err := Glob(filepath.Join(root, "shop", "*.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, relPaths(files))
	assert.Equal(t, filepath.Join(root, "shop", "a.yaml"), files[0].Path)
}

func TestFindSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, root, map[string]string{"garments/real.yaml": "type: top"})
	writeTree(t, outside, map[string]string{"escape.yaml": "type: top"})

	inside := filepath.Join(root, "garments", "link.yaml")
	escape := filepath.Join(root, "garments", "escape.yaml")
	if err := os.Symlink(filepath.Join(root, "garments", "real.yaml"), inside); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(outside, "escape.yaml"), escape))

	files, err := NewFileDiscovery(root, false).Find("garments/*.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"garments/real.yaml"}, relPaths(files))

	files, err = NewFileDiscovery(root, true).Find("garments/*.yaml")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"garments/real.yaml", "garments/link.yaml"}, relPaths(files))
}

func TestCheckMeasurementFile(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"garments/tee.yaml": "type: top",
		"me.user.json":      `{"chest": 40}`,
		"plain.yaml":        "chest: 40",
		"empty.yaml":        "",
		"notes.txt":         "chest: 40",
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin.yaml"), []byte{'a', 0, 'b'}, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.yaml"), 0755))

	okTests := []struct {
		path     string
		wantKind input.Kind
	}{
		{"garments/tee.yaml", input.KindGarment},
		{"me.user.json", input.KindUser},
		{"plain.yaml", ""},
	}
	for _, tt := range okTests {
		t.Run(tt.path, func(t *testing.T) {
			mf, err := CheckMeasurementFile(filepath.Join(dir, tt.path))
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(mf.Path))
			assert.Equal(t, tt.wantKind, mf.Kind)
		})
	}

	errTests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "measurement file not found"},
		{"directory", filepath.Join(dir, "folder.yaml"), "measurement file path is a directory"},
		{"empty", filepath.Join(dir, "empty.yaml"), "measurement file is empty"},
		{"binary", filepath.Join(dir, "bin.yaml"), "measurement file appears to be binary"},
		{"extension", filepath.Join(dir, "notes.txt"), "not a YAML or JSON measurement file"},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckMeasurementFile(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
