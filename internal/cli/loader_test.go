package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/helpers/internal/value"
)

func docPath(name string) string {
	return filepath.Join("testdata", "docs", name)
}

func TestLoadDocument_Formats(t *testing.T) {
	for _, name := range []string{"user.format.yaml", "user.format.cue"} {
		t.Run(name, func(t *testing.T) {
			v, err := LoadDocument(docPath(name))
			require.NoError(t, err)

			obj, ok := v.(*value.Object)
			require.True(t, ok)
			assert.Equal(t, []string{"id", "name", "tags", "profile"}, obj.Keys())
			assert.Equal(t, value.String("number"), obj.Lookup("id"))
		})
	}
}

func TestLoadDocument_JSONKeepsOrder(t *testing.T) {
	v, err := LoadDocument(docPath("user.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "tags", "profile"}, v.(*value.Object).Keys())
}

func TestLoadDocument_Compressed(t *testing.T) {
	raw, err := os.ReadFile(docPath("user.json"))
	require.NoError(t, err)
	dir := t.TempDir()

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	gzPath := filepath.Join(dir, "user.json.gz")
	require.NoError(t, os.WriteFile(gzPath, gz.Bytes(), 0o644))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zstPath := filepath.Join(dir, "user.json.zst")
	require.NoError(t, os.WriteFile(zstPath, enc.EncodeAll(raw, nil), 0o644))
	require.NoError(t, enc.Close())

	want, err := LoadDocument(docPath("user.json"))
	require.NoError(t, err)

	for _, p := range []string{gzPath, zstPath} {
		t.Run(filepath.Ext(p), func(t *testing.T) {
			got, err := LoadDocument(p)
			require.NoError(t, err)
			assert.True(t, value.Equal(want, got))
		})
	}
}

func TestLoadDocument_Errors(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "broken.yaml.gz")
	require.NoError(t, os.WriteFile(corrupt, []byte("not gzip"), 0o644))
	badJSON := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte(`{"a":`), 0o644))

	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing", filepath.Join(dir, "nope.json"), ErrCodeNotFound},
		{"unsupported", docPath("notes.txt"), ErrCodeUnsupported},
		{"corrupt gzip", corrupt, ErrCodeDecompress},
		{"invalid json", badJSON, ErrCodeDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDocument(tt.path)
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.code, loadErr.Code)
			assert.Equal(t, tt.path, loadErr.Path)
		})
	}
}

func TestLoadArray(t *testing.T) {
	arr, err := LoadArray(docPath("numbers.yaml"))
	require.NoError(t, err)
	assert.Len(t, arr, 5)

	_, err = LoadArray(docPath("user.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document root is object, expected array")
}

func TestLoadDocuments_StopsAtFirstFailure(t *testing.T) {
	_, err := LoadDocuments([]string{docPath("user.json"), docPath("missing.json"), docPath("notes.txt")})
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}
