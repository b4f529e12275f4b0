package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/roach88/helpers/internal/value"
)

// Error codes for CLI output.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeInvalidArg  = "E002" // Invalid argument or flag value
	ErrCodeUnsupported = "E003" // Unsupported document extension
	ErrCodeDecompress  = "E004" // gzip/zstd decompression failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeDecode      = "E006" // Document could not be decoded
	ErrCodeIO          = "E007" // File read/write error

	ErrCodeMismatch   = "E_MISMATCH"    // Document does not match format
	ErrCodeTestFailed = "E_TEST_FAILED" // One or more scenarios failed
)

// maxDocumentSize caps the decompressed size of a loaded document.
const maxDocumentSize = 64 << 20

// LoadError represents an error that occurred while loading a document.
type LoadError struct {
	Code    string
	Message string
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SupportedExtensions lists the document extensions LoadDocument accepts.
// Each may be followed by .gz or .zst.
var SupportedExtensions = []string{".json", ".yaml", ".yml", ".cue"}

// LoadDocument reads a JSON, YAML or CUE document, decompressing a
// trailing .gz or .zst first. Record key order follows the file.
func LoadDocument(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("file not found: %s", path), Path: path, Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeIO, Message: fmt.Sprintf("reading file: %v", err), Path: path, Err: err}
	}

	name := path
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		if data, err = gunzip(data); err != nil {
			return nil, &LoadError{Code: ErrCodeDecompress, Message: fmt.Sprintf("gzip: %v", err), Path: path, Err: err}
		}
		name = strings.TrimSuffix(name, filepath.Ext(name))
	case ".zst":
		if data, err = unzstd(data); err != nil {
			return nil, &LoadError{Code: ErrCodeDecompress, Message: fmt.Sprintf("zstd: %v", err), Path: path, Err: err}
		}
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	v, err := decodeDocument(name, data)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, &LoadError{Code: ErrCodeDecode, Message: err.Error(), Path: path, Err: err}
	}
	return v, nil
}

// LoadDocuments loads each path in order, stopping at the first failure.
func LoadDocuments(paths []string) ([]value.Value, error) {
	docs := make([]value.Value, 0, len(paths))
	for _, p := range paths {
		v, err := LoadDocument(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
	return docs, nil
}

// LoadArray loads a document whose root must be an array.
func LoadArray(path string) (value.Array, error) {
	v, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	arr, ok := v.(value.Array)
	if !ok {
		return nil, &LoadError{
			Code:    ErrCodeDecode,
			Message: fmt.Sprintf("document root is %s, expected array", value.TypeOf(v)),
			Path:    path,
		}
	}
	return arr, nil
}

func decodeDocument(name string, data []byte) (value.Value, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		return value.DecodeJSON(data)
	case ".yaml", ".yml":
		return value.DecodeYAML(data)
	case ".cue":
		return value.DecodeCUESource(filepath.Base(name), data)
	default:
		return nil, &LoadError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported extension %q (want one of %s, optionally with .gz or .zst)", ext, strings.Join(SupportedExtensions, ", ")),
		}
	}
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return readCapped(zr)
}

func unzstd(data []byte) ([]byte, error) {
	zr, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderMaxMemory(maxDocumentSize))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return readCapped(zr)
}

func readCapped(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return nil, err
	}
	if len(out) > maxDocumentSize {
		return nil, fmt.Errorf("decompressed document exceeds %d bytes", maxDocumentSize)
	}
	return out, nil
}
