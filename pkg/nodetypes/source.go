package nodetypes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// DefaultPath is where tree-sitter-c keeps node-types.json, relative to the
// root of the repository vendoring it.
const DefaultPath = "third_party/tree-sitter-c/src/node-types.json"

// StdinPath selects standard input.
const StdinPath = "-"

const lz4Ext = ".lz4"

// Sentinel path errors.
var (
	ErrEmptyPath       = errors.New("path is empty")
	ErrPathContainsNUL = errors.New("path contains NUL byte")
	ErrDirectoryPath   = errors.New("path points to a directory")
)

// Source is a loaded node-types.json document.
type Source struct {
	// Label names the origin for messages: a file path, "stdin" or "rev:path".
	Label string
	// Data is the decompressed JSON.
	Data []byte
}

// Descriptors parses the document.
func (s Source) Descriptors() ([]Descriptor, error) {
	descriptors, err := Parse(s.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Label, err)
	}

	return descriptors, nil
}

// ReadFile loads node-types.json from path, or from stdin when path is "-".
// Files ending in .lz4 are decompressed.
func ReadFile(path string, stdin io.Reader) (Source, error) {
	if path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return Source{}, fmt.Errorf("read stdin: %w", err)
		}

		return Source{Label: "stdin", Data: data}, nil
	}

	resolved, err := resolveFilePath(path)
	if err != nil {
		return Source{}, fmt.Errorf("resolve path %q: %w", path, err)
	}

	//nolint:gosec // resolved is normalized and type checked in resolveFilePath.
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Source{}, fmt.Errorf("read %s: %w", resolved, err)
	}

	return NewSource(resolved, resolved, data)
}

// NewSource wraps data read from name, decompressing it when name ends in .lz4.
func NewSource(label, name string, data []byte) (Source, error) {
	if strings.HasSuffix(name, lz4Ext) {
		var err error

		data, err = decompress(data)
		if err != nil {
			return Source{}, fmt.Errorf("decompress %s: %w", label, err)
		}
	}

	return Source{Label: label, Data: data}, nil
}

func decompress(data []byte) ([]byte, error) {
	var out bytes.Buffer

	_, err := io.Copy(&out, lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}

	return out.Bytes(), nil
}

func resolveFilePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}

	if strings.ContainsRune(path, '\x00') {
		return "", fmt.Errorf("%w: %q", ErrPathContainsNUL, path)
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", absPath, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrDirectoryPath, absPath)
	}

	return absPath, nil
}
