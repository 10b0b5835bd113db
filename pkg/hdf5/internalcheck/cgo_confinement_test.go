package internalcheck

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

// Every `import "C"` in the repository must live in the backend package, so
// the stub build and the policy around serialized native entry both stay
// enforceable in one place. The scan parses files directly instead of going
// through the build graph, which would drop cgo files when cgo is off.
func TestCgoConfinedToBackend(t *testing.T) {
	root := filepath.Join("..", "..", "..")
	fset := token.NewFileSet()

	var findings []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") {
			return nil
		}

		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		for _, imp := range file.Imports {
			if imp.Path.Value != `"C"` {
				continue
			}
			dir := filepath.ToSlash(filepath.Dir(path))
			if !strings.HasSuffix(dir, "pkg/hdf5/internal/backend") {
				findings = append(findings, fmt.Sprintf("%s imports \"C\" outside the backend package", path))
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk repository: %v", err)
	}

	if len(findings) > 0 {
		t.Fatalf("cgo confinement violation:\n%s", strings.Join(findings, "\n"))
	}
}
