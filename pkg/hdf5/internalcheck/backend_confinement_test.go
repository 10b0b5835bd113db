package internalcheck

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const backendPath = "github.com/h5works/hdf5-go/pkg/hdf5/internal/backend"

// The backend package performs raw native calls with no synchronization of
// its own. Only the call layer, which owns the serializer, may import it.
func TestBackendImportConfinement(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports,
	}

	pkgs, err := packages.Load(cfg, "github.com/h5works/hdf5-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	allowed := map[string]bool{
		"github.com/h5works/hdf5-go/pkg/hdf5": true,
		backendPath:                           true,
	}

	var findings []string

	for _, pkg := range pkgs {
		if allowed[pkg.PkgPath] {
			continue
		}
		for importPath := range pkg.Imports {
			if importPath == backendPath {
				findings = append(findings, fmt.Sprintf("%s imports %s", pkg.PkgPath, backendPath))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("backend confinement violation:\n%s", strings.Join(findings, "\n"))
	}
}
