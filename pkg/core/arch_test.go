package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// importsOf returns the imports of every non-test Go file in dir, keyed by file name.
func importsOf(t *testing.T, dir string) map[string][]string {
	t.Helper()
	fset := token.NewFileSet()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	out := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		if strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			out[entry.Name()] = append(out[entry.Name()], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return out
}

// TestCoreImportsOnly verifies pkg/core only imports the standard library.
// The Golden Rule: pkg/core imports ONLY stdlib.
func TestCoreImportsOnly(t *testing.T) {
	for file, imports := range importsOf(t, ".") {
		for _, importPath := range imports {
			// stdlib paths have no dot in the first element
			if strings.Contains(strings.SplitN(importPath, "/", 2)[0], ".") {
				t.Errorf("%s imports forbidden package: %s", file, importPath)
			}
		}
	}
}

// TestDialectsAreDriverFree verifies the dialect packages never reach for
// database/sql or a connection adapter. Opening connections is pkg/adapters' job.
func TestDialectsAreDriverFree(t *testing.T) {
	dirs, err := filepath.Glob(filepath.Join("..", "dialects", "*"))
	if err != nil {
		t.Fatalf("Failed to list dialects: %v", err)
	}
	dirs = append(dirs, filepath.Join("..", "dialect"))

	for _, dir := range dirs {
		for file, imports := range importsOf(t, dir) {
			for _, importPath := range imports {
				if strings.HasPrefix(importPath, "database/sql") ||
					strings.Contains(importPath, "/pkg/adapter") {
					t.Errorf("%s/%s imports %s (dialects must stay driver-free)", filepath.Base(dir), file, importPath)
				}
			}
		}
	}
}
