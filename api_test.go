package transcode

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackageFunctionsDocumented(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "api.go", nil, parser.ParseComments)
	require.NoError(t, err)

	n := 0
	for _, d := range f.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if !ok || !fn.Name.IsExported() {
			continue
		}
		n++
		require.NotNil(t, fn.Doc, fn.Name.Name)
		require.True(t, strings.HasPrefix(fn.Doc.Text(), fn.Name.Name+" "), fn.Name.Name)
	}
	require.Equal(t, 52, n)
}

// TestLaneOpsUsed requires every exported name of internal/lanes to be
// referenced by the package's non-test sources.
func TestLaneOpsUsed(t *testing.T) {
	fset := token.NewFileSet()
	used := map[string]bool{}
	names, err := filepath.Glob("*.go")
	require.NoError(t, err)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, 0)
		require.NoError(t, err)
		ast.Inspect(f, func(n ast.Node) bool {
			if sel, ok := n.(*ast.SelectorExpr); ok {
				used[sel.Sel.Name] = true
			}
			return true
		})
	}

	dir := filepath.Join("internal", "lanes")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".go") || strings.HasSuffix(e.Name(), "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, e.Name()), nil, 0)
		require.NoError(t, err)
		for _, d := range f.Decls {
			if fn, ok := d.(*ast.FuncDecl); ok && fn.Name.IsExported() {
				require.True(t, used[fn.Name.Name], "%s: %s is not used", e.Name(), fn.Name.Name)
			}
		}
	}
}
