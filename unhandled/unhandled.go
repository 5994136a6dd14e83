// Package unhandled finds statements that drop a Result value instead of
// inspecting it.
package unhandled

import (
	"cmp"
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"maps"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"

	"github.com/WinPooh32/expected/pool"
)

// resultPkgPath is the import path of the package that declares Result.
const resultPkgPath = "github.com/WinPooh32/expected"

const pkgLoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

type pkgID string

// Finding is one dropped Result: the position of the call and the rendered
// type of the value it discards.
type Finding struct {
	Pos  token.Position
	Type string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: unhandled %s", f.Pos, f.Type)
}

// Checker loads go files and reports Result values that call sites drop.
type Checker struct {
	pkgs map[pkgID]*packages.Package
}

// NewChecker returns a new initialized [Checker] instance.
func NewChecker() (*Checker, error) {
	return &Checker{
		pkgs: make(map[pkgID]*packages.Package),
	}, nil
}

// Load loads Go packages by the given patterns to the [Checker] instance.
//
// Dir parameter is the directory in which to run the build system's query
// tool that provides information about the packages.
// If Dir is empty, the tool is run in the current directory.
func (c *Checker) Load(ctx context.Context, dir string, patterns ...string) (*Checker, error) {
	cfg := &packages.Config{
		Mode:    pkgLoadMode,
		Context: ctx,
		Dir:     dir,
		Tests:   true,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	if c.pkgs == nil {
		c.pkgs = make(map[pkgID]*packages.Package, len(pkgs))
	}

	var errs pkgerrs

	for _, pkg := range pkgs {
		if pkg.Errors != nil || pkg.TypeErrors != nil {
			errs = append(errs, pkg)
			continue
		}

		c.pkgs[pkgID(pkg.ID)] = pkg
	}

	if errs != nil {
		return c, &errs
	}

	return c, nil
}

// Check scans the loaded packages and returns the dropped Results it finds,
// sorted by file, line, and column. Packages are scanned on jobs goroutines,
// if set as 0 number of cpu cores will be used. The returned error is non-nil
// only when the context is canceled or a package lacks type information.
func (c *Checker) Check(ctx context.Context, jobs int) ([]Finding, error) {
	ids := slices.Sorted(maps.Keys(c.pkgs))

	tasks := make([]pool.Task[[]Finding], len(ids))

	for i, id := range ids {
		pkg := c.pkgs[id]

		tasks[i] = func(context.Context) ([]Finding, error) {
			return scanPkg(pkg)
		}
	}

	res, err := pool.Collect(ctx, jobs, tasks)
	if err != nil {
		return nil, fmt.Errorf("scan packages: %w", err)
	}

	var findings []Finding

	for _, r := range res {
		if !r.HasValue() {
			return nil, fmt.Errorf("scan packages: %w", r.Err())
		}

		findings = append(findings, r.Value()...)
	}

	slices.SortFunc(findings, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Pos.Filename, b.Pos.Filename),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
		)
	})

	return findings, nil
}

var stmtFilter = []ast.Node{
	new(ast.ExprStmt),
	new(ast.GoStmt),
	new(ast.DeferStmt),
}

func scanPkg(pkg *packages.Package) ([]Finding, error) {
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("package %s is loaded without type info", pkg.PkgPath)
	}

	syntax := pkg.Syntax

	// Test variants repeat the plain package's files, so scan only their
	// _test.go files to keep findings unique.
	if isTestPackage(pkg) {
		syntax = testFiles(pkg, pkg.Syntax)
	}

	in := inspector.New(syntax)

	var findings []Finding

	in.Preorder(stmtFilter, func(n ast.Node) {
		call := stmtCall(n)
		if call == nil {
			return
		}

		tv, ok := pkg.TypesInfo.Types[call]
		if !ok {
			return
		}

		for _, typ := range flatten(tv.Type) {
			name, ok := resultTypeName(typ)
			if !ok {
				continue
			}

			findings = append(findings, Finding{
				Pos:  pkg.Fset.Position(call.Pos()),
				Type: name,
			})
		}
	})

	return findings, nil
}

// stmtCall extracts the call whose value the statement discards.
func stmtCall(n ast.Node) *ast.CallExpr {
	switch stmt := n.(type) {
	case *ast.ExprStmt:
		call, _ := stmt.X.(*ast.CallExpr)
		return call
	case *ast.GoStmt:
		return stmt.Call
	case *ast.DeferStmt:
		return stmt.Call
	}

	return nil
}

func flatten(t types.Type) []types.Type {
	tup, ok := t.(*types.Tuple)
	if !ok {
		return []types.Type{t}
	}

	tt := make([]types.Type, 0, tup.Len())

	for i := range tup.Len() {
		tt = append(tt, tup.At(i).Type())
	}

	return tt
}

// resultTypeName reports whether t is an instantiation of Result and renders
// it with short package names. Identity is decided by go/types, so local
// types that happen to be named Result are never matched.
func resultTypeName(t types.Type) (string, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return "", false
	}

	obj := named.Obj()
	if obj.Name() != "Result" || obj.Pkg() == nil || obj.Pkg().Path() != resultPkgPath {
		return "", false
	}

	return types.TypeString(named, func(p *types.Package) string {
		return p.Name()
	}), true
}

func isTestPackage(pkg *packages.Package) bool {
	for _, f := range pkg.GoFiles {
		if strings.HasSuffix(f, "_test.go") {
			return true
		}
	}

	return false
}

func testFiles(pkg *packages.Package, syntax []*ast.File) []*ast.File {
	var files []*ast.File

	for _, file := range syntax {
		f := pkg.Fset.File(file.Pos())
		if f == nil {
			continue
		}

		if !strings.HasSuffix(strings.ToLower(f.Name()), "_test.go") {
			continue
		}

		files = append(files, file)
	}

	return files
}
