package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"sort"

	"wrapper-generator/internal/directive"
)

// funcScope is the body range of a function declaration or literal.
type funcScope struct {
	pos, end token.Pos
	name     string
}

// Discover finds every type declaration of pkg annotated with wrapgen:wrap,
// in source order.
func Discover(pkg *Package) []*Target {
	var targets []*Target

	for _, file := range pkg.Files {
		scopes := functionScopes(file)

		ast.Inspect(file, func(n ast.Node) bool {
			decl, ok := n.(*ast.GenDecl)
			if !ok || decl.Tok != token.TYPE {
				return true
			}

			for _, spec := range decl.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && !decl.Lparen.IsValid() {
					doc = decl.Doc
				}

				d, err := directive.Find(doc)
				if d == nil && err == nil {
					continue
				}

				target := &Target{
					ID:           TypeID{PkgPath: pkg.Path, Name: ts.Name.Name},
					Package:      pkg,
					File:         file,
					Position:     pkg.Fset.Position(ts.Name.Pos()),
					Decl:         decl,
					Spec:         ts,
					DirectiveErr: err,
					Immutable:    true,
				}

				if d != nil {
					target.Directive = *d
					target.Immutable = !d.Mutable
				}

				if scope, ok := enclosing(scopes, ts.Pos()); ok {
					target.Nested = true
					target.EnclosingFunc = scope.name
				}

				targets = append(targets, target)
			}

			return true
		})
	}

	sort.SliceStable(targets, func(i, j int) bool {
		a, b := targets[i].Position, targets[j].Position
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}

		return a.Offset < b.Offset
	})

	collectMembers(pkg, targets)

	return targets
}

// functionScopes lists the bodies of all functions and function literals in
// file, outermost first.
func functionScopes(file *ast.File) []funcScope {
	var scopes []funcScope

	ast.Inspect(file, func(n ast.Node) bool {
		switch fn := n.(type) {
		case *ast.FuncDecl:
			if fn.Body != nil {
				scopes = append(scopes, funcScope{pos: fn.Body.Pos(), end: fn.Body.End(), name: fn.Name.Name})
			}
		case *ast.FuncLit:
			scopes = append(scopes, funcScope{pos: fn.Body.Pos(), end: fn.Body.End(), name: "func literal"})
		}

		return true
	})

	return scopes
}

func enclosing(scopes []funcScope, pos token.Pos) (funcScope, bool) {
	for _, s := range scopes {
		if s.pos <= pos && pos < s.end {
			return s, true
		}
	}

	return funcScope{}, false
}

// collectMembers records the methods authors declared on each package-level
// target. Generated files are skipped so a previous run's output does not
// count as the author's.
func collectMembers(pkg *Package, targets []*Target) {
	byName := make(map[string]*Target, len(targets))
	for _, t := range targets {
		if !t.Nested {
			byName[t.Name()] = t
		}
	}

	if len(byName) == 0 {
		return
	}

	for _, file := range pkg.Files {
		if ast.IsGenerated(file) {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}

			recvName, pointer := receiverBase(fn.Recv.List[0].Type)

			target, ok := byName[recvName]
			if !ok {
				continue
			}

			target.Members = append(target.Members, Member{
				Name:            fn.Name.Name,
				Params:          fieldCount(fn.Type.Params),
				Results:         resultTypes(fn.Type.Results),
				PointerReceiver: pointer,
				Position:        pkg.Fset.Position(fn.Pos()),
			})
		}
	}
}

// receiverBase returns the receiver's type name and whether it is a pointer.
func receiverBase(expr ast.Expr) (string, bool) {
	pointer := false
	if star, ok := expr.(*ast.StarExpr); ok {
		pointer = true
		expr = star.X
	}

	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, pointer
	case *ast.IndexExpr:
		if id, ok := e.X.(*ast.Ident); ok {
			return id.Name, pointer
		}
	case *ast.IndexListExpr:
		if id, ok := e.X.(*ast.Ident); ok {
			return id.Name, pointer
		}
	}

	return "", pointer
}

func fieldCount(list *ast.FieldList) int {
	if list == nil {
		return 0
	}

	return list.NumFields()
}

func resultTypes(list *ast.FieldList) []string {
	if list == nil {
		return nil
	}

	var out []string
	for _, f := range list.List {
		n := len(f.Names)
		if n == 0 {
			n = 1
		}

		for range n {
			out = append(out, types.ExprString(f.Type))
		}
	}

	return out
}
