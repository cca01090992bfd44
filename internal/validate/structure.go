// Package validate checks that an annotated declaration can receive a
// generated implementation before anything is generated for it.
package validate

import (
	"fmt"
	"go/ast"

	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/diagnostic"
)

// Structure verifies the two structural preconditions of a target:
//
//  1. it is declared at package level, not inside a function;
//  2. it is a non-generic struct type that embeds its backing type by value,
//     which is how the generated fragment contributes the backing storage.
//
// The nesting check runs first and short-circuits.
func Structure(t *analyze.Target) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if t.Nested {
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     diagnostic.CodeNestedDeclaration,
			Message: fmt.Sprintf("type %s is declared inside %s; wrapper types must be declared at package level",
				t.Name(), t.EnclosingFunc),
			Target:      t.ID.String(),
			Position:    t.Position,
			Suggestions: []string{fmt.Sprintf("move the declaration of %s out of %s", t.Name(), t.EnclosingFunc)},
		})

		return diags
	}

	if reason := notExtensible(t); reason != "" {
		diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeNotExtensible,
			Message:     fmt.Sprintf("type %s cannot receive a generated implementation: %s", t.Name(), reason),
			Target:      t.ID.String(),
			Position:    t.Position,
			Suggestions: []string{fmt.Sprintf("declare it as: type %s struct { %s }", t.Name(), t.BackingName())},
		})
	}

	return diags
}

// notExtensible returns why the target cannot be completed, or "".
func notExtensible(t *analyze.Target) string {
	spec := t.Spec

	switch {
	case spec.Assign.IsValid():
		return "it is a type alias"
	case spec.TypeParams != nil && spec.TypeParams.NumFields() > 0:
		return "it is generic"
	}

	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return "it is not a struct type"
	}

	backing := t.BackingName()
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}

		switch typ := field.Type.(type) {
		case *ast.Ident:
			if typ.Name == backing {
				return ""
			}
		case *ast.StarExpr:
			if id, ok := typ.X.(*ast.Ident); ok && id.Name == backing {
				return fmt.Sprintf("%s must be embedded by value, not by pointer", backing)
			}
		}
	}

	return fmt.Sprintf("it does not embed %s", backing)
}
