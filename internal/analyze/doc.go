// Package analyze provides package loading, discovery of annotated wrapper
// declarations, and resolution of backing type references.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. Type errors
// are tolerated: before the first generation the annotated type embeds a
// backing type that does not exist yet.
//
// Key types:
//   - TypeID: package import path + type name
//   - Target: one annotated declaration (the target descriptor)
//   - Member: a method the author already declared on a target
//   - TypeRef: a resolved backing type reference
package analyze
