package plan

import (
	"wrapper-generator/internal/analyze"
	"wrapper-generator/internal/common"
	"wrapper-generator/primitive"
)

// DetectCapabilities computes the capability flags of a target from its
// declaration and its resolved backing types, one per declared field.
func DetectCapabilities(t *analyze.Target, refs []analyze.TypeRef) Capabilities {
	caps := Capabilities{IsImmutable: t.Immutable}

	for _, m := range t.Members {
		if m.IsStringer() {
			caps.HasCustomToString = true
			break
		}
	}

	if common.IsSingle(refs) {
		caps.Kind = primitive.FromType(refs[0].Type)
		caps.IsMath = caps.Kind.IsMath()
	}

	return caps
}
