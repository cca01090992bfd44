// Package directive parses the //wrapgen: comment directives attached to type
// declarations.
//
// A wrapper declaration looks like:
//
//	//wrapgen:wrap int64
//	type Cents struct {
//		centsBacking
//	}
//
//	//wrapgen:wrap "X" int "Y" string "Z" bool
//	//wrapgen:mutable
//	type Point struct {
//		pointBacking
//	}
//
// The arguments of wrapgen:wrap form a tagged list: quoted tokens are field
// names, bare tokens are type references. A type reference not preceded by a
// name gets the name "Value". At most four fields are accepted.
package directive
