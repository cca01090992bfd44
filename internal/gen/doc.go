// Package gen provides deterministic Go code generation for wrapper types.
//
// Generation approach uses text/template + go/format for readable,
// allocation-free Go code.
//
// Generated members:
//   - Backing storage, tuple type and hash seed
//   - Constructors, copy constructor and conversions
//   - Field accessors, plus setters for mutable wrappers
//   - Equal, Hash, Compare and the relational methods
//   - String, unless the author declares one
//   - Format and arithmetic for numeric wrappers
package gen
