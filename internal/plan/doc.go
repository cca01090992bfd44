// Package plan turns a parsed and resolved wrapper declaration into the plan
// consumed by code generation.
//
// Planning pipeline:
//  1. DetectCapabilities → math, custom String, immutability
//  2. Build → single or multi-field plan:
//     - per field: names, storage, equality and ordering strategies
//     - generated member names, checked against author members
//     - imports needed by the generated file
//  3. Emit diagnostics (unsupported backing types, member conflicts)
package plan
