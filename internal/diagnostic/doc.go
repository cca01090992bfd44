// Package diagnostic provides structured errors, warnings and notes reported
// while turning annotated declarations into wrapper implementations.
//
// Every problem is scoped to a single target declaration. A diagnostic never
// aborts the processing of other targets; the run decides what to do with the
// collected result once all targets are done.
//
// Codes:
//   - WVOG00001: target declared inside a function
//   - WVOG00002: target cannot receive the generated fragment
//   - WVOG00003: backing type reference does not resolve
//   - WVOG00004: malformed directive
//   - WVOG00005: duplicate field name
//   - WVOG00006: backing type cannot be compared or ordered
//   - WVOG00007: generated member collides with an existing one
//   - WVOG00008: author-declared String method preserved (info)
//   - WVOG00009: generated source could not be rendered or formatted
package diagnostic
