// Package match ranks identifiers by similarity. It backs the "did you mean"
// suggestions attached to unresolved type references.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "order_id" matches "OrderID"
//   - Levenshtein: computes the edit distance between two strings
//   - Closest: picks the most similar candidates for a misspelled name
package match
