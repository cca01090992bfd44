package common

import (
	"go/token"
	"strings"
	"unicode"
)

// UnexportedName lowers the leading upper-case run of an identifier the way Go
// authors spell it: "UserID" -> "userID", "ID" -> "id", "HTTPPort" -> "httpPort".
func UnexportedName(name string) string {
	runes := []rune(name)

	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	switch {
	case upper == 0:
		return name
	case upper == 1 || upper == len(runes):
		// "Cents" -> "cents", "ID" -> "id"
	default:
		// keep the last capital as the start of the next word: "HTTPPort" -> "httpPort"
		upper--
	}

	for i := range upper {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// ExportedName upper-cases the first rune of name.
func ExportedName(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// SnakeCase converts a Go identifier to snake_case: "UserID" -> "user_id".
func SnakeCase(name string) string {
	runes := []rune(name)

	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])
			if prevLower || nextLower {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))
			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// ReceiverName returns the conventional one-letter receiver name for a type.
func ReceiverName(typeName string) string {
	for _, r := range typeName {
		if unicode.IsLetter(r) {
			return string(unicode.ToLower(r))
		}
	}

	return "w"
}

// SafeIdent returns name unchanged unless it is a Go keyword or predeclared
// identifier, in which case "Value" is appended.
func SafeIdent(name string) string {
	if token.IsKeyword(name) || isPredeclared(name) {
		return name + "Value"
	}

	return name
}

func isPredeclared(name string) bool {
	switch name {
	case "bool", "byte", "complex64", "complex128", "error", "float32", "float64",
		"int", "int8", "int16", "int32", "int64", "rune", "string",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any", "comparable",
		"true", "false", "iota", "nil",
		"append", "cap", "clear", "close", "complex", "copy", "delete", "imag", "len",
		"make", "max", "min", "new", "panic", "print", "println", "real", "recover":
		return true
	default:
		return false
	}
}
