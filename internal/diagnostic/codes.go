package diagnostic

// Diagnostic codes reported by the generator.
const (
	CodeNestedDeclaration  = "WVOG00001"
	CodeNotExtensible      = "WVOG00002"
	CodeUnresolvedType     = "WVOG00003"
	CodeMalformedDirective = "WVOG00004"
	CodeDuplicateField     = "WVOG00005"
	CodeUnsupportedBacking = "WVOG00006"
	CodeMemberConflict     = "WVOG00007"
	CodeCustomString       = "WVOG00008"
	CodeGenerationFailed   = "WVOG00009"
)
