package directive

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Find extracts the wrapgen directives from a doc comment. It returns nil when
// the comment carries no wrapgen:wrap line.
func Find(doc *ast.CommentGroup) (*Directive, error) {
	if doc == nil {
		return nil, nil
	}

	var (
		found   *Directive
		mutable bool
	)

	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, Prefix) {
			continue
		}

		switch name, args := splitDirective(c.Text); name {
		case WrapPrefix:
			if found != nil {
				return nil, errors.Wrap(ErrMalformed, "wrapgen:wrap given more than once")
			}

			found = &Directive{Args: args}
		case MutablePrefix:
			if args != "" {
				return nil, errors.Wrapf(ErrMalformed, "wrapgen:mutable takes no arguments, got %q", args)
			}

			mutable = true
		default:
			return nil, errors.Wrapf(ErrMalformed, "unknown directive %s", strings.TrimPrefix(name, "//"))
		}
	}

	if found == nil {
		if mutable {
			return nil, errors.Wrap(ErrMalformed, "wrapgen:mutable without wrapgen:wrap")
		}

		return nil, nil
	}

	found.Mutable = mutable

	return found, nil
}

// splitDirective splits "//wrapgen:wrap int64" into "//wrapgen:wrap" and "int64".
func splitDirective(text string) (string, string) {
	idx := strings.IndexFunc(text, unicode.IsSpace)
	if idx < 0 {
		return text, ""
	}

	return text[:idx], strings.TrimSpace(text[idx:])
}

// Tokenize splits directive arguments into name literals and type references.
func Tokenize(args string) ([]Token, error) {
	var tokens []Token

	rest := strings.TrimSpace(args)
	for rest != "" {
		var (
			tok Token
			n   int
		)

		switch rest[0] {
		case '"', '`':
			end := quotedEnd(rest)
			if end < 0 {
				return nil, errors.Wrapf(ErrMalformed, "unterminated name literal %s", rest)
			}

			name, err := strconv.Unquote(rest[:end])
			if err != nil {
				return nil, errors.Wrapf(ErrMalformed, "invalid name literal %s", rest[:end])
			}

			tok = Token{Kind: TokenName, Text: name}
			n = end
		default:
			n = strings.IndexFunc(rest, unicode.IsSpace)
			if n < 0 {
				n = len(rest)
			}

			tok = Token{Kind: TokenType, Text: rest[:n]}
		}

		if n < len(rest) && !unicode.IsSpace(rune(rest[n])) {
			return nil, errors.Wrapf(ErrMalformed, "missing space after %s", rest[:n])
		}

		tok.Index = len(tokens)
		tokens = append(tokens, tok)
		rest = strings.TrimSpace(rest[n:])
	}

	return tokens, nil
}

// quotedEnd returns the index just past the closing quote of the literal that
// starts s, or -1.
func quotedEnd(s string) int {
	quote := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if quote == '"' {
				i++
			}
		case quote:
			return i + 1
		}
	}

	return -1
}

// Parse turns directive arguments into a WrapperSpec.
func Parse(args string) (*WrapperSpec, error) {
	tokens, err := Tokenize(args)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, errors.Wrap(ErrMalformed, "wrapgen:wrap needs at least one type")
	}

	spec := &WrapperSpec{}

	var pending *Token
	for i := range tokens {
		tok := tokens[i]

		switch tok.Kind {
		case TokenName:
			if pending != nil {
				return nil, errors.Wrapf(ErrMalformed, "name %q must be followed by a type, got name %q", pending.Text, tok.Text)
			}

			if !token.IsIdentifier(tok.Text) || tok.Text == "_" {
				return nil, &FieldError{Field: tok.Text, Err: errors.Wrap(ErrMalformed, "field name is not a valid Go identifier")}
			}

			pending = &tok
		case TokenType:
			field := FieldSpec{Name: DefaultFieldName, TypeExpr: tok.Text}
			if pending != nil {
				field.Name = pending.Text
				field.Explicit = true
				pending = nil
			}

			spec.Fields = append(spec.Fields, field)
		}
	}

	if pending != nil {
		return nil, errors.Wrapf(ErrMalformed, "name %q is not followed by a type", pending.Text)
	}

	if len(spec.Fields) > MaxFields {
		return nil, errors.Wrapf(ErrMalformed, "at most %d fields are supported, got %d", MaxFields, len(spec.Fields))
	}

	seen := make(map[string]bool, len(spec.Fields))
	for _, f := range spec.Fields {
		if seen[f.Name] {
			return nil, &FieldError{Field: f.Name, Err: ErrDuplicateField}
		}

		seen[f.Name] = true
	}

	return spec, nil
}
