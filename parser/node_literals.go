package parser

import (
	"strconv"
	"strings"
)

// NumberLiteral is an integer literal such as 42.
type NumberLiteral struct {
	Value int64
}

func (n *NumberLiteral) Literal() string { return strconv.FormatInt(n.Value, 10) }
func (n *NumberLiteral) Statement()      {}
func (n *NumberLiteral) Expression()     {}

// FloatLiteral is a floating-point literal such as 3.14.
type FloatLiteral struct {
	Value float64
}

func (f *FloatLiteral) Literal() string {
	s := strconv.FormatFloat(f.Value, 'f', -1, 64)
	// Keep the literal a Float when it prints as a whole number.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
func (f *FloatLiteral) Statement()  {}
func (f *FloatLiteral) Expression() {}

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	Value string
}

func (s *StringLiteral) Literal() string { return quoteString(s.Value) }
func (s *StringLiteral) Statement()      {}
func (s *StringLiteral) Expression()     {}

// quoteString renders a string with the language's escape set.
func quoteString(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(v[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Value bool
}

func (b *BooleanLiteral) Literal() string { return strconv.FormatBool(b.Value) }
func (b *BooleanLiteral) Statement()      {}
func (b *BooleanLiteral) Expression()     {}

// NullLiteral is the null literal.
type NullLiteral struct{}

func (n *NullLiteral) Literal() string { return "null" }
func (n *NullLiteral) Statement()      {}
func (n *NullLiteral) Expression()     {}

// Identifier is a reference to a bound name.
type Identifier struct {
	Name string
}

func (i *Identifier) Literal() string { return i.Name }
func (i *Identifier) Statement()      {}
func (i *Identifier) Expression()     {}

// ArrayLiteral is an ordered element list: [1, 2, 3].
type ArrayLiteral struct {
	Elements []ExpressionNode
}

func (a *ArrayLiteral) Literal() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.Literal()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a *ArrayLiteral) Statement()  {}
func (a *ArrayLiteral) Expression() {}

// HashPair is one key/value entry of a hash-map literal. Keys are string
// literals or bare identifiers in the source; both carry the key as text.
type HashPair struct {
	Key   string
	Value ExpressionNode
}

// HashMapLiteral is a brace-delimited key/value list: { name: "Ada", age: 36 }.
type HashMapLiteral struct {
	Pairs []HashPair
}

func (h *HashMapLiteral) Literal() string {
	parts := make([]string, len(h.Pairs))
	for i, pair := range h.Pairs {
		parts[i] = quoteString(pair.Key) + ": " + pair.Value.Literal()
	}
	return "({" + strings.Join(parts, ", ") + "})"
}
func (h *HashMapLiteral) Statement()  {}
func (h *HashMapLiteral) Expression() {}
