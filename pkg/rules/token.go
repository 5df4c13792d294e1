package rules

import "fmt"

// TokenType identifies a lexical token of a rule file
type TokenType int

const (
	// TokenEOF marks the end of the token stream
	TokenEOF TokenType = iota
	// TokenKeyword is a bracketed rule keyword such as [ORDER or [ANY
	TokenKeyword
	// TokenPredicate is a plugin name or pattern
	TokenPredicate
	// TokenText is free text: an indented line or the remainder of a
	// keyword line. Message-bearing rules read it as message content.
	TokenText
	// TokenClose is a ] closing an expression opened by a keyword
	TokenClose
	// TokenBlank is an empty line and ends the current block
	TokenBlank
)

// String returns a readable token type name
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenKeyword:
		return "KEYWORD"
	case TokenPredicate:
		return "PREDICATE"
	case TokenText:
		return "TEXT"
	case TokenClose:
		return "CLOSE"
	case TokenBlank:
		return "BLANK"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is one lexical unit with the source line it came from
type Token struct {
	Type  TokenType
	Value string
	Line  int
}

// String formats the token for debugging
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("%d:%s", t.Line, t.Type)
	}
	return fmt.Sprintf("%d:%s(%q)", t.Line, t.Type, t.Value)
}

// Keyword is an upper-cased rule keyword
type Keyword string

// Rule keywords
const (
	KeywordOrder     Keyword = "ORDER"
	KeywordNearStart Keyword = "NEARSTART"
	KeywordNearEnd   Keyword = "NEAREND"
	KeywordNote      Keyword = "NOTE"
	KeywordConflict  Keyword = "CONFLICT"
	KeywordRequires  Keyword = "REQUIRES"
	KeywordPatch     Keyword = "PATCH"

	KeywordAny  Keyword = "ANY"
	KeywordAll  Keyword = "ALL"
	KeywordNot  Keyword = "NOT"
	KeywordVer  Keyword = "VER"
	KeywordDesc Keyword = "DESC"
	KeywordSize Keyword = "SIZE"
)

// IsRule reports whether the keyword starts a rule block
func (k Keyword) IsRule() bool {
	switch k {
	case KeywordOrder, KeywordNearStart, KeywordNearEnd:
		return true
	}
	return k.IsMessage()
}

// IsMessage reports whether the keyword carries advisory text
func (k Keyword) IsMessage() bool {
	switch k {
	case KeywordNote, KeywordConflict, KeywordRequires, KeywordPatch:
		return true
	}
	return false
}

// IsExpression reports whether the keyword is a boolean or metadata
// operator that nests inside a rule
func (k Keyword) IsExpression() bool {
	switch k {
	case KeywordAny, KeywordAll, KeywordNot, KeywordVer, KeywordDesc, KeywordSize:
		return true
	}
	return false
}
