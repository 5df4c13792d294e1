package rules

import (
	"regexp"
	"strings"
	"unicode"
)

// pluginExt recognises the end of a plugin filename, so that several names
// on one line can be told apart even when they contain spaces.
var pluginExt = regexp.MustCompile(`(?i)\.(esp|esm|ess|omwaddon|omwgame|omwscripts)\]*$`)

var fieldPattern = regexp.MustCompile(`\S+`)

// sourceLine is a preprocessed line with its 1-indexed position
type sourceLine struct {
	text   string
	number int
}

// Lexer turns rule file text into tokens, one logical line at a time.
//
// Lexer instances are not safe for concurrent use; create one per input.
type Lexer struct {
	lines  []sourceLine
	tokens []Token
	// depth counts expression brackets ([ANY ...) still open, so that
	// indented continuation lines inside them lex as predicates
	depth int
}

// Lex tokenizes rule file text
func Lex(text string) []Token {
	return NewLexer(text).ScanTokens()
}

// NewLexer creates a lexer for the given text
func NewLexer(text string) *Lexer {
	return &Lexer{
		lines:  preprocess(text),
		tokens: make([]Token, 0),
	}
}

// preprocess normalises line endings, guarantees a trailing terminator and
// strips `;` comments. Lines holding only a comment are dropped entirely so
// they never act as block separators.
func preprocess(text string) []sourceLine {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	lines := make([]sourceLine, 0, len(raw))
	for i, line := range raw {
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			if strings.TrimSpace(line[:idx]) == "" {
				continue
			}
			line = line[:idx]
		}
		lines = append(lines, sourceLine{text: strings.TrimRightFunc(line, unicode.IsSpace), number: i + 1})
	}
	return lines
}

// ScanTokens tokenizes the whole input and returns the token stream,
// always terminated by TokenEOF
func (l *Lexer) ScanTokens() []Token {
	last := 0
	for _, line := range l.lines {
		l.scanLine(line)
		last = line.number
	}

	l.tokens = append(l.tokens, Token{Type: TokenEOF, Line: last + 1})
	return l.tokens
}

func (l *Lexer) scanLine(line sourceLine) {
	trimmed := strings.TrimSpace(line.text)

	switch {
	case trimmed == "":
		l.depth = 0
		l.addToken(TokenBlank, "", line.number)
	case trimmed[0] == '[':
		l.scanKeyword(trimmed, line.number)
	case isIndented(line.text) && l.depth == 0:
		l.addToken(TokenText, trimmed, line.number)
	default:
		l.scanPredicates(trimmed, line.number)
	}
}

// scanKeyword handles both the header form `[Order]` and the expression
// form `[ANY A.esp B.esp]`, whose remainder is lexed as predicates.
func (l *Lexer) scanKeyword(text string, line int) {
	body := text[1:]
	end := strings.IndexFunc(body, func(r rune) bool {
		return unicode.IsSpace(r) || r == ']'
	})

	word, rest := body, ""
	if end >= 0 {
		word, rest = body[:end], body[end:]
	}
	kw := Keyword(strings.ToUpper(word))
	l.addToken(TokenKeyword, string(kw), line)

	if strings.HasPrefix(rest, "]") {
		if kw.IsExpression() {
			l.addToken(TokenClose, "]", line)
		}
		if remainder := strings.TrimSpace(rest[1:]); remainder != "" {
			l.addToken(TokenText, remainder, line)
		}
		return
	}

	l.depth++
	if remainder := strings.TrimSpace(rest); remainder != "" {
		l.scanPredicates(remainder, line)
	}
}

// scanPredicates splits a run of plugin names, descending into nested
// expression keywords when one appears mid-line.
func (l *Lexer) scanPredicates(text string, line int) {
	for text != "" {
		if text[0] == '[' && startsKeyword(text) {
			l.scanKeyword(text, line)
			return
		}

		head, tail := text, ""
		if idx := nestedKeywordIndex(text); idx >= 0 {
			head, tail = text[:idx], strings.TrimSpace(text[idx:])
		}

		for _, name := range SplitNames(head) {
			l.addPredicate(name, line)
		}
		text = tail
	}
}

func (l *Lexer) addPredicate(name string, line int) {
	name, closes := StripClosers(name)
	if name != "" {
		l.addToken(TokenPredicate, name, line)
	}
	for i := 0; i < closes; i++ {
		l.addToken(TokenClose, "]", line)
		if l.depth > 0 {
			l.depth--
		}
	}
}

func (l *Lexer) addToken(tokenType TokenType, value string, line int) {
	l.tokens = append(l.tokens, Token{Type: tokenType, Value: value, Line: line})
}

// SplitNames splits text holding one or more plugin names. A name ends at
// a word carrying a plugin extension; text after the last such word forms
// one final name. Inner spacing of each name is preserved.
func SplitNames(text string) []string {
	var names []string
	start := -1

	for _, loc := range fieldPattern.FindAllStringIndex(text, -1) {
		if start < 0 {
			start = loc[0]
		}
		if pluginExt.MatchString(text[loc[0]:loc[1]]) {
			names = append(names, text[start:loc[1]])
			start = -1
		}
	}
	if start >= 0 {
		names = append(names, strings.TrimSpace(text[start:]))
	}
	return names
}

// StripClosers removes trailing `]` characters from a predicate and
// reports how many were removed.
func StripClosers(name string) (string, int) {
	closes := 0
	name = strings.TrimSpace(name)
	for strings.HasSuffix(name, "]") {
		name = strings.TrimSpace(name[:len(name)-1])
		closes++
	}
	return name, closes
}

func isIndented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// startsKeyword reports whether text opens with a known bracketed keyword
func startsKeyword(text string) bool {
	if !strings.HasPrefix(text, "[") {
		return false
	}
	body := text[1:]
	end := strings.IndexFunc(body, func(r rune) bool {
		return unicode.IsSpace(r) || r == ']'
	})
	if end >= 0 {
		body = body[:end]
	}
	kw := Keyword(strings.ToUpper(body))
	return kw.IsRule() || kw.IsExpression()
}

// nestedKeywordIndex finds a bracketed keyword following whitespace, so
// that names like "Mod [fix].esp" are not mistaken for expressions.
func nestedKeywordIndex(text string) int {
	offset := 0
	for {
		idx := strings.Index(text[offset:], "[")
		if idx < 0 {
			return -1
		}
		pos := offset + idx
		if pos > 0 && unicode.IsSpace(rune(text[pos-1])) && startsKeyword(text[pos:]) {
			return pos
		}
		offset = pos + 1
	}
}
