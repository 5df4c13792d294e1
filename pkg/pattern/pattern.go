package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// VersionToken is the placeholder replaced by a version capture group.
const VersionToken = "<VER>"

// versionExpr captures numbers like 1, 1.2, 1_2_3, 2-0 and 1.0b.
const versionExpr = `(\d+(?:[._-]?\d+)*[a-z]?)`

// Kind identifies how a Matcher compares names.
type Kind int

const (
	// KindNever matches nothing. It is the zero value and the fallback
	// for patterns that fail to compile.
	KindNever Kind = iota
	// KindLiteral compares names with case-insensitive equality.
	KindLiteral
	// KindRegexp matches names against an anchored expression.
	KindRegexp
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindRegexp:
		return "wildcard"
	default:
		return "never"
	}
}

// Matcher is a compiled pattern. The zero value matches nothing.
type Matcher struct {
	kind   Kind
	source string
	re     *regexp.Regexp
	err    error
}

// Compile turns a pattern string into a Matcher. It never fails: an
// expression that does not compile yields a KindNever matcher whose Err
// reports the problem.
func Compile(pattern string) Matcher {
	if !IsWildcard(pattern) {
		return Matcher{kind: KindLiteral, source: pattern}
	}

	re, err := regexp.Compile(Translate(pattern))
	if err != nil {
		return Matcher{kind: KindNever, source: pattern, err: err}
	}
	return Matcher{kind: KindRegexp, source: pattern, re: re}
}

// IsWildcard reports whether the pattern needs the expression engine.
func IsWildcard(pattern string) bool {
	return strings.ContainsAny(pattern, "*?") ||
		strings.Contains(strings.ToUpper(pattern), VersionToken)
}

// Translate converts the wildcard grammar into an anchored,
// case-insensitive regular expression.
func Translate(pattern string) string {
	var b strings.Builder
	b.WriteString("(?i)^")

	for i := 0; i < len(pattern); {
		if hasVersionToken(pattern[i:]) {
			b.WriteString(versionExpr)
			i += len(VersionToken)
			continue
		}

		r, size := utf8.DecodeRuneInString(pattern[i:])
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(pattern[i : i+size]))
		}
		i += size
	}

	b.WriteString("$")
	return b.String()
}

func hasVersionToken(s string) bool {
	return len(s) >= len(VersionToken) && strings.EqualFold(s[:len(VersionToken)], VersionToken)
}

// Match reports whether name matches the whole pattern, ignoring case.
func (m Matcher) Match(name string) bool {
	switch m.kind {
	case KindLiteral:
		return strings.EqualFold(m.source, name)
	case KindRegexp:
		return m.re.MatchString(name)
	default:
		return false
	}
}

// Version returns the text captured by the first <VER> token, if the
// pattern has one and name matches.
func (m Matcher) Version(name string) (string, bool) {
	if m.kind != KindRegexp || m.re.NumSubexp() == 0 {
		return "", false
	}
	groups := m.re.FindStringSubmatch(name)
	if len(groups) < 2 {
		return "", false
	}
	return groups[1], true
}

// Kind returns how the matcher compares names
func (m Matcher) Kind() Kind { return m.kind }

// String returns the pattern source text
func (m Matcher) String() string { return m.source }

// Err returns the compilation error for KindNever matchers built from a
// malformed pattern.
func (m Matcher) Err() error { return m.err }
