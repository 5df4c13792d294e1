package rules

import (
	"github.com/arthur-debert/loadorder/pkg/pattern"
	"github.com/rs/zerolog"
)

type pendingPredicate struct {
	matcher pattern.Matcher
	line    int
}

// Parser builds rule tables from a token stream
type Parser struct {
	tokens []Token
	logger zerolog.Logger
	set    *RuleSet

	// per-block state
	current     Keyword
	previous    pattern.Matcher
	hasPrevious bool
	pending     []pendingPredicate
	messages    []string
	// depth counts open expression brackets; their predicates are dropped
	depth int
}

// Parse builds a RuleSet from tokens. Malformed input never fails the
// parse: unknown keywords and stray tokens are skipped.
func Parse(tokens []Token, logger zerolog.Logger) *RuleSet {
	p := &Parser{
		tokens: tokens,
		logger: logger,
		set:    &RuleSet{},
	}
	return p.parse()
}

func (p *Parser) parse() *RuleSet {
	for _, tok := range p.tokens {
		switch tok.Type {
		case TokenBlank:
			p.endBlock()
		case TokenKeyword:
			p.keyword(tok)
		case TokenPredicate:
			p.predicate(tok.Value, tok.Line)
		case TokenText:
			p.text(tok)
		case TokenClose:
			if p.depth > 0 {
				p.depth--
			}
		case TokenEOF:
			p.endBlock()
		}
	}
	return p.set
}

func (p *Parser) keyword(tok Token) {
	kw := Keyword(tok.Value)

	switch {
	case kw.IsExpression():
		p.depth++
		p.logger.Trace().Int("line", tok.Line).Str("keyword", tok.Value).Msg("Expression keyword ignored")
	case kw.IsRule():
		p.endBlock()
		p.current = kw
		p.logger.Trace().Int("line", tok.Line).Str("rule", string(kw)).Msg("Rule block started")
	default:
		p.endBlock()
		p.current = ""
		p.logger.Debug().Int("line", tok.Line).Str("keyword", tok.Value).Msg("Unknown rule keyword, block ignored")
	}
}

// text is message content inside message rules and otherwise one or more
// predicates written on an indented or keyword line
func (p *Parser) text(tok Token) {
	if p.current.IsMessage() && p.depth == 0 {
		p.messages = append(p.messages, tok.Value)
		return
	}
	for _, name := range SplitNames(tok.Value) {
		if name, _ = StripClosers(name); name != "" {
			p.predicate(name, tok.Line)
		}
	}
}

func (p *Parser) predicate(value string, line int) {
	if p.current == "" {
		return
	}
	if p.depth > 0 {
		p.logger.Trace().Int("line", line).Str("pattern", value).Msg("Expression predicate skipped")
		return
	}

	m := pattern.Compile(value)
	if err := m.Err(); err != nil {
		p.logger.Warn().Err(err).Int("line", line).Str("pattern", value).Msg("Malformed pattern, rule disabled")
	}

	switch {
	case p.current == KeywordOrder:
		if p.hasPrevious {
			p.set.Order = append(p.set.Order, OrderRule{Plugin: m, After: p.previous, Line: line})
			p.logger.Debug().
				Int("line", line).
				Str("plugin", m.String()).
				Str("after", p.previous.String()).
				Msg("Parsed ORDER rule")
		}
		p.previous = m
		p.hasPrevious = true
	case p.current == KeywordNearStart:
		p.set.NearStart = append(p.set.NearStart, PriorityRule{Pattern: m, Line: line})
		p.logger.Debug().Int("line", line).Str("plugin", m.String()).Msg("Parsed NEARSTART rule")
	case p.current == KeywordNearEnd:
		p.set.NearEnd = append(p.set.NearEnd, PriorityRule{Pattern: m, Line: line})
		p.logger.Debug().Int("line", line).Str("plugin", m.String()).Msg("Parsed NEAREND rule")
	case p.current.IsMessage():
		p.pending = append(p.pending, pendingPredicate{matcher: m, line: line})
	}
}

// endBlock emits buffered message rules and clears per-block state.
// Rules already emitted are kept.
func (p *Parser) endBlock() {
	if p.current.IsMessage() && len(p.pending) > 0 {
		for i, pred := range p.pending {
			p.set.Messages = append(p.set.Messages, MessageRule{
				Kind:     p.current,
				Pattern:  pred.matcher,
				Messages: append([]string(nil), p.messages...),
				Related:  relatedNames(p.pending, i),
				Line:     pred.line,
			})
		}
		p.logger.Debug().
			Str("rule", string(p.current)).
			Int("plugins", len(p.pending)).
			Int("lines", len(p.messages)).
			Msg("Parsed message rule")
	} else if len(p.messages) > 0 {
		p.logger.Debug().Str("rule", string(p.current)).Msg("Message without plugins dropped")
	}

	p.depth = 0
	p.hasPrevious = false
	p.previous = pattern.Matcher{}
	p.pending = nil
	p.messages = nil
}

func relatedNames(pending []pendingPredicate, skip int) []string {
	var out []string
	for i, pred := range pending {
		if i != skip {
			out = append(out, pred.matcher.String())
		}
	}
	return out
}
