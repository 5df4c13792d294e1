package rules

import (
	"github.com/arthur-debert/loadorder/pkg/pattern"
)

// OrderRule requires plugins matching Plugin to load after plugins
// matching After
type OrderRule struct {
	Plugin pattern.Matcher
	After  pattern.Matcher
	Line   int
}

// PriorityRule places matching plugins near the start or the end of the
// load order. Among rules of one kind, later rules take precedence.
type PriorityRule struct {
	Pattern pattern.Matcher
	Line    int
}

// MessageRule attaches advisory text to plugins matching Pattern. It never
// affects ordering.
type MessageRule struct {
	Kind     Keyword
	Pattern  pattern.Matcher
	Messages []string
	// Related holds the other predicates named in the same block, e.g. the
	// plugins a CONFLICT is with
	Related []string
	Line    int
}

// Message is the advisory text reported for one plugin
type Message struct {
	Kind    Keyword  `json:"kind" yaml:"kind" toml:"kind"`
	Lines   []string `json:"lines,omitempty" yaml:"lines,omitempty" toml:"lines,omitempty"`
	Related []string `json:"related,omitempty" yaml:"related,omitempty" toml:"related,omitempty"`
	Line    int      `json:"line" yaml:"line" toml:"line"`
}

// Stats counts the rules of each table
type Stats struct {
	Order     int `json:"order" yaml:"order" toml:"order"`
	NearStart int `json:"near_start" yaml:"near_start" toml:"near_start"`
	NearEnd   int `json:"near_end" yaml:"near_end" toml:"near_end"`
	Messages  int `json:"messages" yaml:"messages" toml:"messages"`
}

// RuleSet holds the parsed rule tables. It is built once and read-only
// afterwards, so one RuleSet can serve many sorts.
type RuleSet struct {
	Order     []OrderRule
	NearStart []PriorityRule
	NearEnd   []PriorityRule
	Messages  []MessageRule
}

// IsEmpty reports whether no table holds any rule. A nil RuleSet is empty.
func (r *RuleSet) IsEmpty() bool {
	return r == nil ||
		len(r.Order) == 0 && len(r.NearStart) == 0 && len(r.NearEnd) == 0 && len(r.Messages) == 0
}

// Stats returns the number of rules per table
func (r *RuleSet) Stats() Stats {
	if r == nil {
		return Stats{}
	}
	return Stats{
		Order:     len(r.Order),
		NearStart: len(r.NearStart),
		NearEnd:   len(r.NearEnd),
		Messages:  len(r.Messages),
	}
}

// MessagesFor returns the advisory messages of every message rule whose
// pattern matches name, in declaration order
func (r *RuleSet) MessagesFor(name string) []Message {
	if r == nil {
		return nil
	}

	var out []Message
	for _, rule := range r.Messages {
		if !rule.Pattern.Match(name) {
			continue
		}
		out = append(out, Message{
			Kind:    rule.Kind,
			Lines:   rule.Messages,
			Related: rule.Related,
			Line:    rule.Line,
		})
	}
	return out
}

// MessageMap returns advisory messages for each of the given names that
// has any
func (r *RuleSet) MessageMap(names []string) map[string][]Message {
	out := make(map[string][]Message)
	for _, name := range names {
		if msgs := r.MessagesFor(name); len(msgs) > 0 {
			out[name] = msgs
		}
	}
	return out
}
