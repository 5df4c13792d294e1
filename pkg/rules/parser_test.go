// Test Type: Unit Test
// Description: Tests for building rule tables from rule file text

package rules_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/loadorder/pkg/pattern"
	"github.com/arthur-debert/loadorder/pkg/rules"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(src string) *rules.RuleSet {
	return rules.LoadString(src, zerolog.Nop())
}

// orderPairs renders order rules as plugin<after pairs
func orderPairs(set *rules.RuleSet) [][2]string {
	var out [][2]string
	for _, r := range set.Order {
		out = append(out, [2]string{r.Plugin.String(), r.After.String()})
	}
	return out
}

func priorityNames(list []rules.PriorityRule) []string {
	var out []string
	for _, r := range list {
		out = append(out, r.Pattern.String())
	}
	return out
}

func TestParse_OrderChain(t *testing.T) {
	set := parse(`
[Order]
Morrowind.esm
Tribunal.esm
Bloodmoon.esm
`)

	assert.Equal(t, [][2]string{
		{"Tribunal.esm", "Morrowind.esm"},
		{"Bloodmoon.esm", "Tribunal.esm"},
	}, orderPairs(set))
	assert.Equal(t, 4, set.Order[0].Line)
	assert.Equal(t, 5, set.Order[1].Line)
}

func TestParse_OrderBlockBoundaries(t *testing.T) {
	t.Run("blank_line_restarts_chain", func(t *testing.T) {
		set := parse("[Order]\nA.esp\nB.esp\n\nC.esp\nD.esp\n")
		assert.Equal(t, [][2]string{{"B.esp", "A.esp"}, {"D.esp", "C.esp"}}, orderPairs(set))
	})

	t.Run("new_keyword_restarts_chain", func(t *testing.T) {
		set := parse("[Order]\nA.esp\nB.esp\n[Order]\nC.esp\nD.esp\n")
		assert.Equal(t, [][2]string{{"B.esp", "A.esp"}, {"D.esp", "C.esp"}}, orderPairs(set))
	})

	t.Run("comment_does_not_end_block", func(t *testing.T) {
		set := parse("[Order]\nA.esp\n; note\nB.esp\n")
		assert.Equal(t, [][2]string{{"B.esp", "A.esp"}}, orderPairs(set))
	})

	t.Run("single_line_order", func(t *testing.T) {
		set := parse("[Order] First Mod.esp Second Mod.esp\n")
		assert.Equal(t, [][2]string{{"Second Mod.esp", "First Mod.esp"}}, orderPairs(set))
	})

	t.Run("single_predicate_emits_nothing", func(t *testing.T) {
		set := parse("[Order]\nLonely.esp\n")
		assert.Empty(t, set.Order)
	})
}

func TestParse_Priority(t *testing.T) {
	set := parse(`
[NearStart]
Early.esp
Earlier*.esp

[NearEnd]
Late.esp
  Indented Late.esp
`)

	assert.Equal(t, []string{"Early.esp", "Earlier*.esp"}, priorityNames(set.NearStart))
	assert.Equal(t, []string{"Late.esp", "Indented Late.esp"}, priorityNames(set.NearEnd))
	assert.Equal(t, 3, set.NearStart[0].Line)
	assert.Equal(t, 4, set.NearStart[1].Line)
	assert.True(t, set.NearStart[1].Pattern.Match("EarlierStill.esp"))
}

func TestParse_Messages(t *testing.T) {
	set := parse(`
[Note]
 Use the patch from the mod page.
 It fixes dialogue.
Quest Mod*.esp

[Conflict]
 These overhaul the same cells.
Town A.esp
Town B.esp
`)

	require.Len(t, set.Messages, 3)

	note := set.Messages[0]
	assert.Equal(t, rules.KeywordNote, note.Kind)
	assert.Equal(t, "Quest Mod*.esp", note.Pattern.String())
	assert.Equal(t, []string{"Use the patch from the mod page.", "It fixes dialogue."}, note.Messages)
	assert.Empty(t, note.Related)

	conflictA := set.Messages[1]
	assert.Equal(t, rules.KeywordConflict, conflictA.Kind)
	assert.Equal(t, []string{"These overhaul the same cells."}, conflictA.Messages)
	assert.Equal(t, []string{"Town B.esp"}, conflictA.Related)
	assert.Equal(t, []string{"Town A.esp"}, set.Messages[2].Related)

	assert.Empty(t, set.Order)
	assert.Empty(t, set.NearStart)
}

func TestParse_MessagesAfterPredicates(t *testing.T) {
	set := parse("[Patch]\nFix.esp\n  Patches the base mod.\n")
	require.Len(t, set.Messages, 1)
	assert.Equal(t, []string{"Patches the base mod."}, set.Messages[0].Messages)
}

func TestParse_MessageKeywordLineText(t *testing.T) {
	set := parse("[Note] Read the readme.\nMod.esp\n")
	require.Len(t, set.Messages, 1)
	assert.Equal(t, []string{"Read the readme."}, set.Messages[0].Messages)
}

func TestParse_ExpressionPredicatesDropped(t *testing.T) {
	set := parse(`
[Requires]
 Needs its dependencies.
Addon.esp
[ALL Base One.esp
     [NOT Base Two.esp]]

[Order]
A.esp
B.esp
`)

	require.Len(t, set.Messages, 1)
	assert.Equal(t, rules.KeywordRequires, set.Messages[0].Kind)
	assert.Equal(t, "Addon.esp", set.Messages[0].Pattern.String())
	assert.Equal(t, []string{"Needs its dependencies."}, set.Messages[0].Messages)
	assert.Empty(t, set.Messages[0].Related)
	assert.Equal(t, [][2]string{{"B.esp", "A.esp"}}, orderPairs(set))
}

func TestParse_NotAndVerDoNotReceiveMessages(t *testing.T) {
	set := parse("[Requires]\n Needs base.\nAddon.esp\n[NOT Base Two.esp]\n\n[Note]\n Old version.\n[VER < 1.0 Foo.esp]\n")

	require.Len(t, set.Messages, 1)
	assert.Equal(t, "Addon.esp", set.Messages[0].Pattern.String())
	for _, m := range set.Messages {
		assert.False(t, m.Pattern.Match("Base Two.esp"))
		assert.NotEqual(t, "< 1.0 Foo.esp", m.Pattern.String())
	}
}

func TestParse_PredicatesAfterExpressionCloseKept(t *testing.T) {
	set := parse("[Conflict]\n Pick one.\n[ANY A.esp B.esp]\nC.esp\nD.esp\n")

	require.Len(t, set.Messages, 2)
	assert.Equal(t, "C.esp", set.Messages[0].Pattern.String())
	assert.Equal(t, "D.esp", set.Messages[1].Pattern.String())
	assert.Equal(t, []string{"D.esp"}, set.Messages[0].Related)
}

func TestParse_MalformedPatternDoesNotStopLoading(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	set := rules.LoadString("[Note]\n Broken name.\nMod\xff*.esp\n\n[Order]\nA.esp\nB.esp\n", logger)

	require.Len(t, set.Messages, 1)
	assert.Equal(t, pattern.KindNever, set.Messages[0].Pattern.Kind())
	assert.Error(t, set.Messages[0].Pattern.Err())
	assert.False(t, set.Messages[0].Pattern.Match("Mod\xff1.esp"))
	assert.Equal(t, [][2]string{{"B.esp", "A.esp"}}, orderPairs(set))
	assert.Contains(t, buf.String(), "Malformed pattern")
}

func TestParse_UnknownKeywordIgnored(t *testing.T) {
	set := parse("[Bogus]\nA.esp\nB.esp\n\n[NearEnd]\nC.esp\n")
	assert.Empty(t, set.Order)
	assert.Equal(t, []string{"C.esp"}, priorityNames(set.NearEnd))
}

func TestParse_PredicatesWithoutRuleIgnored(t *testing.T) {
	set := parse("Stray.esp\n  stray text\n")
	assert.True(t, set.IsEmpty())
}

func TestParse_BlankKeepsRuleType(t *testing.T) {
	set := parse("[NearStart]\nA.esp\n\nB.esp\n")
	assert.Equal(t, []string{"A.esp", "B.esp"}, priorityNames(set.NearStart))
}

func TestParse_UserRulesAppend(t *testing.T) {
	base := "[Order]\nA.esp\nB.esp\n"
	user := "[NearEnd]\nA.esp\n"
	set := parse(base + "\n" + user)

	assert.Len(t, set.Order, 1)
	assert.Len(t, set.NearEnd, 1)
}

func TestRuleSet_IsEmpty(t *testing.T) {
	var nilSet *rules.RuleSet
	assert.True(t, nilSet.IsEmpty())
	assert.True(t, (&rules.RuleSet{}).IsEmpty())
	assert.True(t, parse("; only comments\n\n").IsEmpty())
	assert.False(t, parse("[NearStart]\nA.esp\n").IsEmpty())
	assert.False(t, parse("[Note]\n text\nA.esp\n").IsEmpty())
}

func TestRuleSet_MessagesFor(t *testing.T) {
	set := parse(`
[Note]
 General note.
Mod*.esp

[Conflict]
Mod Alpha.esp
Mod Beta.esp
`)

	msgs := set.MessagesFor("MOD ALPHA.ESP")
	require.Len(t, msgs, 2)
	assert.Equal(t, rules.KeywordNote, msgs[0].Kind)
	assert.Equal(t, []string{"General note."}, msgs[0].Lines)
	assert.Equal(t, rules.KeywordConflict, msgs[1].Kind)
	assert.Equal(t, []string{"Mod Beta.esp"}, msgs[1].Related)

	assert.Empty(t, set.MessagesFor("Unrelated.esp"))

	byName := set.MessageMap([]string{"Mod Beta.esp", "Unrelated.esp"})
	assert.Len(t, byName, 1)
	assert.Len(t, byName["Mod Beta.esp"], 2)
}

func TestRuleSet_Stats(t *testing.T) {
	set := parse("[Order]\nA.esp\nB.esp\nC.esp\n\n[NearStart]\nA.esp\n\n[NearEnd]\nZ.esp\n\n[Note]\n x\nA.esp\n")
	assert.Equal(t, rules.Stats{Order: 2, NearStart: 1, NearEnd: 1, Messages: 1}, set.Stats())
}
