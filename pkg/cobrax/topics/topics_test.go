// Test Type: Unit Test
// Description: Tests for the fs.FS backed help topic manager

package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"rule-syntax.md":        {Data: []byte("# Rule syntax\n\n[Order] lists plugins")},
		"dry-run.txt":           {Data: []byte("Information about dry-run mode")},
		"config.txxt":           {Data: []byte("Configuration Guide")},
		"ignore.json":           {Data: []byte("{}")},
		"option-format.txt":     {Data: []byte("Output formats")},
		"nested/priorities.txt": {Data: []byte("NearStart and NearEnd")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.scanTopics())

		topic, ok := tm.GetTopic("dry-run")
		require.True(t, ok)
		assert.Equal(t, "Information about dry-run mode", topic.Content)

		_, ok = tm.GetTopic("rule-syntax")
		assert.True(t, ok)
		_, ok = tm.GetTopic("config")
		assert.False(t, ok)
		_, ok = tm.GetTopic("ignore")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(topicFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})

	t.Run("subdirectories are flattened", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.scanTopics())

		topic, ok := tm.GetTopic("priorities")
		require.True(t, ok)
		assert.Equal(t, "nested/priorities.txt", topic.FilePath)
	})

	t.Run("nil filesystem", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"format", "option-format", true},
		{"--format", "option-format", true},
		{"-format", "option-format", true},
		{"option-format", "option-format", true},
		{"missing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.query)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestTopicManager_ListTopics(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"dry-run", "option-format", "priorities", "rule-syntax"}, tm.ListTopics())
}

func TestTopicManager_Render(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	topic, _ := tm.GetTopic("rule-syntax")
	assert.Equal(t, topic.Content, tm.Render(topic))
}

func TestGlamourRenderer_PassesThroughText(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "loadorder", Short: "test root", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sort", Short: "Sort plugins", Run: func(*cobra.Command, []string) {}})
	return root
}

func runHelp(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"help"}, args...))
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestInitialize(t *testing.T) {
	t.Run("replaces help command", func(t *testing.T) {
		root := newRoot()
		require.NoError(t, Initialize(root, topicFS()))

		var helps int
		for _, c := range root.Commands() {
			if c.Name() == "help" {
				helps++
				assert.Contains(t, c.Long, "loadorder help topics")
			}
		}
		assert.Equal(t, 1, helps)
	})

	t.Run("lists topics", func(t *testing.T) {
		root := newRoot()
		require.NoError(t, Initialize(root, topicFS()))

		out := runHelp(t, root, "topics")
		assert.Contains(t, out, "General topics:")
		assert.Contains(t, out, "  rule-syntax")
		assert.Contains(t, out, "Option topics:")
		assert.Contains(t, out, "  --format")
		assert.Contains(t, out, "'loadorder help <topic>'")
	})

	t.Run("prints a topic", func(t *testing.T) {
		root := newRoot()
		require.NoError(t, Initialize(root, topicFS()))

		assert.Equal(t, "Information about dry-run mode", runHelp(t, root, "dry-run"))
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root := newRoot()
		require.NoError(t, Initialize(root, topicFS()))

		assert.Contains(t, runHelp(t, root, "sort"), "Sort plugins")
	})

	t.Run("no topics", func(t *testing.T) {
		root := newRoot()
		require.NoError(t, Initialize(root, fstest.MapFS{}))

		assert.Contains(t, runHelp(t, root, "topics"), "No help topics available.")
	})
}
