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
		"manifest.md":        {Data: []byte("# Manifest\n\nOne `path:digest` per line")},
		"update.txt":         {Data: []byte("UPDATE\nOnly changed files are fetched.")},
		"option-force.txt":   {Data: []byte("Force help")},
		"advanced/extra.md":  {Data: []byte("Nested topic")},
		"ignore.json":        {Data: []byte("{}")},
		"configuration.txxt": {Data: []byte("Configuration Guide")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"extra", "manifest", "option-force", "update"}, tm.ListTopics())

		topic, ok := tm.GetTopic("update")
		require.True(t, ok)
		assert.Equal(t, "UPDATE\nOnly changed files are fetched.", topic.Content)
		assert.Equal(t, "update.txt", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(topicFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"configuration"}, tm.ListTopics())
	})

	t.Run("nil file system", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})

	t.Run("empty file system", func(t *testing.T) {
		tm := New(fstest.MapFS{})
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"manifest", "manifest", true},
		{"option-force", "option-force", true},
		{"force", "option-force", true},
		{"--force", "option-force", true},
		{"-force", "option-force", true},
		{"-f", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "install",
		Short: "Install something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	require.NoError(t, Initialize(rootCmd, topicFS()))
	return rootCmd, &out
}

func TestIntegration_HelpTopic(t *testing.T) {
	rootCmd, out := newRoot(t)

	rootCmd.SetArgs([]string{"help", "update"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Only changed files are fetched.")
}

func TestIntegration_HelpTopicsList(t *testing.T) {
	rootCmd, out := newRoot(t)

	rootCmd.SetArgs([]string{"help", "topics"})
	require.NoError(t, rootCmd.Execute())

	text := out.String()
	assert.Contains(t, text, "General topics:")
	assert.Contains(t, text, "  manifest\n")
	assert.Contains(t, text, "Option topics:")
	assert.Contains(t, text, "  --force\n")
	assert.Contains(t, text, "Use 'testapp help <topic>'")
}

func TestIntegration_HelpCommandFallback(t *testing.T) {
	rootCmd, out := newRoot(t)

	rootCmd.SetArgs([]string{"help", "install"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Install something")
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title\n", r.Render("# Title", ".md"))
	assert.Equal(t, "body\n", r.Render("body\n\n\n", ".txt"))
}

func TestGlamourRenderer(t *testing.T) {
	r := NewPlainGlamourRenderer()

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	rendered := r.Render("# Manifest\n\nSome **bold** words.", ".md")
	assert.Contains(t, rendered, "Manifest")
	assert.Contains(t, rendered, "bold")
	assert.NotEqual(t, "# Manifest\n\nSome **bold** words.", rendered)
}
