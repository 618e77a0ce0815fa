package topics

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"getting-started.md": {Data: []byte("# Getting Started\n\nRun provision.\n")},
		"managers.txt":       {Data: []byte("Supported package managers.\n")},
		"ignored.json":       {Data: []byte("{}")},
	}
}

func TestScanTopics(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"getting-started", "managers"}, tm.ListTopics())

	_, ok := tm.GetTopic("ignored")
	assert.False(t, ok, "unsupported extensions are not topics")
}

func TestGetTopic_FlagStyleNames(t *testing.T) {
	tm := New(fstest.MapFS{
		"dry-run.md": {Data: []byte("dry run docs")},
	}, Options{})
	require.NoError(t, tm.scanTopics())

	topic, ok := tm.GetTopic("--dry-run")
	require.True(t, ok)
	assert.Equal(t, "dry-run", topic.Name)
}

func TestRender_PlainByDefault(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.scanTopics())

	topic, ok := tm.GetTopic("managers")
	require.True(t, ok)
	assert.Equal(t, "Supported package managers.\n", tm.Render(topic))
}

func TestInitialize(t *testing.T) {
	rootCmd := &cobra.Command{Use: "devup"}
	rootCmd.AddCommand(&cobra.Command{Use: "provision", Run: func(*cobra.Command, []string) {}})

	err := Initialize(rootCmd, testFS(), Options{})
	require.NoError(t, err)

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}
