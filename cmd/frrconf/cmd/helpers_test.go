package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"frrconf/internal/clock"
	"frrconf/internal/config"
	"frrconf/internal/core"
)

const isisConf = `hostname r1
!
interface eth0
 ip router isis SR
!
interface eth1
 ip router isis SR
!
line vty
`

// setupSettings points HOME and the journal at temporary directories and
// loads the default settings.
func setupSettings(t *testing.T) {
	t.Helper()
	viper.Reset()
	config.CfgFile = ""
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FRRCONF_JOURNAL_PATH", filepath.Join(home, "journal.json"))
	require.NoError(t, config.InitConfig())

	noColor = true
	t.Cleanup(func() {
		viper.Reset()
		noColor = false
	})
}

// testConfigFile writes content to a config file in a temp dir.
func testConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "isisd.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func testEngine() (*core.Engine, *core.InMemoryJournalStore) {
	store := core.NewInMemoryJournalStore()
	return core.NewEngine(store, clock.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))), store
}

// executeRoot runs the root command with args and returns its output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected ...string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
