package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// fastConfig keeps the feed quick and spike free so command tests finish
// in milliseconds.
const fastConfig = `version: 1
random_seed: 42
timing:
  connect_delay: 5ms
  first_tick: 5ms
  reconnect_delay: 5ms
  lag_retry: 5ms
  burst_delay: 1ms
  min_delay: 1ms
  max_delay: 5ms
odds:
  lag_spike: 0
  burst: 0.5
output:
  color: never
`

// withGlobals points the global flags at a temp dir and restores them after.
func withGlobals(t *testing.T, configYAML string) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)

	oldCfg, oldLog, oldDebug, oldNoColor, oldSeed := cfgFile, logFile, debugFlag, noColor, seedFlag
	t.Cleanup(func() {
		cfgFile, logFile, debugFlag, noColor, seedFlag = oldCfg, oldLog, oldDebug, oldNoColor, oldSeed
	})

	cfgFile = ""
	if configYAML != "" {
		cfgFile = filepath.Join(dir, "apex.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte(configYAML), 0o644))
	}
	logFile = filepath.Join(dir, "apex.log")
	debugFlag = false
	noColor = false
	seedFlag = 0
	return dir
}

// newTestCmd returns a bare command with captured output and ctx attached.
func newTestCmd(ctx context.Context) (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetContext(ctx)
	return cmd, &buf
}
