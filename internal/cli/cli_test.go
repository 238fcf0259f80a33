package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd, out
}

func TestRunRenderDefault(t *testing.T) {
	viper.Reset()

	cmd, out := newTestCommand()
	require.NoError(t, runRender(cmd, nil))

	assert.Contains(t, out.String(), "<h1>Sailfish R&amp;D &lt;Lab&gt;</h1>")
	assert.Contains(t, out.String(), "<dt>visits</dt><dd>18446744073709551615</dd>")
	assert.Contains(t, out.String(), "<dt>uptime</dt><dd>2.0</dd>")
}

func TestRunRenderDataFile(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: From file\ngrade: B\n"), 0o644))
	viper.Set("render.data", path)

	cmd, out := newTestCommand()
	require.NoError(t, runRender(cmd, nil))

	assert.Contains(t, out.String(), "<title>From file</title>")
	assert.Contains(t, out.String(), "<dt>grade</dt><dd>B</dd>")
}

func TestRunRenderOutputFile(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "page.html")
	viper.Set("render.output", path)

	cmd, out := newTestCommand()
	require.NoError(t, runRender(cmd, nil))

	assert.Empty(t, out.String())
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "<dt>rank</dt><dd>-128</dd>")
}

func TestRunRenderBadData(t *testing.T) {
	viper.Reset()
	viper.Set("render.data", filepath.Join(t.TempDir(), "missing.yaml"))

	cmd, _ := newTestCommand()
	err := runRender(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load page data")
}

func TestRunRenderInvalidConfig(t *testing.T) {
	viper.Reset()
	viper.Set("log.level", "shouting")

	cmd, _ := newTestCommand()
	err := runRender(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRunEscapeArgs(t *testing.T) {
	viper.Reset()

	cmd, out := newTestCommand()
	require.NoError(t, runEscape(cmd, []string{"<a>", "1 & 2"}))

	assert.Equal(t, "&lt;a&gt; 1 &amp; 2\n", out.String())
}

func TestRunEscapeStdin(t *testing.T) {
	viper.Reset()

	cmd, out := newTestCommand()
	cmd.SetIn(strings.NewReader(`say "hi" > here`))
	require.NoError(t, runEscape(cmd, nil))

	assert.Equal(t, "say &quot;hi&quot; &gt; here\n", out.String())
}

func TestRunBench(t *testing.T) {
	viper.Reset()
	viper.Set("bench.iterations", 50)

	cmd, out := newTestCommand()
	require.NoError(t, runBench(cmd, nil))

	assert.Contains(t, out.String(), "50 renders")
	assert.Contains(t, out.String(), "per render")
}

func TestRunBenchDataFile(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: bench me\n"), 0o644))
	viper.Set("bench.data", path)
	viper.Set("bench.iterations", 10)

	cmd, out := newTestCommand()
	require.NoError(t, runBench(cmd, nil))
	assert.Contains(t, out.String(), "10 renders")
}

func TestRunBenchRejectsZeroIterations(t *testing.T) {
	viper.Reset()
	viper.Set("bench.iterations", -1)

	cmd, _ := newTestCommand()
	assert.Error(t, runBench(cmd, nil))
}

func TestRunVersion(t *testing.T) {
	versionShort = false

	cmd, out := newTestCommand()
	require.NoError(t, runVersion(cmd, nil))
	assert.Contains(t, out.String(), "sailfish")
	assert.Contains(t, out.String(), "go:")

	versionShort = true
	defer func() { versionShort = false }()

	cmd, out = newTestCommand()
	require.NoError(t, runVersion(cmd, nil))
	assert.NotEmpty(t, strings.TrimSpace(out.String()))
}
