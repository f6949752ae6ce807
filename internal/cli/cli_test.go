package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtunnel-site/internal/clipboard"
	"gtunnel-site/internal/tui"
)

// writeConfig writes a config that keeps logs inside the test's temp dir.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	body := fmt.Sprintf("install_command: install-gtunnel\nui:\n  no_color: true\nlog:\n  file: %s\n",
		filepath.Join(dir, "site.log"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func stubClipboard(t *testing.T, w clipboard.Writer) {
	t.Helper()
	prev := newClipboard
	newClipboard = func(string, io.Writer) (clipboard.Writer, error) { return w, nil }
	t.Cleanup(func() { newClipboard = prev })
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version", "-o", "short")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)

	out, _, err = execute(t, "version", "-o", "json")
	require.NoError(t, err)
	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, GetVersionInfo(), info)

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    "+Version)

	_, _, err = execute(t, "version", "-o", "yaml")
	assert.Error(t, err)
}

func TestRenderAcrossThreshold(t *testing.T) {
	cfg := writeConfig(t)

	top, _, err := execute(t, "render", "-c", cfg, "--width", "80", "--offset", "0")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(strings.Split(top, "\n")[1]))
	assert.Contains(t, top, "install-gtunnel")

	scrolled, _, err := execute(t, "render", "-c", cfg, "--width", "80", "--offset", "120")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("─", 80), strings.Split(scrolled, "\n")[1])

	edge, _, err := execute(t, "render", "-c", cfg, "--width", "80", "--offset", "50")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(strings.Split(edge, "\n")[1]))

	past, _, err := execute(t, "render", "-c", cfg, "--width", "80", "--offset", "51")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("─", 80), strings.Split(past, "\n")[1])
}

func TestRenderRejectsBadSize(t *testing.T) {
	cfg := writeConfig(t)
	_, _, err := execute(t, "render", "-c", cfg, "--width", "0")
	assert.Error(t, err)
	_, _, err = execute(t, "render", "-c", cfg, "--offset", "-1")
	assert.Error(t, err)
}

func TestCopy(t *testing.T) {
	var got string
	stubClipboard(t, clipboard.WriterFunc(func(_ context.Context, s string) error {
		got = s
		return nil
	}))

	_, errOut, err := execute(t, "copy", "-c", writeConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "install-gtunnel", got)
	assert.Contains(t, errOut, "Copied!")
}

func TestCopyFailure(t *testing.T) {
	stubClipboard(t, clipboard.WriterFunc(func(context.Context, string) error {
		return errors.New("no display")
	}))

	_, _, err := execute(t, "copy", "-c", writeConfig(t))
	assert.Error(t, err)
}

func TestLandingIsDefault(t *testing.T) {
	stubClipboard(t, nil)
	prev := runTUI
	t.Cleanup(func() { runTUI = prev })

	var opts []tui.Options
	runTUI = func(_ context.Context, o tui.Options) error {
		opts = append(opts, o)
		return nil
	}

	cfg := writeConfig(t)
	_, _, err := execute(t, "-c", cfg)
	require.NoError(t, err)
	_, _, err = execute(t, "landing", "-c", cfg)
	require.NoError(t, err)

	require.Len(t, opts, 2)
	for _, o := range opts {
		assert.Equal(t, "install-gtunnel", o.InstallCommand)
		assert.True(t, o.NoColor)
		assert.True(t, o.AltScreen)
		assert.NotNil(t, o.Logger)
	}
}

func TestBadConfig(t *testing.T) {
	_, _, err := execute(t, "render", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLandingSendsOSC52ToStderr(t *testing.T) {
	var got io.Writer
	prevCB := newClipboard
	newClipboard = func(_ string, out io.Writer) (clipboard.Writer, error) {
		got = out
		return nil, nil
	}
	prevRun := runTUI
	runTUI = func(context.Context, tui.Options) error { return nil }
	t.Cleanup(func() {
		newClipboard = prevCB
		runTUI = prevRun
	})

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"landing", "-c", writeConfig(t)})
	require.NoError(t, cmd.Execute())

	assert.Same(t, &errOut, got)
}
