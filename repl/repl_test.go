package repl_test

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc/repl"
)

func TestSessionRun(t *testing.T) {
	in := strings.NewReader("1+2\n\n   \n2^3^2\n(1+2\nbad input\n")
	var out bytes.Buffer
	s := repl.NewSession(repl.NewConfig(), in, &out)

	require.NoError(t, s.Run())

	want := ">> 3\n" +
		">> " + // empty line re-prompts
		">> " + // so does a blank one
		">> 512\n" +
		">> Mismatched parentheses were detected!\n" +
		">> Invalid characters were detected in the expression.\n" +
		">> "
	assert.Equal(t, want, out.String())
}

func TestSessionNoPrompt(t *testing.T) {
	in := strings.NewReader("2+3*4\n8/4/2\n")
	var out bytes.Buffer
	cfg := repl.NewConfig()
	cfg.Prompt = ""
	s := repl.NewSession(cfg, in, &out)

	require.NoError(t, s.Run())
	assert.Equal(t, "14\n1\n", out.String())
}

func TestSessionDebugEcho(t *testing.T) {
	in := strings.NewReader("2+3*4\n")
	var out bytes.Buffer
	cfg := repl.NewConfig()
	cfg.Prompt = ""
	cfg.DebugMode = true
	s := repl.NewSession(cfg, in, &out)

	require.NoError(t, s.Run())
	assert.Equal(t, "2 3 4 * + : 14\n", out.String())
}

func TestSessionFormat(t *testing.T) {
	var out bytes.Buffer
	cfg := repl.NewConfig()
	cfg.Prompt = ""
	cfg.Format = "%.2f"
	s := repl.NewSession(cfg, strings.NewReader("20/8\n"), &out)

	require.NoError(t, s.Run())
	assert.Equal(t, "2.50\n", out.String())
}

func TestParseConfig(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "calc.yml")
	body := "prompt: \"calc> \"\n" +
		"format: \"%.2f\"\n" +
		"logging: debug\n" +
		"debug-mode: true\n"
	require.NoError(t, ioutil.WriteFile(fileName, []byte(body), 0644))

	cfg := repl.NewConfig()
	require.NoError(t, cfg.ParseConfig(fileName))
	assert.Equal(t, "calc> ", cfg.Prompt)
	assert.Equal(t, "%.2f", cfg.Format)
	assert.Equal(t, "debug", cfg.Logging)
	assert.True(t, cfg.DebugMode)

	// an empty file name is a no-op
	assert.NoError(t, repl.NewConfig().ParseConfig(""))

	err := repl.NewConfig().ParseConfig(filepath.Join(dir, "missing.yml"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "failed to read configuration")
	}

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, ioutil.WriteFile(bad, []byte("prompt: [\n"), 0644))
	err = repl.NewConfig().ParseConfig(bad)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "failed to parse configuration")
	}
}
