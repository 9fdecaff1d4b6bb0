package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/user/nmapcraft/internal/command"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "nmapcraft-home")
	if err != nil {
		panic(err)
	}
	os.Setenv("HOME", home)
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile = ""
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", []string{"build"}, "nmap -sS"},
		{"set fields", []string{"build", "--set", "ports=22,80", "--set", "service-detection=yes", "--set", "targets=10.0.0.1"},
			"nmap -sS -p 22,80 -sV 10.0.0.1"},
		{"from command", []string{"build", "--from", "nmap -sU 10.0.0.1", "--set", "timing=T4"}, "nmap -sU -T4 10.0.0.1"},
		{"preset", []string{"build", "--preset", "ping"}, "nmap -sn -sS"},
		{"later set wins", []string{"build", "--set", "verbose=1", "--set", "verbose=3"}, "nmap -sS -v -v -v"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, strings.TrimSpace(out))
		})
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := run(t, "build", "--set", "nosuchfield=1")
	assert.ErrorContains(t, err, "unknown field")

	_, err = run(t, "build", "--set", "ports")
	assert.ErrorContains(t, err, "expected field=value")

	_, err = run(t, "build", "--set", "version-intensity=42")
	assert.ErrorContains(t, err, "failed to set version-intensity")

	_, err = run(t, "build", "--preset", "missing")
	assert.Error(t, err)

	_, err = run(t, "build", "--from", "nmap --bogus")
	assert.ErrorIs(t, err, command.ErrInvalidFlag)

	_, err = run(t, "build", "--from", "nmap", "--preset", "quick")
	assert.Error(t, err)
}

func TestParseFormats(t *testing.T) {
	line := "nmap -sS -p 80,443 -T4 192.168.1.1"

	out, err := run(t, "parse", "--format", "args", line)
	require.NoError(t, err)
	assert.Equal(t, []string{"nmap", "-sS", "-p", "80,443", "-T4", "192.168.1.1"}, strings.Fields(out))

	out, err = run(t, "parse", "--format", "shell", `nmap --data-string "a b" 10.0.0.1`)
	require.NoError(t, err)
	words, err := shellquote.Split(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"nmap", "-sS", "--data-string", "a b", "10.0.0.1"}, words)

	out, err = run(t, "parse", "--format", "json", line)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "syn", decoded["technique"].(map[string]any)["kind"])
	assert.Equal(t, "aggressive", decoded["timing"].(map[string]any)["template"])

	out, err = run(t, "parse", "--format", "yaml", line)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "80,443", doc["ports"].(map[string]any)["ports"])

	out, err = run(t, "parse", line)
	require.NoError(t, err)
	assert.Contains(t, out, "Port Specification")
	assert.Contains(t, out, "80,443")

	_, err = run(t, "parse", "--format", "xml", line)
	assert.ErrorContains(t, err, "unknown format")
}

func TestParseSplitArgs(t *testing.T) {
	out, err := run(t, "parse", "--format", "args", "--", "nmap", "-sU", "--data-string", "a b", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "nmap\n-sU\n--data-string\na b\n10.0.0.1\n", out)
}

func TestParseError(t *testing.T) {
	_, err := run(t, "parse", "nmap -iR not-a-number")
	require.Error(t, err)
	assert.ErrorIs(t, err, command.ErrInvalidValue)
	assert.ErrorContains(t, err, "failed to parse command")
}

func TestFields(t *testing.T) {
	out, err := run(t, "fields")
	require.NoError(t, err)
	assert.Contains(t, out, "Target Specification")
	assert.Contains(t, out, "spoof-ip")

	out, err = run(t, "fields", "--section", "timing")
	require.NoError(t, err)
	assert.Contains(t, out, "Timing & Performance")
	assert.NotContains(t, out, "Target Specification")

	out, err = run(t, "fields", "--section", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "technique-arg")

	out, err = run(t, "fields", "--flags")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "--data-string")

	_, err = run(t, "fields", "--section", "12")
	assert.Error(t, err)
	_, err = run(t, "fields", "--section", "nope")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "nmap -F -n 10.0.0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "# Scan Description")
	assert.Contains(t, out, "| Fast mode | `-F` | true |")

	dir := t.TempDir()
	out, err = run(t, "describe", "--output", dir, "nmap -F")
	require.NoError(t, err)
	assert.Contains(t, out, "Report saved to: "+dir)

	matches, err := filepath.Glob(filepath.Join(dir, "scan-*.md"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestDiff(t *testing.T) {
	out, err := run(t, "diff", "nmap -sS -T4 10.0.0.1", "nmap -sS -T4 10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "No differences.\n", out)

	out, err = run(t, "diff", "nmap -T4 10.0.0.1", "nmap -T3 -F 10.0.0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "Fast mode")
	assert.Contains(t, out, "T3 normal")
}

func TestUIWithoutTerminal(t *testing.T) {
	orig := interactive
	interactive = func() bool { return false }
	t.Cleanup(func() { interactive = orig })

	out, err := run(t, "ui", "nmap -sV 10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "nmap -sS -sV 10.0.0.1\n", out)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "version")
	assert.ErrorContains(t, err, "does not exist")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "nmapcraft version "+version+"\n", out)
}
