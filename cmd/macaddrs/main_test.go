package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/slashdevops/macaddrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ifconfigOutput = `eth0      Link encap:Ethernet  HWaddr 10:7b:44:8e:84:a5
          inet addr:192.168.1.8  Bcast:192.168.1.255  Mask:255.255.255.0

eth1      Link encap:Ethernet  HWaddr 00:19:86:00:17:11
          RUNNING  MTU:1500  Metric:1

eth2      Link encap:Ethernet  HWaddr 00:00:00:00:00:00

docker0   Link encap:Ethernet  HWaddr 02:42:ac:11:00:02
`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	err := cmd.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestInputFile(t *testing.T) {
	path := writeFile(t, "ifconfig.txt", ifconfigOutput)

	stdout, _, err := execute(t, "", "--input", path)
	require.NoError(t, err)

	assert.Equal(t, "00:19:86:00:17:11\n02:42:ac:11:00:02\n10:7b:44:8e:84:a5\n", stdout)
}

func TestInputStdin(t *testing.T) {
	stdout, _, err := execute(t, ifconfigOutput, "--input", "-", "--contains", "eth0")
	require.NoError(t, err)

	assert.Equal(t, "10:7b:44:8e:84:a5\n", stdout)
}

func TestFilterFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"contains any", []string{"--contains", "eth0,eth1"}, "00:19:86:00:17:11\n10:7b:44:8e:84:a5\n"},
		{"exclude", []string{"--exclude", "eth1", "--exclude", "docker"}, "10:7b:44:8e:84:a5\n"},
		{"skip virtual", []string{"--skip-virtual"}, "00:19:86:00:17:11\n10:7b:44:8e:84:a5\n"},
		{"nothing matches", []string{"--contains", "wlan0"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--input", "-"}, tt.args...)
			stdout, _, err := execute(t, ifconfigOutput, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestJSONOutput(t *testing.T) {
	stdout, _, err := execute(t, ifconfigOutput, "--input", "-", "--json", "--skip-virtual")
	require.NoError(t, err)

	var result struct {
		Addresses []string `json:"addresses"`
		Count     int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))

	assert.Equal(t, []string{"00:19:86:00:17:11", "10:7b:44:8e:84:a5"}, result.Addresses)
	assert.Equal(t, 2, result.Count)
}

func TestJSONOutputEmpty(t *testing.T) {
	stdout, _, err := execute(t, "", "--input", "-", "--json")
	require.NoError(t, err)

	assert.JSONEq(t, `{"addresses": [], "count": 0}`, stdout)
}

func TestHyphenDelimiter(t *testing.T) {
	getmac := "10-7B-44-8E-84-A5   \\Device\\Tcpip_{B4B2EBCC-E6AD-4763-A8F5-9D04D3698ED5}\r\n" +
		"00-00-00-00-00-00   Media disconnected\r\n"

	stdout, _, err := execute(t, getmac, "--input", "-", "--delimiter", macaddrs.DelimiterHyphen)
	require.NoError(t, err)

	assert.Equal(t, "10-7B-44-8E-84-A5\n", stdout)
}

func TestInvalidDelimiter(t *testing.T) {
	_, stderr, err := execute(t, ifconfigOutput, "--input", "-", "--delimiter", "z-a")

	var patErr *macaddrs.PatternError
	require.ErrorAs(t, err, &patErr)
	assert.Contains(t, stderr, "failed to collect MAC addresses")
}

func TestConfigFile(t *testing.T) {
	input := writeFile(t, "ifconfig.txt", ifconfigOutput)
	config := writeFile(t, "macaddrs.yaml", "input: "+input+"\ncontains:\n  - eth1\njson: true\n")

	stdout, _, err := execute(t, "", "--config", config)
	require.NoError(t, err)

	assert.JSONEq(t, `{"addresses": ["00:19:86:00:17:11"], "count": 1}`, stdout)
}

func TestFlagOverridesConfigFile(t *testing.T) {
	input := writeFile(t, "ifconfig.txt", ifconfigOutput)
	config := writeFile(t, "macaddrs.toml", "input = \""+filepath.ToSlash(input)+"\"\ncontains = [\"eth1\"]\n")

	stdout, _, err := execute(t, "", "--config", config, "--contains", "eth0")
	require.NoError(t, err)

	assert.Equal(t, "10:7b:44:8e:84:a5\n", stdout)
}

func TestEnvironment(t *testing.T) {
	input := writeFile(t, "ifconfig.txt", ifconfigOutput)
	t.Setenv("MACADDRS_INPUT", input)
	t.Setenv("MACADDRS_SKIP_VIRTUAL", "true")

	stdout, _, err := execute(t, "")
	require.NoError(t, err)

	assert.Equal(t, "00:19:86:00:17:11\n10:7b:44:8e:84:a5\n", stdout)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"input and command", []string{"--input", "-", "--command", "/sbin/ip"}, "mutually exclusive"},
		{"args without command", []string{"--args", "link"}, "--args requires --command"},
		{"negative timeout", []string{"--timeout", "-1s"}, "timeout must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPositionalArgsRejected(t *testing.T) {
	_, _, err := execute(t, "", "eth0")
	assert.Error(t, err)
}

func TestCustomCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX shell")
	}

	stdout, stderr, err := execute(t, "",
		"--command", "sh",
		"--args", "-c,echo 'eth0 HWaddr 10:7b:44:8e:84:a5'",
		"--debug",
	)
	require.NoError(t, err)

	assert.Equal(t, "10:7b:44:8e:84:a5\n", stdout)
	assert.Contains(t, stderr, "command executed")
}

func TestMissingCommand(t *testing.T) {
	_, _, err := execute(t, "", "--command", filepath.Join(t.TempDir(), "ifconfig"))
	assert.ErrorIs(t, err, macaddrs.ErrAllCommandsFailed)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "macaddrs version: "), stdout)

	stdout, _, err = execute(t, "", "version", "--long")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Go version:")

	stdout, _, err = execute(t, "", "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "macaddrs version: "), stdout)
}
