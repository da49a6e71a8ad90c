package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/termwallet/internal/navigation"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "termwallet", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.RunE, "root command must launch the UI")

	for _, name := range []string{"config", "log-file", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing flag --%s", name)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "termwallet v"+Version), "got %q", out.String())
}

func TestRootRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}

func TestRootFailsOnBadConfigBeforeTouchingTerminal(t *testing.T) {
	path := writeConfig(t, "start-page: vault\n")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
	assert.Contains(t, err.Error(), "vault")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, navigation.Welcome, cfg.startPage())
	assert.True(t, cfg.Mouse)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigMissingFileIsFine(t *testing.T) {
	cfg, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"poll-interval: 250ms",
		"start-page: home",
		"mouse: false",
		"log-level: debug",
		"log-file: /tmp/termwallet.log",
	}, "\n"))

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, navigation.Home, cfg.startPage())
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/termwallet.log", cfg.LogFile)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "start-page: welcome\npoll-interval: 1s\n")
	t.Setenv("TERMWALLET_START_PAGE", "home")
	t.Setenv("TERMWALLET_POLL_INTERVAL", "50ms")

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, navigation.Home, cfg.startPage())
	assert.Equal(t, 50*time.Millisecond, cfg.PollInterval)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero poll", "poll-interval: 0s\n", "poll-interval"},
		{"negative poll", "poll-interval: -5ms\n", "poll-interval"},
		{"unknown page", "start-page: settings\n", "start-page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(viper.New(), writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	_, err := loadConfig(viper.New(), writeConfig(t, "poll-interval: [oops\n"))
	require.Error(t, err)
}

func TestBindFlagsOverridesFileAndEnv(t *testing.T) {
	path := writeConfig(t, "log-level: warn\nlog-file: /tmp/from-file.log\n")
	t.Setenv("TERMWALLET_LOG_LEVEL", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-file", "", "")
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "debug"}))

	v := viper.New()
	require.NoError(t, bindFlags(v, flags, "log-file", "log-level"))

	cfg, err := loadConfig(v, path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "flag set on the command line wins")
	assert.Equal(t, "/tmp/from-file.log", cfg.LogFile, "unset flag falls back to the file")
}

func TestBindFlagsUnknownFlag(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-file", "", "")

	err := bindFlags(viper.New(), flags, "log-file", "log-levle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-levle")
}

func TestRootLogLevelFlagReachesLogger(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", writeConfig(t, "log-level: info\n"), "--log-level", "loud"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
