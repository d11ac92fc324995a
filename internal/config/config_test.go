package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaultsToTUI(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, CommandTUI, cfg.Command)
	assert.Empty(t, cfg.Target)
	assert.Empty(t, cfg.App.SocketPath)
	assert.True(t, cfg.App.ShowFooter)
	assert.False(t, cfg.Logging.Trace)
	assert.False(t, cfg.Version)
}

func TestLoadArgsSubcommands(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		command   Command
		target    string
		directory string
	}{
		{name: "explicit tui", args: []string{"tui"}, command: CommandTUI},
		{name: "list", args: []string{"list"}, command: CommandList},
		{name: "attach", args: []string{"attach", "dev"}, command: CommandAttach, target: "dev"},
		{name: "new", args: []string{"new", "work"}, command: CommandNew, target: "work"},
		{name: "new with directory", args: []string{"new", "work", "--directory", "/srv/app"}, command: CommandNew, target: "work", directory: "/srv/app"},
		{name: "new with short directory", args: []string{"new", "-d", "/tmp", "work"}, command: CommandNew, target: "work", directory: "/tmp"},
		{name: "kill", args: []string{"kill", "old"}, command: CommandKill, target: "old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadArgs(tt.args, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.command, cfg.Command)
			assert.Equal(t, tt.target, cfg.Target)
			assert.Equal(t, tt.directory, cfg.Directory)
			assert.Equal(t, tt.args, cfg.Args)
		})
	}
}

func TestLoadArgsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "attach without name", args: []string{"attach"}},
		{name: "kill without name", args: []string{"kill"}},
		{name: "unknown command", args: []string{"explode"}},
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "blank name", args: []string{"attach", " "}},
		{name: "negative width", args: []string{"--width", "-1"}},
		{name: "negative height", args: []string{"--height", "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArgs(tt.args, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadArgsEnvironmentDefaults(t *testing.T) {
	env := []string{
		"AMS_SOCKET=/tmp/env.sock",
		"AMS_TRACE=1",
		"AMS_LOG_FILE=/tmp/ams.log",
		"AMS_WIDTH=100",
		"AMS_HEIGHT=40",
		"AMS_FOOTER=false",
		"MALFORMED",
		"",
	}
	cfg, err := LoadArgs([]string{"list"}, env)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.sock", cfg.App.SocketPath)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/ams.log", cfg.Logging.FilePath)
	assert.Equal(t, 100, cfg.App.Width)
	assert.Equal(t, 40, cfg.App.Height)
	assert.False(t, cfg.App.ShowFooter)
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{"AMS_SOCKET=/tmp/env.sock", "AMS_TRACE=true", "AMS_FOOTER=false"}
	cfg, err := LoadArgs([]string{"--socket", "/tmp/flag.sock", "--trace=false", "--footer", "list"}, env)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/flag.sock", cfg.App.SocketPath)
	assert.False(t, cfg.Logging.Trace)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, "/tmp/flag.sock", cfg.Flags["socket"])
}

func TestLoadArgsIgnoresUnparsableEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"AMS_TRACE=maybe", "AMS_WIDTH=wide"})
	require.NoError(t, err)

	assert.False(t, cfg.Logging.Trace)
	assert.Equal(t, 0, cfg.App.Width)
}

func TestLoadArgsVersion(t *testing.T) {
	cfg, err := LoadArgs([]string{"--version"}, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Version)
	assert.Equal(t, CommandTUI, cfg.Command)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Config{Command: CommandList}))
	assert.NoError(t, Validate(Config{Command: CommandKill, Target: "x"}))
	assert.Error(t, Validate(Config{Command: CommandNew}))
	assert.Error(t, Validate(Config{Command: "dance"}))
	assert.Error(t, Validate(Config{Command: CommandTUI, App: App{Width: -1}}))
}
