package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

// Command names the subcommand selected on the command line.
type Command string

const (
	CommandTUI    Command = "tui"
	CommandList   Command = "list"
	CommandAttach Command = "attach"
	CommandNew    Command = "new"
	CommandKill   Command = "kill"
)

// Config captures runtime configuration for the application.
type Config struct {
	Command   Command
	Target    string
	Directory string
	Version   bool
	App       App
	Logging   Logging
	Flags     map[string]string
	Args      []string
}

// App holds the settings shared by every subcommand.
type App struct {
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath = "AMS_SOCKET"
	envWidth      = "AMS_WIDTH"
	envHeight     = "AMS_HEIGHT"
	envShowFooter = "AMS_FOOTER"
	envTrace      = "AMS_TRACE"
	envLogFile    = "AMS_LOG_FILE"
)

const description = "Browse, attach to, create and kill tmux sessions."

type cli struct {
	Socket  string `help:"Path to the tmux socket (overrides environment detection)." default:"${socket}" placeholder:"PATH"`
	Width   int    `help:"Viewport width in cells (0 uses terminal width)." default:"${width}"`
	Height  int    `help:"Viewport height in rows (0 uses terminal height)." default:"${height}"`
	Footer  bool   `help:"Show the key help footer." default:"${footer}" negatable:""`
	Trace   bool   `help:"Enable verbose JSON trace logging." default:"${trace}"`
	LogFile string `name:"log-file" help:"Path to the log file." default:"${log_file}" placeholder:"PATH"`
	Version bool   `help:"Show version information."`

	TUI    tuiCmd    `cmd:"" name:"tui" help:"Interactively pick a session to attach to (default)." default:"1"`
	List   listCmd   `cmd:"" help:"Print all sessions."`
	Attach attachCmd `cmd:"" help:"Attach to a session."`
	New    newCmd    `cmd:"" help:"Create a detached session."`
	Kill   killCmd   `cmd:"" help:"Kill a session."`
}

type tuiCmd struct{}

type listCmd struct{}

type attachCmd struct {
	Name string `arg:"" help:"Session name."`
}

type newCmd struct {
	Name      string `arg:"" help:"Session name."`
	Directory string `short:"d" help:"Working directory for the new session." placeholder:"DIR"`
}

type killCmd struct {
	Name string `arg:"" help:"Session name."`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	return load(args, environ, os.Stdout, os.Stderr)
}

func load(args, environ []string, stdout, stderr io.Writer) (Config, error) {
	env := parseEnv(environ)

	var flags cli
	parser, err := kong.New(&flags,
		kong.Name("ams"),
		kong.Description(description),
		kong.Writers(stdout, stderr),
		kong.Vars{
			"socket":   envOrDefault(env, envSocketPath, ""),
			"width":    strconv.Itoa(envOrInt(env, envWidth, 0)),
			"height":   strconv.Itoa(envOrInt(env, envHeight, 0)),
			"footer":   strconv.FormatBool(envOrBool(env, envShowFooter, true)),
			"trace":    strconv.FormatBool(envOrBool(env, envTrace, false)),
			"log_file": envOrDefault(env, envLogFile, ""),
		},
	)
	if err != nil {
		return Config{}, err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Command: selectedCommand(ctx),
		Version: flags.Version,
		App: App{
			SocketPath: strings.TrimSpace(flags.Socket),
			Width:      flags.Width,
			Height:     flags.Height,
			ShowFooter: flags.Footer,
		},
		Logging: Logging{
			FilePath: flags.LogFile,
			Trace:    flags.Trace,
		},
		Flags: map[string]string{
			"socket":  flags.Socket,
			"width":   strconv.Itoa(flags.Width),
			"height":  strconv.Itoa(flags.Height),
			"footer":  strconv.FormatBool(flags.Footer),
			"trace":   strconv.FormatBool(flags.Trace),
			"logFile": flags.LogFile,
		},
		Args: append([]string(nil), args...),
	}
	switch cfg.Command {
	case CommandAttach:
		cfg.Target = flags.Attach.Name
	case CommandNew:
		cfg.Target = flags.New.Name
		cfg.Directory = flags.New.Directory
	case CommandKill:
		cfg.Target = flags.Kill.Name
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func selectedCommand(ctx *kong.Context) Command {
	fields := strings.Fields(ctx.Command())
	if len(fields) == 0 {
		return CommandTUI
	}
	return Command(fields[0])
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the parsed values are usable.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	switch cfg.Command {
	case CommandAttach, CommandNew, CommandKill:
		if strings.TrimSpace(cfg.Target) == "" {
			return fmt.Errorf("%s: session name must not be empty", cfg.Command)
		}
	case CommandTUI, CommandList:
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
	return nil
}
